package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"jobpulse/internal/domain/job"
)

func rankerFixture() (*Engine, job.Profile, []job.Posting) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	postings := []job.Posting{
		{ID: "old-exact", Skills: []string{"Go", "Docker"}, PostedAt: now.AddDate(0, 0, -10)},
		{ID: "new-exact", Skills: []string{"Go", "Docker"}, PostedAt: now},
		{ID: "partial", Skills: []string{"Go", "Docker", "Kubernetes", "Terraform"}, PostedAt: now},
		{ID: "unrelated", Skills: []string{"Excel"}, PostedAt: now},
	}
	corpus := make([][]string, len(postings))
	for i, p := range postings {
		corpus[i] = p.Skills
	}
	profile := job.Profile{Skills: []string{"Go", "Docker"}}
	return NewEngine(Fit(corpus)), profile, postings
}

func TestRank_OrdersByScoreDescending(t *testing.T) {
	engine, profile, postings := rankerFixture()

	ranked := Rank(engine, profile, postings, 0, 0)
	require.Len(t, ranked, 4)
	for i := 1; i < len(ranked); i++ {
		require.GreaterOrEqual(t, ranked[i-1].Result.Score, ranked[i].Result.Score)
	}
	require.Equal(t, "unrelated", ranked[3].Posting.ID)
}

func TestRank_TiesBreakByRecency(t *testing.T) {
	engine, profile, postings := rankerFixture()

	ranked := Rank(engine, profile, postings, 2, 0)
	require.Len(t, ranked, 2)
	require.Equal(t, "new-exact", ranked[0].Posting.ID)
	require.Equal(t, "old-exact", ranked[1].Posting.ID)
}

func TestRank_MinScoreFilters(t *testing.T) {
	engine, profile, postings := rankerFixture()

	ranked := Rank(engine, profile, postings, 0, 50)
	for _, r := range ranked {
		require.GreaterOrEqual(t, r.Result.Score, 50)
	}
	for _, r := range ranked {
		require.NotEqual(t, "unrelated", r.Posting.ID)
	}
}

func TestRank_Idempotent(t *testing.T) {
	engine, profile, postings := rankerFixture()

	first := Rank(engine, profile, postings, 10, 0)
	second := Rank(engine, profile, postings, 10, 0)
	require.Equal(t, first, second)
}

func TestRank_EmptyInputs(t *testing.T) {
	engine, profile, _ := rankerFixture()

	require.Nil(t, Rank(nil, profile, []job.Posting{{ID: "x"}}, 5, 0))
	require.Nil(t, Rank(engine, profile, nil, 5, 0))
}

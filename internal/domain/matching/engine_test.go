package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"jobpulse/internal/domain/job"
)

func testEngine(corpus [][]string) *Engine {
	return NewEngine(Fit(corpus))
}

func TestEngine_MatchedAndMissingSkills(t *testing.T) {
	posting := job.Posting{
		ID:     "j1",
		Title:  "Data Engineer",
		Skills: []string{"Python", "SQL", "AWS"},
	}
	e := testEngine([][]string{posting.Skills})

	res := e.Score(job.Profile{Skills: []string{"python", "sql"}}, posting)

	require.Equal(t, []string{"Python", "SQL"}, res.MatchedSkills)
	require.Equal(t, []string{"AWS"}, res.MissingSkills)
	require.Greater(t, res.Score, 0)
	require.LessOrEqual(t, res.Score, 100)
}

func TestEngine_IdenticalSkillSetsScoreFullSkillWeight(t *testing.T) {
	posting := job.Posting{ID: "j1", Skills: []string{"Go", "Docker"}}
	e := testEngine([][]string{posting.Skills})

	res := e.Score(job.Profile{Skills: []string{"Go", "Docker"}}, posting)

	require.InDelta(t, 1.0, res.SkillScore, 1e-9)
}

func TestEngine_DisjointSkillSetsScoreZeroSkill(t *testing.T) {
	posting := job.Posting{ID: "j1", Skills: []string{"Python", "SQL"}}
	e := testEngine([][]string{posting.Skills, {"Go", "Docker"}})

	res := e.Score(job.Profile{Skills: []string{"Go", "Docker"}}, posting)

	require.Equal(t, 0.0, res.SkillScore)
	require.Empty(t, res.MatchedSkills)
}

func TestEngine_EmptyProfileSkillsScoreZero(t *testing.T) {
	posting := job.Posting{
		ID:         "j1",
		Skills:     []string{"Go"},
		Location:   "Bangalore",
		Experience: "2-4 years",
	}
	e := testEngine([][]string{posting.Skills})

	res := e.Score(job.Profile{ExperienceYears: 3, PreferredLocation: "Bangalore"}, posting)

	require.Equal(t, 0, res.Score)
	require.Equal(t, 0.0, res.SkillScore)
}

func TestEngine_EmptyJobSkillsIsNotAnError(t *testing.T) {
	posting := job.Posting{ID: "j1", Location: "Pune"}
	e := testEngine([][]string{{"Go"}})

	res := e.Score(job.Profile{Skills: []string{"Go"}, PreferredLocation: "Pune"}, posting)

	require.Equal(t, 0.0, res.SkillScore)
	// experience (no stated band) and location still earn their weights
	require.Equal(t, 30, res.Score)
}

func TestEngine_ScoreAlwaysInRange(t *testing.T) {
	postings := []job.Posting{
		{ID: "a", Skills: []string{"Go", "Docker", "Kubernetes"}, Location: "Remote", Experience: "7+ years"},
		{ID: "b", Skills: []string{"Python"}, Location: "Delhi", Experience: "0-2 years"},
		{ID: "c"},
		{ID: "d", Skills: []string{"SQL", "Excel"}, Location: "Mumbai, India"},
	}
	corpus := make([][]string, len(postings))
	for i, p := range postings {
		corpus[i] = p.Skills
	}
	e := testEngine(corpus)

	profiles := []job.Profile{
		{Skills: []string{"Go", "Docker"}, ExperienceYears: 10, PreferredLocation: "Remote"},
		{Skills: []string{"SQL"}, ExperienceYears: 0, PreferredLocation: "Mumbai"},
		{},
		{Skills: []string{"COBOL"}, ExperienceYears: 40, PreferredLocation: "Nowhere"},
	}

	for _, p := range profiles {
		for _, posting := range postings {
			res := e.Score(p, posting)
			require.GreaterOrEqual(t, res.Score, 0)
			require.LessOrEqual(t, res.Score, 100)
		}
	}
}

func TestExperienceScore(t *testing.T) {
	cases := []struct {
		years int
		band  string
		want  float64
	}{
		{3, "2-4 years", 1},
		{2, "2-4 years", 1},
		{4, "2-4 years", 1},
		{5, "2-4 years", 0.5},
		{0, "2-4 years", 1.0 / 3},
		{8, "7+ years", 1},
		{5, "7+ years", 1.0 / 3},
		{1, "", 1},
		{1, "unknown", 1},
	}
	for _, tc := range cases {
		require.InDelta(t, tc.want, experienceScore(tc.years, tc.band), 1e-9,
			"years=%d band=%q", tc.years, tc.band)
	}
}

func TestLocationScore(t *testing.T) {
	require.Equal(t, 1.0, locationScore("Bangalore", "Bengaluru, India"))
	require.Equal(t, 1.0, locationScore("anything", "Remote"))
	require.Equal(t, 0.5, locationScore("Navi Mumbai", "Mumbai"))
	require.Equal(t, 0.0, locationScore("Pune", "Delhi"))
	require.Equal(t, 0.0, locationScore("", "Delhi"))
}

func TestEngine_WeightedSum(t *testing.T) {
	posting := job.Posting{
		ID:         "j1",
		Skills:     []string{"Go"},
		Location:   "Bangalore",
		Experience: "2-4 years",
		PostedAt:   time.Now(),
	}
	e := testEngine([][]string{posting.Skills})

	res := e.Score(job.Profile{
		Skills:            []string{"Go"},
		ExperienceYears:   3,
		PreferredLocation: "Bangalore",
	}, posting)

	// 0.7*1 + 0.2*1 + 0.1*1 = 1.0
	require.Equal(t, 100, res.Score)
}

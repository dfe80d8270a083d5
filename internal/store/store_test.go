package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobpulse/internal/domain/job"
)

func testPostings() []job.Posting {
	return []job.Posting{
		{ID: "j1", Title: "Backend Engineer", Company: "Acme", Skills: []string{"Go", "Docker"}, Location: "Bangalore, India"},
		{ID: "j2", Title: "Data Scientist", Company: "Beta Labs", Skills: []string{"Python", "SQL"}, Location: "Remote"},
		{ID: "j3", Title: "Frontend Engineer", Company: "Acme", Skills: []string{"React"}, Location: "Pune"},
	}
}

func TestStore_EmptySnapshot(t *testing.T) {
	s := New()
	snap := s.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, 0, snap.Len())
	assert.NotNil(t, snap.Engine())
}

func TestStore_ReplaceSwapsGeneration(t *testing.T) {
	s := New()
	loaded := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	old := s.Snapshot()
	s.Replace(NewSnapshot(testPostings(), loaded))

	snap := s.Snapshot()
	assert.Equal(t, 3, snap.Len())
	assert.Equal(t, loaded, snap.LoadedAt)
	assert.Equal(t, 0, old.Len(), "previous generation stays untouched")

	s.Replace(nil)
	assert.Equal(t, 0, s.Snapshot().Len())
}

func TestSnapshot_Filter(t *testing.T) {
	snap := NewSnapshot(testPostings(), time.Now())

	all := snap.Filter(Filter{})
	assert.Len(t, all, 3)

	byLoc := snap.Filter(Filter{Location: "Bengaluru"})
	require.Len(t, byLoc, 2, "alias match plus remote posting")
	assert.Equal(t, "j1", byLoc[0].ID)
	assert.Equal(t, "j2", byLoc[1].ID)

	byTitle := snap.Filter(Filter{Title: "engineer"})
	require.Len(t, byTitle, 2)

	byCompany := snap.Filter(Filter{Company: "acme"})
	require.Len(t, byCompany, 2)

	bySkill := snap.Filter(Filter{Skill: "python"})
	require.Len(t, bySkill, 1)
	assert.Equal(t, "j2", bySkill[0].ID)

	combined := snap.Filter(Filter{Company: "acme", Skill: "react"})
	require.Len(t, combined, 1)
	assert.Equal(t, "j3", combined[0].ID)

	assert.Empty(t, snap.Filter(Filter{Skill: "cobol"}))
}

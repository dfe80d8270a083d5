package store

import (
	"strings"
	"sync/atomic"
	"time"

	"jobpulse/internal/domain/job"
	"jobpulse/internal/domain/matching"
)

// Snapshot is one immutable generation of the dataset. The vectorizer
// is fitted over the snapshot's own postings, so scoring always uses
// the vocabulary the dataset was loaded with.
type Snapshot struct {
	Postings   []job.Posting
	Vectorizer *matching.Vectorizer
	LoadedAt   time.Time
}

// NewSnapshot fits a TF-IDF vectorizer over the postings' skills and
// freezes them into one generation.
func NewSnapshot(postings []job.Posting, loadedAt time.Time) *Snapshot {
	corpus := make([][]string, len(postings))
	for i, p := range postings {
		corpus[i] = p.Skills
	}
	return &Snapshot{
		Postings:   postings,
		Vectorizer: matching.Fit(corpus),
		LoadedAt:   loadedAt,
	}
}

func (s *Snapshot) Engine() *matching.Engine {
	if s == nil {
		return matching.NewEngine(nil)
	}
	return matching.NewEngine(s.Vectorizer)
}

func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Postings)
}

// Filter selects postings matching every non-empty criterion.
type Filter struct {
	Location string
	Title    string
	Company  string
	Skill    string
}

func (f Filter) empty() bool {
	return f.Location == "" && f.Title == "" && f.Company == "" && f.Skill == ""
}

// Filter returns the postings matching f. Location comparison is over
// normalized names and remote postings match any location, mirroring
// the dashboard's location filter.
func (s *Snapshot) Filter(f Filter) []job.Posting {
	if s == nil {
		return nil
	}
	if f.empty() {
		return s.Postings
	}

	loc := job.NormalizeLocation(f.Location)
	title := strings.ToLower(strings.TrimSpace(f.Title))
	company := strings.ToLower(strings.TrimSpace(f.Company))
	skill := job.NormalizeSkill(f.Skill)

	out := make([]job.Posting, 0)
	for _, p := range s.Postings {
		if loc != "" && loc != "all" {
			pl := job.NormalizeLocation(p.Location)
			if pl != loc && pl != "remote" {
				continue
			}
		}
		if title != "" && !strings.Contains(strings.ToLower(p.Title), title) {
			continue
		}
		if company != "" && !strings.Contains(strings.ToLower(p.Company), company) {
			continue
		}
		if skill != "" && !hasSkill(p.Skills, skill) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func hasSkill(skills []string, normalized string) bool {
	for _, s := range skills {
		if job.NormalizeSkill(s) == normalized {
			return true
		}
	}
	return false
}

// Store hands out dataset snapshots. Readers always see either the old
// or the new generation, never a partial one.
type Store struct {
	current atomic.Pointer[Snapshot]
}

func New() *Store {
	s := &Store{}
	s.current.Store(NewSnapshot(nil, time.Time{}))
	return s
}

// Snapshot never returns nil; an unloaded store yields an empty
// generation.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Replace swaps in a whole new generation.
func (s *Store) Replace(snap *Snapshot) {
	if snap == nil {
		snap = NewSnapshot(nil, time.Time{})
	}
	s.current.Store(snap)
}

package matching

import (
	"sort"

	"jobpulse/internal/domain/job"
)

// Ranked pairs a posting with its score breakdown.
type Ranked struct {
	Posting job.Posting
	Result  Result
}

// Rank scores every posting against the profile and returns the top k
// ordered by descending score. Ties break on newer posted date, then on
// job id so identical inputs always rank identically.
func Rank(engine *Engine, p job.Profile, postings []job.Posting, k, minScore int) []Ranked {
	if engine == nil || len(postings) == 0 {
		return nil
	}
	if minScore < 0 {
		minScore = 0
	}

	out := make([]Ranked, 0, len(postings))
	for _, posting := range postings {
		res := engine.Score(p, posting)
		if res.Score < minScore {
			continue
		}
		out = append(out, Ranked{Posting: posting, Result: res})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Result.Score != out[j].Result.Score {
			return out[i].Result.Score > out[j].Result.Score
		}
		if !out[i].Posting.PostedAt.Equal(out[j].Posting.PostedAt) {
			return out[i].Posting.PostedAt.After(out[j].Posting.PostedAt)
		}
		return out[i].Posting.ID < out[j].Posting.ID
	})

	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}

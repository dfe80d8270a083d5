package matching

import (
	"math"
	"strings"

	"jobpulse/internal/domain/job"
)

// Score weights. They sum to 1.0 so the final score stays in [0,100].
const (
	WeightSkills     = 0.7
	WeightExperience = 0.2
	WeightLocation   = 0.1
)

// Result is the outcome of scoring one profile against one posting.
type Result struct {
	Score           int
	SkillScore      float64
	ExperienceScore float64
	LocationScore   float64
	MatchedSkills   []string
	MissingSkills   []string
}

// Engine scores profiles against postings using the vectorizer fitted
// on the current dataset snapshot.
type Engine struct {
	vec *Vectorizer
}

func NewEngine(vec *Vectorizer) *Engine {
	return &Engine{vec: vec}
}

// Score combines skill cosine similarity, experience proximity and
// location match into one clamped 0-100 score. Empty skill lists on
// either side yield a zero skill score, never an error; a profile with
// no skills at all scores zero outright.
func (e *Engine) Score(p job.Profile, posting job.Posting) Result {
	userSkills := job.NormalizeSkills(p.Skills)
	jobSkills := job.NormalizeSkills(posting.Skills)

	matched, missing := splitSkills(userSkills, jobSkills, posting.Skills)

	res := Result{
		MatchedSkills: matched,
		MissingSkills: missing,
	}
	if len(userSkills) == 0 {
		return res
	}

	res.SkillScore = e.skillSimilarity(userSkills, jobSkills)
	res.ExperienceScore = experienceScore(p.ExperienceYears, posting.Experience)
	res.LocationScore = locationScore(p.PreferredLocation, posting.Location)

	total := WeightSkills*res.SkillScore +
		WeightExperience*res.ExperienceScore +
		WeightLocation*res.LocationScore

	res.Score = clampScore(int(math.Round(total * 100)))
	return res
}

// SkillSimilarity exposes the raw cosine skill score in [0,1].
func (e *Engine) SkillSimilarity(userSkills, jobSkills []string) float64 {
	return e.skillSimilarity(job.NormalizeSkills(userSkills), job.NormalizeSkills(jobSkills))
}

func (e *Engine) skillSimilarity(userSkills, jobSkills []string) float64 {
	if len(userSkills) == 0 || len(jobSkills) == 0 {
		return 0
	}
	if e == nil || e.vec == nil {
		return 0
	}
	return Cosine(e.vec.Transform(userSkills), e.vec.Transform(jobSkills))
}

// experienceScore is the inverse distance between the profile years and
// the posting band: 1 inside the band, 1/(1+gap) outside, 1 when the
// posting states no parseable requirement.
func experienceScore(years int, band string) float64 {
	if years < 0 {
		years = 0
	}
	b := job.ParseExperienceBand(band)
	if !b.Known {
		return 1
	}
	gap := b.Distance(years)
	return 1 / float64(1+gap)
}

// locationScore gives full credit for an exact normalized match or a
// remote posting, partial credit when one name contains the other.
func locationScore(preferred, location string) float64 {
	pref := job.NormalizeLocation(preferred)
	loc := job.NormalizeLocation(location)

	if loc == "remote" {
		return 1
	}
	if pref == "" || loc == "" {
		return 0
	}
	if pref == loc {
		return 1
	}
	if len(pref) >= 3 && len(loc) >= 3 && (strings.Contains(loc, pref) || strings.Contains(pref, loc)) {
		return 0.5
	}
	return 0
}

// splitSkills partitions the posting skills into matched and missing
// relative to the user's set, keeping the posting's original casing.
func splitSkills(userSkills, jobSkills, originalJobSkills []string) (matched, missing []string) {
	userSet := make(map[string]struct{}, len(userSkills))
	for _, s := range userSkills {
		userSet[s] = struct{}{}
	}

	display := make(map[string]string, len(originalJobSkills))
	for _, raw := range originalJobSkills {
		n := job.NormalizeSkill(raw)
		if n == "" {
			continue
		}
		if _, ok := display[n]; !ok {
			display[n] = raw
		}
	}

	matched = make([]string, 0, len(jobSkills))
	missing = make([]string, 0)
	for _, s := range jobSkills {
		name := display[s]
		if name == "" {
			name = s
		}
		if _, ok := userSet[s]; ok {
			matched = append(matched, name)
		} else {
			missing = append(missing, name)
		}
	}
	return matched, missing
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

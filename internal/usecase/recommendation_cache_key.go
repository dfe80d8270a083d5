package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"jobpulse/internal/domain/job"
)

type recommendationCacheKeyInput struct {
	Skills   []string `json:"skills"`
	Years    int      `json:"years"`
	Location string   `json:"location"`
	Limit    int      `json:"limit"`
	MinScore int      `json:"min_score"`
	Dataset  int64    `json:"dataset"`
}

// RecommendationCacheKey hashes the normalized profile plus the
// snapshot generation, so a refresh naturally misses old entries even
// before invalidation runs.
func RecommendationCacheKey(params RecommendationParams, datasetStamp int64) string {
	skills := job.NormalizeSkills(params.Skills)
	sort.Strings(skills)

	in := recommendationCacheKeyInput{
		Skills:   skills,
		Years:    params.ExperienceYears,
		Location: job.NormalizeLocation(params.PreferredLocation),
		Limit:    params.Limit,
		MinScore: params.MinScore,
		Dataset:  datasetStamp,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "recs:" + hex.EncodeToString(sum[:])
}

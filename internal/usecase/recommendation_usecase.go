package usecase

import (
	"context"
	"log/slog"
	"time"

	"jobpulse/internal/domain/job"
	"jobpulse/internal/domain/matching"
	"jobpulse/internal/store"
)

type RecommendationParams struct {
	Skills            []string
	ExperienceYears   int
	PreferredLocation string
	Limit             int
	MinScore          int
}

type RecommendationItem struct {
	JobID         string    `json:"job_id"`
	Title         string    `json:"title"`
	Company       string    `json:"company"`
	Location      string    `json:"location"`
	URL           string    `json:"url"`
	PostedAt      time.Time `json:"posted_at"`
	MatchScore    int       `json:"match_score"`
	MatchedSkills []string  `json:"matched_skills"`
	MissingSkills []string  `json:"missing_skills"`
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, params RecommendationParams) ([]RecommendationItem, error)
}

type Recommendation struct {
	store  *store.Store
	cache  ResponseCache
	ttl    time.Duration
	logger *slog.Logger
}

func NewRecommendationUsecase(st *store.Store, cache ResponseCache, ttl time.Duration, logger *slog.Logger) *Recommendation {
	return &Recommendation{store: st, cache: cache, ttl: ttl, logger: logger}
}

// GetRecommendations ranks the current snapshot against the profile.
// An empty dataset or a profile nothing matches yields an empty list,
// never an error.
func (u *Recommendation) GetRecommendations(ctx context.Context, params RecommendationParams) ([]RecommendationItem, error) {
	limit := params.Limit
	if limit == 0 {
		limit = 20
	}
	if limit < 0 || limit > 50 {
		return nil, ErrInvalidInput
	}
	if params.MinScore < 0 || params.MinScore > 100 {
		return nil, ErrInvalidInput
	}
	params.Limit = limit

	snap := u.store.Snapshot()
	if snap.Len() == 0 {
		return []RecommendationItem{}, nil
	}

	cacheKey := RecommendationCacheKey(params, snap.LoadedAt.UnixNano())
	if u.cache != nil {
		var cached []RecommendationItem
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Debug("recommendation cache hit", "key", cacheKey)
			}
			return cached, nil
		}
	}

	profile := job.Profile{
		Skills:            params.Skills,
		ExperienceYears:   params.ExperienceYears,
		PreferredLocation: params.PreferredLocation,
	}

	ranked := matching.Rank(snap.Engine(), profile, snap.Postings, limit, params.MinScore)

	out := make([]RecommendationItem, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, RecommendationItem{
			JobID:         r.Posting.ID,
			Title:         r.Posting.Title,
			Company:       r.Posting.Company,
			Location:      r.Posting.Location,
			URL:           r.Posting.URL,
			PostedAt:      r.Posting.PostedAt,
			MatchScore:    r.Result.Score,
			MatchedSkills: r.Result.MatchedSkills,
			MissingSkills: r.Result.MissingSkills,
		})
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out, u.ttl); err != nil && u.logger != nil {
			u.logger.Debug("recommendation cache write failed", "error", err)
		}
	}

	return out, nil
}

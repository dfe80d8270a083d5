package dto

import "time"

type RecommendationRequest struct {
	Skills            []string `json:"skills"`
	ExperienceYears   int      `json:"experience_years"`
	PreferredLocation string   `json:"preferred_location"`
	Limit             int      `json:"limit"`
	MinScore          int      `json:"min_score"`
}

type RecommendationResponse struct {
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

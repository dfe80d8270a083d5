package dto

import "time"

type JobListResponse struct {
	Items []JobItem `json:"items"`
	Total int       `json:"total"`
}

type JobItem struct {
	JobID      string    `json:"job_id"`
	Title      string    `json:"title"`
	Company    string    `json:"company"`
	Location   string    `json:"location"`
	Skills     []string  `json:"skills"`
	Experience string    `json:"experience"`
	SalaryMin  float64   `json:"salary_min"`
	SalaryMax  float64   `json:"salary_max"`
	PostedAt   time.Time `json:"posted_at"`
	URL        string    `json:"url"`
}

type RefreshResponse struct {
	Jobs       int    `json:"jobs"`
	CSVPath    string `json:"csv_path"`
	DurationMS int64  `json:"duration_ms"`
}

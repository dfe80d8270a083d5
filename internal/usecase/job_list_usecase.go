package usecase

import (
	"context"
	"time"

	"jobpulse/internal/store"
)

type JobListParams struct {
	Location string
	Title    string
	Company  string
	Skill    string
	Limit    int
	Offset   int
}

type JobListItem struct {
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

type JobListUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) ([]JobListItem, int, error)
}

type JobList struct {
	store *store.Store
}

func NewJobListUsecase(st *store.Store) *JobList {
	return &JobList{store: st}
}

// ListJobs filters the current snapshot and paginates. The second
// return value is the total match count before pagination.
func (u *JobList) ListJobs(_ context.Context, params JobListParams) ([]JobListItem, int, error) {
	limit := params.Limit
	if limit == 0 {
		limit = 20
	}
	if limit < 0 || limit > 100 {
		return nil, 0, ErrInvalidInput
	}
	if params.Offset < 0 {
		return nil, 0, ErrInvalidInput
	}

	matchedPostings := u.store.Snapshot().Filter(store.Filter{
		Location: params.Location,
		Title:    params.Title,
		Company:  params.Company,
		Skill:    params.Skill,
	})
	total := len(matchedPostings)

	if params.Offset >= total {
		return []JobListItem{}, total, nil
	}
	end := params.Offset + limit
	if end > total {
		end = total
	}

	out := make([]JobListItem, 0, end-params.Offset)
	for _, p := range matchedPostings[params.Offset:end] {
		out = append(out, JobListItem{
			JobID:      p.ID,
			Title:      p.Title,
			Company:    p.Company,
			Location:   p.Location,
			Skills:     p.Skills,
			Experience: p.Experience,
			SalaryMin:  p.SalaryMin,
			SalaryMax:  p.SalaryMax,
			PostedAt:   p.PostedAt,
			URL:        p.URL,
		})
	}
	return out, total, nil
}

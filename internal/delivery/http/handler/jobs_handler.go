package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"jobpulse/internal/delivery/http/dto"
	"jobpulse/internal/pkg/response"
	"jobpulse/internal/usecase"
)

type JobsHandler struct {
	uc usecase.JobListUsecase
}

func NewJobsHandler(uc usecase.JobListUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs", h.ListJobs)
}

func (h *JobsHandler) ListJobs(c fiber.Ctx) error {
	params := usecase.JobListParams{
		Location: c.Query("location"),
		Title:    c.Query("title"),
		Company:  c.Query("company"),
		Skill:    c.Query("skill"),
		Limit:    parseQueryInt(c, "limit", 20),
		Offset:   parseQueryInt(c, "offset", 0),
	}

	items, total, err := h.uc.ListJobs(c.Context(), params)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.JobListResponse{Items: make([]dto.JobItem, 0, len(items)), Total: total}
	for _, it := range items {
		out.Items = append(out.Items, dto.JobItem{
			JobID:      it.JobID,
			Title:      it.Title,
			Company:    it.Company,
			Location:   it.Location,
			Skills:     it.Skills,
			Experience: it.Experience,
			SalaryMin:  it.SalaryMin,
			SalaryMax:  it.SalaryMax,
			PostedAt:   it.PostedAt,
			URL:        it.URL,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

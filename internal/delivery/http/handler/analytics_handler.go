package handler

import (
	"github.com/gofiber/fiber/v3"

	"jobpulse/internal/pkg/response"
	"jobpulse/internal/usecase"
)

type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/analytics")
	grp.Get("/summary", h.Summary)
	grp.Get("/top-skills", h.TopSkills)
	grp.Get("/top-companies", h.TopCompanies)
	grp.Get("/salary-trends", h.SalaryTrends)
	grp.Get("/locations", h.LocationStats)
	grp.Get("/posting-trends", h.PostingTrends)
	grp.Get("/experience-distribution", h.ExperienceDistribution)
	grp.Get("/role-distribution", h.RoleDistribution)
}

func (h *AnalyticsHandler) Summary(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.Summary(c.Context()))
}

func (h *AnalyticsHandler) TopSkills(c fiber.Ctx) error {
	n := parseQueryInt(c, "top_n", 0)
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.TopSkills(c.Context(), n))
}

func (h *AnalyticsHandler) TopCompanies(c fiber.Ctx) error {
	n := parseQueryInt(c, "top_n", 0)
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.TopCompanies(c.Context(), n))
}

func (h *AnalyticsHandler) SalaryTrends(c fiber.Ctx) error {
	trends, err := h.uc.SalaryTrends(c.Context(), c.Query("group_by"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, trends)
}

func (h *AnalyticsHandler) LocationStats(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.LocationStats(c.Context()))
}

func (h *AnalyticsHandler) PostingTrends(c fiber.Ctx) error {
	days := parseQueryInt(c, "days", 0)
	trends, err := h.uc.PostingTrends(c.Context(), days)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, trends)
}

func (h *AnalyticsHandler) ExperienceDistribution(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.ExperienceDistribution(c.Context()))
}

func (h *AnalyticsHandler) RoleDistribution(c fiber.Ctx) error {
	n := parseQueryInt(c, "top_n", 0)
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.RoleDistribution(c.Context(), n))
}

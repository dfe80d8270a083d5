package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"jobpulse/internal/delivery/http/dto"
	"jobpulse/internal/delivery/http/middleware"
	"jobpulse/internal/pkg/response"
	"jobpulse/internal/usecase"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/recommendations", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	var req dto.RecommendationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	items, err := h.uc.GetRecommendations(c.Context(), usecase.RecommendationParams{
		Skills:            req.Skills,
		ExperienceYears:   req.ExperienceYears,
		PreferredLocation: req.PreferredLocation,
		Limit:             req.Limit,
		MinScore:          req.MinScore,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.RecommendationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.RecommendationResponse{
			JobID:         it.JobID,
			Title:         it.Title,
			Company:       it.Company,
			Location:      it.Location,
			URL:           it.URL,
			PostedAt:      it.PostedAt,
			MatchScore:    it.MatchScore,
			MatchedSkills: it.MatchedSkills,
			MissingSkills: it.MissingSkills,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapUsecaseError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid parameters", nil, err)
	case errors.Is(err, usecase.ErrEmptyDataset):
		return middleware.NewAppError(fiber.StatusConflict, "Dataset is empty", nil, err)
	case errors.Is(err, usecase.ErrRefreshInProgress):
		return middleware.NewAppError(fiber.StatusConflict, "Refresh already in progress", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

package handler

import (
	"github.com/gofiber/fiber/v3"

	"jobpulse/internal/delivery/http/dto"
	"jobpulse/internal/pkg/response"
	"jobpulse/internal/usecase"
)

type RefreshHandler struct {
	uc usecase.RefreshUsecase
}

func NewRefreshHandler(uc usecase.RefreshUsecase) *RefreshHandler {
	return &RefreshHandler{uc: uc}
}

func (h *RefreshHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/refresh", h.Refresh)
}

func (h *RefreshHandler) Refresh(c fiber.Ctx) error {
	res, err := h.uc.Refresh(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RefreshResponse{
		Jobs:       res.Jobs,
		CSVPath:    res.CSVPath,
		DurationMS: res.Duration.Milliseconds(),
	})
}

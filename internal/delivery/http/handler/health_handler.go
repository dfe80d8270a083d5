package handler

import (
	"github.com/gofiber/fiber/v3"

	"jobpulse/internal/pkg/response"
	"jobpulse/internal/store"
)

type HealthHandler struct {
	store *store.Store
}

func NewHealthHandler(st *store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	snap := h.store.Snapshot()
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"jobs":      snap.Len(),
		"loaded_at": snap.LoadedAt,
	})
}

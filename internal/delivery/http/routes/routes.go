package routes

import (
	"github.com/gofiber/fiber/v3"

	"jobpulse/internal/delivery/http/handler"
	"jobpulse/internal/store"
	"jobpulse/internal/usecase"
	"jobpulse/internal/ws"
)

// Registry wires handlers onto the fiber app.
type Registry struct {
	health          *handler.HealthHandler
	jobs            *handler.JobsHandler
	recommendations *handler.RecommendationHandler
	analytics       *handler.AnalyticsHandler
	refresh         *handler.RefreshHandler
	events          *ws.Handler
}

type Deps struct {
	Store           *store.Store
	Jobs            usecase.JobListUsecase
	Recommendations usecase.RecommendationUsecase
	Analytics       usecase.AnalyticsUsecase
	Refresh         usecase.RefreshUsecase
	Events          *ws.Handler
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{
		health:          handler.NewHealthHandler(deps.Store),
		jobs:            handler.NewJobsHandler(deps.Jobs),
		recommendations: handler.NewRecommendationHandler(deps.Recommendations),
		analytics:       handler.NewAnalyticsHandler(deps.Analytics),
		refresh:         handler.NewRefreshHandler(deps.Refresh),
		events:          deps.Events,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	v1 := app.Group("/api").Group("/v1")
	r.jobs.RegisterRoutes(v1)
	r.recommendations.RegisterRoutes(v1)
	r.analytics.RegisterRoutes(v1)
	r.refresh.RegisterRoutes(v1)

	if r.events != nil {
		app.Get("/ws", r.events.HandleEventsWS)
	}
}

package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"jobpulse/internal/config"
	"jobpulse/internal/delivery/http/middleware"
	"jobpulse/internal/delivery/http/routes"
	"jobpulse/internal/fetcher"
	"jobpulse/internal/infrastructure/cache"
	"jobpulse/internal/store"
	"jobpulse/internal/usecase"
	"jobpulse/internal/ws"
)

type App struct {
	Fiber *fiber.App
	Store *store.Store
}

// Bootstrap wires the whole service: dataset store (preloaded from the
// newest CSV dump when one exists), cache, feed client, usecases,
// websocket hub and routes. The returned cleanup closes the cache.
func Bootstrap(cfg config.Config, logger *slog.Logger) (*App, func() error, error) {
	st := store.New()
	loadLatestDataset(cfg.Dataset.Dir, st, logger)

	redisCache := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	go hub.Run()

	feed := fetcher.NewClient(cfg.Adzuna, logger)

	recommendUC := usecase.NewRecommendationUsecase(st, redisCache, cfg.Redis.TTL, logger)
	jobListUC := usecase.NewJobListUsecase(st)
	analyticsUC := usecase.NewAnalyticsUsecase(st)
	refreshUC := usecase.NewRefreshUsecase(
		feed, st, redisCache, ws.NewNotifier(hub),
		cfg.Dataset.Dir, cfg.Dataset.CSVKeep, logger,
	)

	f := fiber.New(fiber.Config{AppName: cfg.App.Name})
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())

	routes.NewRegistry(routes.Deps{
		Store:           st,
		Jobs:            jobListUC,
		Recommendations: recommendUC,
		Analytics:       analyticsUC,
		Refresh:         refreshUC,
		Events:          ws.NewHandler(hub, logger),
	}).Register(f)

	cleanup := func() error {
		return redisCache.Close()
	}
	return &App{Fiber: f, Store: st}, cleanup, nil
}

func loadLatestDataset(dir string, st *store.Store, logger *slog.Logger) {
	path, ok := store.LatestCSV(dir)
	if !ok {
		if logger != nil {
			logger.Warn("no dataset dump found, starting empty", "dir", dir)
		}
		return
	}

	postings, err := store.LoadCSV(path, logger)
	if err != nil {
		if logger != nil {
			logger.Error("could not load dataset dump", "path", path, "error", err)
		}
		return
	}

	st.Replace(store.NewSnapshot(postings, time.Now()))
	if logger != nil {
		logger.Info("dataset loaded", "path", path, "jobs", len(postings))
	}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

// Command fetcher runs the fetch-jobs workflow once from the CLI:
// pull the feed, dump a timestamped CSV and prune older dumps. Useful
// for seeding a dataset before the server first starts.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	"jobpulse/internal/config"
	"jobpulse/internal/fetcher"
	"jobpulse/internal/logger"
	"jobpulse/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (optional)")
	query := flag.String("query", "", "override job search query")
	location := flag.String("location", "", "override job search location")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if q := strings.TrimSpace(*query); q != "" {
		cfg.Adzuna.Query = q
	}
	if l := strings.TrimSpace(*location); l != "" {
		cfg.Adzuna.Location = l
	}

	log := logger.New(cfg.App)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client := fetcher.NewClient(cfg.Adzuna, log)
	postings, err := client.FetchJobs(ctx)
	if err != nil {
		log.Error("fetch failed", "error", err)
		os.Exit(1)
	}
	if len(postings) == 0 {
		log.Error("feed returned no jobs")
		os.Exit(1)
	}
	fetcher.SortByPostedDesc(postings)

	path := store.CSVName(cfg.Dataset.Dir, time.Now())
	if err := store.WriteCSV(path, postings); err != nil {
		log.Error("write dataset failed", "error", err)
		os.Exit(1)
	}
	store.PruneCSV(cfg.Dataset.Dir, cfg.Dataset.CSVKeep, log)

	log.Info("dataset written", "path", path, "jobs", len(postings))
}

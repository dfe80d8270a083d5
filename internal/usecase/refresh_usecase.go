package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"jobpulse/internal/domain/job"
	"jobpulse/internal/store"
)

const (
	refreshLockKey = "dataset:refresh:lock"
	refreshLockTTL = 5 * time.Minute
)

// JobFetcher pulls a fresh set of postings from the upstream feed.
type JobFetcher interface {
	FetchJobs(ctx context.Context) ([]job.Posting, error)
}

// RefreshNotifier fans the completed refresh out to connected clients.
type RefreshNotifier interface {
	NotifyDatasetRefreshed(jobs int, at time.Time)
}

type RefreshResult struct {
	Jobs     int           `json:"jobs"`
	CSVPath  string        `json:"csv_path"`
	Duration time.Duration `json:"-"`
}

type RefreshUsecase interface {
	Refresh(ctx context.Context) (RefreshResult, error)
}

// Refresh reproduces the fetch-jobs workflow: pull the feed, dump a
// timestamped CSV, swap the in-memory snapshot, drop cached
// recommendations and notify listeners. The whole dataset is replaced
// in one pointer swap so readers never see a partial refresh.
type Refresh struct {
	fetcher  JobFetcher
	store    *store.Store
	cache    ResponseCache
	notifier RefreshNotifier
	dataDir  string
	csvKeep  int
	now      func() time.Time
	logger   *slog.Logger
}

func NewRefreshUsecase(fetcher JobFetcher, st *store.Store, cache ResponseCache, notifier RefreshNotifier, dataDir string, csvKeep int, logger *slog.Logger) *Refresh {
	return &Refresh{
		fetcher:  fetcher,
		store:    st,
		cache:    cache,
		notifier: notifier,
		dataDir:  dataDir,
		csvKeep:  csvKeep,
		now:      time.Now,
		logger:   logger,
	}
}

func (u *Refresh) Refresh(ctx context.Context) (RefreshResult, error) {
	started := u.now()

	if u.cache != nil {
		ok, _ := u.cache.SetIfNotExists(ctx, refreshLockKey, started.UTC().Format(time.RFC3339), refreshLockTTL)
		if !ok {
			return RefreshResult{}, ErrRefreshInProgress
		}
		defer func() {
			_ = u.cache.Delete(context.WithoutCancel(ctx), refreshLockKey)
		}()
	}

	postings, err := u.fetcher.FetchJobs(ctx)
	if err != nil {
		return RefreshResult{}, fmt.Errorf("fetch jobs: %w", err)
	}
	if len(postings) == 0 {
		// keep serving the previous snapshot rather than wiping it
		return RefreshResult{}, ErrEmptyDataset
	}

	csvPath := store.CSVName(u.dataDir, started)
	if err := store.WriteCSV(csvPath, postings); err != nil {
		return RefreshResult{}, fmt.Errorf("write dataset: %w", err)
	}
	store.PruneCSV(u.dataDir, u.csvKeep, u.logger)

	u.store.Replace(store.NewSnapshot(postings, started))

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, "recs:*"); err != nil && u.logger != nil {
			u.logger.Warn("could not invalidate recommendation cache", "error", err)
		}
	}

	if u.notifier != nil {
		u.notifier.NotifyDatasetRefreshed(len(postings), started)
	}

	res := RefreshResult{
		Jobs:     len(postings),
		CSVPath:  csvPath,
		Duration: u.now().Sub(started),
	}
	if u.logger != nil {
		u.logger.Info("dataset refreshed", "jobs", res.Jobs, "csv", res.CSVPath, "took", res.Duration)
	}
	return res, nil
}

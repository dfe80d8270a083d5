package usecase

import (
	"context"
	"time"

	"jobpulse/internal/analytics"
	"jobpulse/internal/store"
)

type AnalyticsUsecase interface {
	Summary(ctx context.Context) analytics.SummaryStats
	TopSkills(ctx context.Context, n int) []analytics.SkillCount
	TopCompanies(ctx context.Context, n int) []analytics.CompanyCount
	SalaryTrends(ctx context.Context, groupBy string) ([]analytics.SalaryTrend, error)
	LocationStats(ctx context.Context) []analytics.LocationStat
	PostingTrends(ctx context.Context, days int) ([]analytics.DailyCount, error)
	ExperienceDistribution(ctx context.Context) []analytics.ExperienceCount
	RoleDistribution(ctx context.Context, n int) []analytics.RoleCount
}

type Analytics struct {
	store *store.Store
	now   func() time.Time
}

func NewAnalyticsUsecase(st *store.Store) *Analytics {
	return &Analytics{store: st, now: time.Now}
}

func (u *Analytics) Summary(context.Context) analytics.SummaryStats {
	return analytics.Summary(u.store.Snapshot().Postings, u.now())
}

func (u *Analytics) TopSkills(_ context.Context, n int) []analytics.SkillCount {
	return analytics.TopSkills(u.store.Snapshot().Postings, clampTopN(n, 20))
}

func (u *Analytics) TopCompanies(_ context.Context, n int) []analytics.CompanyCount {
	return analytics.TopCompanies(u.store.Snapshot().Postings, clampTopN(n, 15))
}

func (u *Analytics) SalaryTrends(_ context.Context, groupBy string) ([]analytics.SalaryTrend, error) {
	var g analytics.GroupBy
	switch groupBy {
	case "", string(analytics.GroupByLocation):
		g = analytics.GroupByLocation
	case string(analytics.GroupByTitle):
		g = analytics.GroupByTitle
	default:
		return nil, ErrInvalidInput
	}
	return analytics.SalaryTrends(u.store.Snapshot().Postings, g), nil
}

func (u *Analytics) LocationStats(context.Context) []analytics.LocationStat {
	return analytics.LocationStats(u.store.Snapshot().Postings)
}

func (u *Analytics) PostingTrends(_ context.Context, days int) ([]analytics.DailyCount, error) {
	if days == 0 {
		days = 30
	}
	if days < 1 || days > 365 {
		return nil, ErrInvalidInput
	}
	return analytics.PostingTrends(u.store.Snapshot().Postings, days, u.now()), nil
}

func (u *Analytics) ExperienceDistribution(context.Context) []analytics.ExperienceCount {
	return analytics.ExperienceDistribution(u.store.Snapshot().Postings)
}

func (u *Analytics) RoleDistribution(_ context.Context, n int) []analytics.RoleCount {
	return analytics.RoleDistribution(u.store.Snapshot().Postings, clampTopN(n, 10))
}

func clampTopN(n, def int) int {
	if n <= 0 {
		return def
	}
	if n > 100 {
		return 100
	}
	return n
}

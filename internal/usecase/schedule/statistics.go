package schedule

import (
	"context"

	"github.com/BruksfildServices01/gym-backoffice/internal/cache"
	domain "github.com/BruksfildServices01/gym-backoffice/internal/domain/schedule"
	"github.com/BruksfildServices01/gym-backoffice/internal/timezone"
)

type GetStatistics struct {
	repo  domain.Repository
	clock timezone.Clock
	stats cache.StatsCache
}

func NewGetStatistics(
	repo domain.Repository,
	clock timezone.Clock,
	stats cache.StatsCache,
) *GetStatistics {
	return &GetStatistics{
		repo:  repo,
		clock: clock,
		stats: statsCache(stats),
	}
}

// Execute computes the dashboard figures. Zero windows fall back to the
// defaults (30 days back, 7 days ahead).
func (uc *GetStatistics) Execute(
	ctx context.Context,
	windowDays int,
	upcomingDays int,
) (*domain.Statistics, error) {

	q := domain.StatisticsQuery{
		Now:          uc.clock.Now(),
		Today:        uc.clock.Today(),
		WindowDays:   windowDays,
		UpcomingDays: upcomingDays,
	}.Normalize()

	if cached, ok := uc.stats.Get(ctx, q); ok {
		return cached, nil
	}

	stats, err := uc.repo.Statistics(ctx, q)
	if err != nil {
		return nil, err
	}

	uc.stats.Set(ctx, q, stats)
	return stats, nil
}

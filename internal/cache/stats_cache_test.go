package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/gym-backoffice/internal/domain/schedule"
)

func TestKey_IncludesDayAndWindows(t *testing.T) {
	q := schedule.StatisticsQuery{
		Today:        time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
		WindowDays:   90,
		UpcomingDays: 7,
	}
	assert.Equal(t, "gym:stats:2026-10-18:90:7", Key(q))

	q.WindowDays = 30
	assert.NotEqual(t, "gym:stats:2026-10-18:90:7", Key(q))
}

func TestNopStatsCache_AlwaysMisses(t *testing.T) {
	var c StatsCache = NopStatsCache{}
	ctx := context.Background()
	q := schedule.StatisticsQuery{WindowDays: 30}

	c.Set(ctx, q, &schedule.Statistics{Scheduled: 4})
	stats, ok := c.Get(ctx, q)
	assert.False(t, ok)
	assert.Nil(t, stats)
	c.Invalidate(ctx)
}

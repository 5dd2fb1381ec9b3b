package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatisticsQuery_Normalize(t *testing.T) {
	q := StatisticsQuery{}.Normalize()
	assert.Equal(t, DefaultWindowDays, q.WindowDays)
	assert.Equal(t, DefaultUpcomingDays, q.UpcomingDays)

	q = StatisticsQuery{WindowDays: 5000, UpcomingDays: -2}.Normalize()
	assert.Equal(t, MaxWindowDays, q.WindowDays)
	assert.Equal(t, DefaultUpcomingDays, q.UpcomingDays)

	q = StatisticsQuery{WindowDays: 90, UpcomingDays: 14}.Normalize()
	assert.Equal(t, 90, q.WindowDays)
	assert.Equal(t, 14, q.UpcomingDays)
}

func TestStatisticsQuery_Windows(t *testing.T) {
	now := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)
	q := StatisticsQuery{
		Now:          now,
		Today:        time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
		WindowDays:   30,
		UpcomingDays: 7,
	}

	assert.True(t, q.WindowStart().Equal(time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC)))
	assert.True(t, q.UpcomingEnd().Equal(time.Date(2026, 10, 25, 10, 0, 0, 0, time.UTC)))
}

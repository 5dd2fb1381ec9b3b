package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRecurrences_DefaultCounts(t *testing.T) {
	start := time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)

	assert.Len(t, GenerateRecurrences(RecurDaily, start, nil, nil), 7)
	assert.Len(t, GenerateRecurrences(RecurWeekly, start, nil, nil), 4)
	assert.Len(t, GenerateRecurrences(RecurMonthly, start, nil, nil), 3)
	assert.Empty(t, GenerateRecurrences(RecurNone, start, nil, nil))
}

func TestGenerateRecurrences_Cadence(t *testing.T) {
	start := time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	weekly := GenerateRecurrences(RecurWeekly, start, &end, nil)
	require.Len(t, weekly, 4)
	assert.True(t, weekly[0].Start.Equal(start.AddDate(0, 0, 7)))
	assert.True(t, weekly[3].Start.Equal(start.AddDate(0, 0, 28)))
	require.NotNil(t, weekly[0].End)
	assert.Equal(t, 90*time.Minute, weekly[0].End.Sub(weekly[0].Start))

	monthly := GenerateRecurrences(RecurMonthly, start, nil, nil)
	assert.True(t, monthly[2].Start.Equal(time.Date(2027, 1, 20, 9, 0, 0, 0, time.UTC)))
	assert.Nil(t, monthly[0].End)
}

func TestGenerateRecurrences_MonthEnd(t *testing.T) {
	start := time.Date(2027, 1, 31, 9, 0, 0, 0, time.UTC)

	monthly := GenerateRecurrences(RecurMonthly, start, nil, nil)
	require.Len(t, monthly, 3)
	assert.Equal(t, time.Date(2027, 2, 28, 9, 0, 0, 0, time.UTC), monthly[0].Start)
	assert.Equal(t, time.Date(2027, 3, 31, 9, 0, 0, 0, time.UTC), monthly[1].Start)
	assert.Equal(t, time.Date(2027, 4, 30, 9, 0, 0, 0, time.UTC), monthly[2].Start)

	leap := GenerateRecurrences(RecurMonthly, time.Date(2028, 1, 30, 9, 0, 0, 0, time.UTC), nil, nil)
	assert.Equal(t, time.Date(2028, 2, 29, 9, 0, 0, 0, time.UTC), leap[0].Start)

	yearEnd := GenerateRecurrences(RecurMonthly, time.Date(2026, 12, 31, 9, 0, 0, 0, time.UTC), nil, nil)
	assert.Equal(t, time.Date(2027, 1, 31, 9, 0, 0, 0, time.UTC), yearEnd[0].Start)
	assert.Equal(t, time.Date(2027, 2, 28, 9, 0, 0, 0, time.UTC), yearEnd[1].Start)
}

func TestGenerateRecurrences_Until(t *testing.T) {
	start := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	until := time.Date(2026, 10, 10, 8, 0, 0, 0, time.UTC)

	daily := GenerateRecurrences(RecurDaily, start, nil, &until)
	require.Len(t, daily, 9)
	assert.True(t, daily[8].Start.Equal(until))

	farAway := start.AddDate(5, 0, 0)
	assert.Len(t, GenerateRecurrences(RecurDaily, start, nil, &farAway), MaxOccurrences)

	before := start.Add(-time.Hour)
	assert.Empty(t, GenerateRecurrences(RecurWeekly, start, nil, &before))
}

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern("")
	require.NoError(t, err)
	assert.Equal(t, RecurNone, p)

	p, err = ParsePattern("Weekly")
	require.NoError(t, err)
	assert.Equal(t, RecurWeekly, p)

	_, err = ParsePattern("fortnightly")
	assert.Error(t, err)
}

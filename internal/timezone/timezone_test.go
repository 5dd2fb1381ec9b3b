package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, "UTC", Location("Not/AZone").String())
	assert.Equal(t, "UTC", Location("").String())
	assert.Equal(t, "Europe/Lisbon", Location("Europe/Lisbon").String())
}

func TestFixedClock_Today(t *testing.T) {
	now := time.Date(2026, 10, 18, 22, 45, 10, 0, time.UTC)
	c := FixedClock(now)

	assert.True(t, c.Now().Equal(now))
	assert.True(t, c.Today().Equal(time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)))
}

func TestClock_ZeroValue(t *testing.T) {
	var c Clock
	assert.Equal(t, time.UTC, c.Location())
	assert.WithinDuration(t, time.Now(), c.Now(), time.Minute)
}

func TestParseLocal(t *testing.T) {
	lisbon := Location("Europe/Lisbon")

	got, dateOnly, err := ParseLocal("2026-10-18T09:30", lisbon)
	require.NoError(t, err)
	assert.False(t, dateOnly)
	assert.Equal(t, lisbon, got.Location())
	assert.Equal(t, 9, got.Hour())

	got, dateOnly, err = ParseLocal("2026-10-18", time.UTC)
	require.NoError(t, err)
	assert.True(t, dateOnly)
	assert.True(t, got.Equal(time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)))

	got, _, err = ParseLocal("2026-10-18T09:30:00Z", lisbon)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)))

	_, _, err = ParseLocal("18/10/2026", time.UTC)
	assert.Error(t, err)
}

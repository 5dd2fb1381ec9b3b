package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamID(t *testing.T) {
	assert.Equal(t, "m_12", StreamID(EventMaintenance, 12))
	assert.Equal(t, "e_7", StreamID(EventMeeting, 7))
}

func TestParseStreamID(t *testing.T) {
	id, isTask, err := ParseStreamID("m_12", EventMeeting)
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)
	assert.True(t, isTask)

	id, isTask, err = ParseStreamID("e_7", EventMaintenance)
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)
	assert.False(t, isTask)

	id, isTask, err = ParseStreamID("33", EventMaintenance)
	require.NoError(t, err)
	assert.Equal(t, uint(33), id)
	assert.True(t, isTask)

	for _, bad := range []string{"", "m_", "x_1", "0", "m_-3"} {
		_, _, err := ParseStreamID(bad, EventOther)
		assert.Error(t, err, bad)
	}
}

package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/gym-backoffice/internal/domain/maintenance"
)

func TestColorFor_Maintenance(t *testing.T) {
	tests := []struct {
		name     string
		priority maintenance.Priority
		display  maintenance.Status
		want     string
	}{
		{"overdue beats priority", maintenance.PriorityLow, maintenance.StatusOverdue, ColorOverdue},
		{"completed", maintenance.PriorityHigh, maintenance.StatusCompleted, ColorCompleted},
		{"in progress", maintenance.PriorityLow, maintenance.StatusInProgress, ColorInProgress},
		{"scheduled high", maintenance.PriorityHigh, maintenance.StatusScheduled, ColorPriorityHigh},
		{"scheduled medium", maintenance.PriorityMedium, maintenance.StatusScheduled, ColorPriorityMedium},
		{"scheduled low", maintenance.PriorityLow, maintenance.StatusScheduled, ColorPriorityLow},
		{"cancelled medium", maintenance.PriorityMedium, maintenance.StatusCancelled, ColorPriorityMedium},
		{"critical falls back to default", maintenance.PriorityCritical, maintenance.StatusScheduled, ColorMaintenanceDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ColorFor(EventMaintenance, tt.priority, tt.display, "#FFFFFF"))
		})
	}
}

func TestColorFor_Events(t *testing.T) {
	assert.Equal(t, ColorMeeting, ColorFor(EventMeeting, maintenance.PriorityHigh, "", ""))
	assert.Equal(t, ColorBooking, ColorFor(EventBooking, "", "", ""))
	assert.Equal(t, ColorTraining, ColorFor(EventTraining, "", "", ""))
	assert.Equal(t, ColorInspection, ColorFor(EventInspection, "", "", ""))
	assert.Equal(t, ColorOther, ColorFor(EventOther, "", "", ""))
	assert.Equal(t, "#123456", ColorFor(EventMeeting, "", "", "#123456"))
}

func TestLegend_CoversEveryEventType(t *testing.T) {
	colors := map[string]bool{}
	for _, e := range Legend() {
		colors[e.Color] = true
	}
	for _, et := range EventTypes() {
		if et.IsMaintenance() {
			continue
		}
		assert.True(t, colors[ColorFor(et, "", "", "")], et)
	}
}

package maintenance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gym-backoffice/internal/domain/equipment"
	"github.com/BruksfildServices01/gym-backoffice/internal/models"
)

func TestCascadeFor_Create(t *testing.T) {
	c, ok := CascadeFor(Trigger{Kind: TriggerCreate, Priority: PriorityHigh, EquipmentStatus: equipment.StatusOutOfOrder})
	require.True(t, ok)
	assert.Equal(t, equipment.StatusMaintenance, c.Status)

	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityCritical} {
		_, ok := CascadeFor(Trigger{Kind: TriggerCreate, Priority: p})
		assert.False(t, ok, p)
	}
}

func TestCascadeFor_Update(t *testing.T) {
	c, ok := CascadeFor(Trigger{Kind: TriggerUpdate, Previous: StatusScheduled, Next: StatusInProgress})
	require.True(t, ok)
	assert.Equal(t, equipment.StatusMaintenance, c.Status)
	assert.False(t, c.StampCompleted)

	c, ok = CascadeFor(Trigger{Kind: TriggerUpdate, Previous: StatusInProgress, Next: StatusCompleted})
	require.True(t, ok)
	assert.Equal(t, equipment.StatusAvailable, c.Status)
	assert.True(t, c.StampCompleted)

	_, ok = CascadeFor(Trigger{Kind: TriggerUpdate, Previous: StatusCompleted, Next: StatusCompleted})
	assert.False(t, ok)

	for _, next := range []Status{StatusScheduled, StatusCancelled} {
		_, ok := CascadeFor(Trigger{Kind: TriggerUpdate, Previous: StatusInProgress, Next: next})
		assert.False(t, ok, next)
	}
}

func TestCascadeFor_Delete(t *testing.T) {
	c, ok := CascadeFor(Trigger{Kind: TriggerDelete, EquipmentStatus: equipment.StatusMaintenance})
	require.True(t, ok)
	assert.Equal(t, equipment.StatusAvailable, c.Status)

	for _, st := range []equipment.Status{equipment.StatusAvailable, equipment.StatusOutOfOrder, equipment.StatusInUse} {
		_, ok := CascadeFor(Trigger{Kind: TriggerDelete, EquipmentStatus: st})
		assert.False(t, ok, st)
	}
}

func TestCascade_Apply(t *testing.T) {
	eq := &models.Equipment{Status: equipment.StatusMaintenance, MaintenanceCount: 4}
	day := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	Cascade{Status: equipment.StatusAvailable, StampCompleted: true}.Apply(eq, day)

	assert.Equal(t, equipment.StatusAvailable, eq.Status)
	assert.Equal(t, 5, eq.MaintenanceCount)
	require.NotNil(t, eq.LastMaintenanceDate)
	assert.True(t, eq.LastMaintenanceDate.Equal(day))

	Cascade{Status: equipment.StatusMaintenance}.Apply(eq, day.AddDate(0, 0, 1))
	assert.Equal(t, 5, eq.MaintenanceCount)
	assert.True(t, eq.LastMaintenanceDate.Equal(day))
}

func TestComplete(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	task := &models.MaintenanceTask{Status: string(StatusInProgress)}

	c, ok := Complete(task, now)
	require.True(t, ok)
	assert.Equal(t, string(StatusCompleted), task.Status)
	require.NotNil(t, task.CompletedDate)
	assert.True(t, task.CompletedDate.Equal(now))
	assert.True(t, c.StampCompleted)

	_, ok = Complete(task, now.Add(time.Hour))
	assert.False(t, ok)
	assert.True(t, task.CompletedDate.Equal(now))
}

func TestCancel(t *testing.T) {
	task := &models.MaintenanceTask{Status: string(StatusScheduled)}
	require.NoError(t, Cancel(task))
	assert.Equal(t, string(StatusCancelled), task.Status)

	done := &models.MaintenanceTask{Status: string(StatusCompleted)}
	assert.Error(t, Cancel(done))
}

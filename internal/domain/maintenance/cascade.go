package maintenance

import (
	"time"

	"github.com/BruksfildServices01/gym-backoffice/internal/domain/equipment"
	"github.com/BruksfildServices01/gym-backoffice/internal/httperr"
	"github.com/BruksfildServices01/gym-backoffice/internal/models"
)

// Trigger is the task mutation that may cascade into equipment state.
type Trigger struct {
	Kind     TriggerKind
	Priority Priority

	// Previous and Next are the stored statuses around an update.
	Previous Status
	Next     Status

	// EquipmentStatus is the equipment's current status, read before the cascade.
	EquipmentStatus equipment.Status
}

type TriggerKind int

const (
	TriggerCreate TriggerKind = iota
	TriggerUpdate
	TriggerDelete
)

// Cascade describes the equipment change a trigger causes.
type Cascade struct {
	Status         equipment.Status
	StampCompleted bool
}

// CascadeFor returns the equipment change for a trigger, or false when
// equipment state is left untouched. Last writer wins: no other open task is
// consulted.
func CascadeFor(t Trigger) (Cascade, bool) {
	switch t.Kind {
	case TriggerCreate:
		if t.Priority == PriorityHigh {
			return Cascade{Status: equipment.StatusMaintenance}, true
		}

	case TriggerUpdate:
		switch t.Next {
		case StatusInProgress:
			return Cascade{Status: equipment.StatusMaintenance}, true
		case StatusCompleted:
			if t.Previous != StatusCompleted {
				return Cascade{Status: equipment.StatusAvailable, StampCompleted: true}, true
			}
		}

	case TriggerDelete:
		if t.EquipmentStatus == equipment.StatusMaintenance {
			return Cascade{Status: equipment.StatusAvailable}, true
		}
	}

	return Cascade{}, false
}

// Apply writes the cascade onto the equipment row in memory.
func (c Cascade) Apply(eq *models.Equipment, today time.Time) {
	eq.Status = c.Status
	if c.StampCompleted {
		eq.LastMaintenanceDate = &today
		eq.MaintenanceCount++
	}
}

// ===============================
// Domain Actions
// ===============================

// Complete marks a task completed and returns the cascade to apply.
func Complete(task *models.MaintenanceTask, now time.Time) (Cascade, bool) {
	prev := Status(task.Status)

	task.Status = string(StatusCompleted)
	if prev != StatusCompleted || task.CompletedDate == nil {
		task.CompletedDate = &now
	}

	return CascadeFor(Trigger{
		Kind:     TriggerUpdate,
		Previous: prev,
		Next:     StatusCompleted,
	})
}

// Cancel marks a task cancelled. Cancelling never touches equipment.
func Cancel(task *models.MaintenanceTask) error {
	if Status(task.Status) == StatusCompleted {
		return httperr.ErrBusiness("invalid_state")
	}
	task.Status = string(StatusCancelled)
	return nil
}

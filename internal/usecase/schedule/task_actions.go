package schedule

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/gym-backoffice/internal/audit"
	"github.com/BruksfildServices01/gym-backoffice/internal/domain/maintenance"
	domain "github.com/BruksfildServices01/gym-backoffice/internal/domain/schedule"
	"github.com/BruksfildServices01/gym-backoffice/internal/models"
	"github.com/BruksfildServices01/gym-backoffice/internal/timezone"
)

// Shared by the quick actions, the bulk action and delete. All of them run
// inside a caller-owned transaction.

func completeTask(
	ctx context.Context,
	tx domain.Repository,
	actor uint,
	task *models.MaintenanceTask,
	clock timezone.Clock,
	changed *cascades,
) error {

	previous := task.Status
	c, ok := maintenance.Complete(task, clock.Now())

	if err := tx.UpdateTask(ctx, task); err != nil {
		return fmt.Errorf("complete maintenance task %d: %w", task.ID, err)
	}

	if ok {
		eq, err := tx.GetEquipment(ctx, task.EquipmentID)
		if err != nil {
			return mapNotFound(err, "equipment_not_found")
		}
		c.Apply(eq, clock.Today())
		if err := tx.SaveEquipment(ctx, eq); err != nil {
			return fmt.Errorf("update equipment %d: %w", eq.ID, err)
		}
		changed.add(c.Status)
	}

	return logActivity(ctx, tx, audit.Event{
		UserID:      actor,
		EquipmentID: &task.EquipmentID,
		Action:      "maintenance_completed",
		Entity:      entityMaintenance,
		EntityID:    &task.ID,
		Details: map[string]any{
			"previous_status": previous,
			"equipment":       task.Equipment.Name,
		},
	})
}

func cancelTask(
	ctx context.Context,
	tx domain.Repository,
	actor uint,
	task *models.MaintenanceTask,
) error {

	previous := task.Status
	if err := maintenance.Cancel(task); err != nil {
		return err
	}

	if err := tx.UpdateTask(ctx, task); err != nil {
		return fmt.Errorf("cancel maintenance task %d: %w", task.ID, err)
	}

	return logActivity(ctx, tx, audit.Event{
		UserID:      actor,
		EquipmentID: &task.EquipmentID,
		Action:      "maintenance_cancelled",
		Entity:      entityMaintenance,
		EntityID:    &task.ID,
		Details: map[string]any{
			"previous_status": previous,
			"equipment":       task.Equipment.Name,
		},
	})
}

// deleteTask reverts equipment that is in Maintenance back to Available
// without looking at other open tasks for the same equipment.
func deleteTask(
	ctx context.Context,
	tx domain.Repository,
	actor uint,
	task *models.MaintenanceTask,
	clock timezone.Clock,
	changed *cascades,
) error {

	if err := tx.DeleteTask(ctx, task.ID); err != nil {
		return mapNotFound(err, "task_not_found")
	}

	eq, err := tx.GetEquipment(ctx, task.EquipmentID)
	if err != nil {
		return mapNotFound(err, "equipment_not_found")
	}

	if c, ok := maintenance.CascadeFor(maintenance.Trigger{
		Kind:            maintenance.TriggerDelete,
		EquipmentStatus: eq.Status,
	}); ok {
		c.Apply(eq, clock.Today())
		if err := tx.SaveEquipment(ctx, eq); err != nil {
			return fmt.Errorf("update equipment %d: %w", eq.ID, err)
		}
		changed.add(c.Status)
	}

	return logActivity(ctx, tx, audit.Event{
		UserID:      actor,
		EquipmentID: &eq.ID,
		Action:      "maintenance_deleted",
		Entity:      entityMaintenance,
		EntityID:    &task.ID,
		Details: map[string]any{
			"equipment":        eq.Name,
			"maintenance_type": task.MaintenanceType,
			"status":           task.Status,
		},
	})
}

package schedule

import (
	"context"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/gym-backoffice/internal/audit"
	"github.com/BruksfildServices01/gym-backoffice/internal/cache"
	"github.com/BruksfildServices01/gym-backoffice/internal/domain/calendar"
	"github.com/BruksfildServices01/gym-backoffice/internal/domain/maintenance"
	domain "github.com/BruksfildServices01/gym-backoffice/internal/domain/schedule"
	"github.com/BruksfildServices01/gym-backoffice/internal/dto"
	"github.com/BruksfildServices01/gym-backoffice/internal/metrics"
	"github.com/BruksfildServices01/gym-backoffice/internal/models"
	"github.com/BruksfildServices01/gym-backoffice/internal/timezone"
)

type UpdateEntry struct {
	repo  domain.Repository
	clock timezone.Clock
	stats cache.StatsCache
}

func NewUpdateEntry(
	repo domain.Repository,
	clock timezone.Clock,
	stats cache.StatsCache,
) *UpdateEntry {
	return &UpdateEntry{
		repo:  repo,
		clock: clock,
		stats: statsCache(stats),
	}
}

// Execute overwrites every field of the task or event identified by id and
// the input's event type. Recurrence settings are stored but no new
// follow-ups are generated on update.
func (uc *UpdateEntry) Execute(
	ctx context.Context,
	actor uint,
	id uint,
	in UpdateInput,
) (*dto.MutationResult, error) {

	e, err := in.validate(uc.clock.Location())
	if err != nil {
		return nil, err
	}

	var next maintenance.Status
	if e.eventType.IsMaintenance() && strings.TrimSpace(in.Status) != "" {
		if next, err = maintenance.ParseStoredStatus(in.Status); err != nil {
			return nil, err
		}
	}

	var (
		res     *dto.MutationResult
		changed cascades
	)

	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		var txErr error
		if e.eventType.IsMaintenance() {
			res, txErr = uc.updateTask(ctx, tx, actor, id, e, in, next, &changed)
		} else {
			res, txErr = uc.updateEvent(ctx, tx, actor, id, e)
		}
		return txErr
	})

	metrics.RecordMutation("update", string(e.eventType), err)
	if err != nil {
		return nil, err
	}

	changed.record()
	uc.stats.Invalidate(ctx)

	return res, nil
}

// --------------------------------------------------
// Maintenance
// --------------------------------------------------

func (uc *UpdateEntry) updateTask(
	ctx context.Context,
	tx domain.Repository,
	actor uint,
	id uint,
	e entry,
	in UpdateInput,
	next maintenance.Status,
	changed *cascades,
) (*dto.MutationResult, error) {

	task, err := tx.GetTask(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "task_not_found")
	}

	eq, err := tx.GetEquipment(ctx, *e.EquipmentID)
	if err != nil {
		return nil, mapNotFound(err, "equipment_not_found")
	}

	if _, err := assignee(ctx, tx, e.AssignedTo); err != nil {
		return nil, err
	}

	previous := maintenance.Status(task.Status)
	if next == "" {
		next = previous
	}

	task.EquipmentID = eq.ID
	task.ScheduledDate = e.start
	task.MaintenanceType = e.MaintenanceType
	task.Description = e.Description
	task.Priority = string(e.priority)
	task.AssignedTo = e.AssignedTo
	task.EstimatedDuration = e.EstimatedDuration
	task.EstimatedCost = e.EstimatedCost
	task.ActualDuration = in.ActualDuration
	task.ActualCost = in.ActualCost
	task.Location = e.Location
	task.Notes = e.Notes
	task.CompletionNotes = in.CompletionNotes
	task.RecurrencePattern = string(e.pattern)
	task.Tags = e.tags

	// --------------------------------------------------
	// Status + equipment cascade
	// --------------------------------------------------
	var (
		c  maintenance.Cascade
		ok bool
	)
	if next == maintenance.StatusCompleted {
		c, ok = maintenance.Complete(task, uc.clock.Now())
	} else {
		task.Status = string(next)
		task.CompletedDate = nil
		c, ok = maintenance.CascadeFor(maintenance.Trigger{
			Kind:     maintenance.TriggerUpdate,
			Previous: previous,
			Next:     next,
		})
	}

	if err := tx.UpdateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("update maintenance task %d: %w", task.ID, err)
	}

	if ok {
		c.Apply(eq, uc.clock.Today())
		if err := tx.SaveEquipment(ctx, eq); err != nil {
			return nil, fmt.Errorf("update equipment %d: %w", eq.ID, err)
		}
		changed.add(c.Status)
	}

	err = logActivity(ctx, tx, audit.Event{
		UserID:      actor,
		EquipmentID: &eq.ID,
		Action:      "maintenance_updated",
		Entity:      entityMaintenance,
		EntityID:    &task.ID,
		Details: map[string]any{
			"equipment":       eq.Name,
			"previous_status": string(previous),
			"status":          task.Status,
			"priority":        task.Priority,
			"actual_cost":     task.ActualCost,
			"actual_duration": task.ActualDuration,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("log activity: %w", err)
	}

	return &dto.MutationResult{
		ID:        task.ID,
		StreamID:  calendar.StreamID(calendar.EventMaintenance, task.ID),
		EventType: string(calendar.EventMaintenance),
		Message:   "Maintenance updated successfully",
	}, nil
}

// --------------------------------------------------
// Calendar event
// --------------------------------------------------

func (uc *UpdateEntry) updateEvent(
	ctx context.Context,
	tx domain.Repository,
	actor uint,
	id uint,
	e entry,
) (*dto.MutationResult, error) {

	ev, err := tx.GetEvent(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "event_not_found")
	}

	var eq *models.Equipment
	if e.EquipmentID != nil {
		if eq, err = tx.GetEquipment(ctx, *e.EquipmentID); err != nil {
			return nil, mapNotFound(err, "equipment_not_found")
		}
	}

	if _, err := assignee(ctx, tx, e.AssignedTo); err != nil {
		return nil, err
	}

	ev.Title = e.Title
	ev.StartDate = e.start
	ev.EndDate = e.end
	ev.AllDay = e.AllDay
	ev.EquipmentID = e.EquipmentID
	ev.EventType = string(e.eventType)
	ev.Description = e.Description
	ev.Priority = string(e.priority)
	ev.AssignedTo = e.AssignedTo
	ev.Color = e.Color
	ev.Location = e.Location
	ev.EstimatedDuration = e.EstimatedDuration
	ev.EstimatedCost = e.EstimatedCost
	ev.Notes = e.Notes
	ev.ReminderTime = e.ReminderTime
	ev.RecurrencePattern = string(e.pattern)
	ev.Tags = e.tags

	if err := tx.UpdateEvent(ctx, ev); err != nil {
		return nil, fmt.Errorf("update calendar event %d: %w", ev.ID, err)
	}

	err = logActivity(ctx, tx, audit.Event{
		UserID:      actor,
		EquipmentID: e.EquipmentID,
		Action:      "event_updated",
		Entity:      entityEvent,
		EntityID:    &ev.ID,
		Details: map[string]any{
			"event_type": ev.EventType,
			"title":      ev.Title,
			"equipment":  equipmentName(eq),
			"priority":   ev.Priority,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("log activity: %w", err)
	}

	return &dto.MutationResult{
		ID:        ev.ID,
		StreamID:  calendar.StreamID(e.eventType, ev.ID),
		EventType: ev.EventType,
		Message:   "Event updated successfully",
	}, nil
}

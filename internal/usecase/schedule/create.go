package schedule

import (
	"context"
	"fmt"

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

// ======================================================
// USE CASE
// ======================================================

type CreateEntry struct {
	repo  domain.Repository
	clock timezone.Clock
	stats cache.StatsCache
}

func NewCreateEntry(
	repo domain.Repository,
	clock timezone.Clock,
	stats cache.StatsCache,
) *CreateEntry {
	return &CreateEntry{
		repo:  repo,
		clock: clock,
		stats: statsCache(stats),
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute creates a maintenance task or a calendar event depending on the
// event type. Every write, including side effects, shares one transaction.
func (uc *CreateEntry) Execute(
	ctx context.Context,
	actor uint,
	in EntryInput,
) (*dto.MutationResult, error) {

	e, err := in.validate(uc.clock.Location())
	if err != nil {
		return nil, err
	}

	var (
		res     *dto.MutationResult
		changed cascades
	)

	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		var txErr error
		if e.eventType.IsMaintenance() {
			res, txErr = uc.createTask(ctx, tx, actor, e, &changed)
		} else {
			res, txErr = uc.createEvent(ctx, tx, actor, e)
		}
		return txErr
	})

	metrics.RecordMutation("create", string(e.eventType), err)
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

func (uc *CreateEntry) createTask(
	ctx context.Context,
	tx domain.Repository,
	actor uint,
	e entry,
	changed *cascades,
) (*dto.MutationResult, error) {

	eq, err := tx.GetEquipment(ctx, *e.EquipmentID)
	if err != nil {
		return nil, mapNotFound(err, "equipment_not_found")
	}

	user, err := assignee(ctx, tx, e.AssignedTo)
	if err != nil {
		return nil, err
	}

	task := &models.MaintenanceTask{
		EquipmentID:       eq.ID,
		ScheduledDate:     e.start,
		MaintenanceType:   e.MaintenanceType,
		Description:       e.Description,
		Priority:          string(e.priority),
		Status:            string(maintenance.InitialStatus()),
		AssignedTo:        e.AssignedTo,
		EstimatedDuration: e.EstimatedDuration,
		EstimatedCost:     e.EstimatedCost,
		Location:          e.Location,
		Notes:             e.Notes,
		RecurrencePattern: string(e.pattern),
		Tags:              e.tags,
		CreatedBy:         actor,
	}

	if err := tx.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("create maintenance task: %w", err)
	}

	// --------------------------------------------------
	// Equipment cascade
	// --------------------------------------------------
	if c, ok := maintenance.CascadeFor(maintenance.Trigger{
		Kind:            maintenance.TriggerCreate,
		Priority:        e.priority,
		EquipmentStatus: eq.Status,
	}); ok {
		c.Apply(eq, uc.clock.Today())
		changed.add(c.Status)
	}

	next := e.start
	eq.NextMaintenanceDate = &next

	if err := tx.SaveEquipment(ctx, eq); err != nil {
		return nil, fmt.Errorf("update equipment %d: %w", eq.ID, err)
	}

	// --------------------------------------------------
	// Notification
	// --------------------------------------------------
	if user != nil {
		n := &models.Notification{
			UserID:    user.ID,
			Title:     "Maintenance Assigned",
			Message:   fmt.Sprintf("You have been assigned maintenance for %s on %s", eq.Name, e.start.Format("Jan 2, 2006")),
			Type:      "maintenance",
			RelatedID: &task.ID,
			Priority:  string(e.priority),
		}
		if err := tx.CreateNotification(ctx, n); err != nil {
			return nil, fmt.Errorf("notify assignee: %w", err)
		}
	}

	// --------------------------------------------------
	// Recurrences
	// --------------------------------------------------
	var followUps []uint
	for _, occ := range calendar.GenerateRecurrences(e.pattern, e.start, e.end, e.until) {
		child := *task
		child.ID = 0
		child.ScheduledDate = occ.Start
		child.RecurrenceParentID = &task.ID

		if err := tx.CreateTask(ctx, &child); err != nil {
			return nil, fmt.Errorf("create recurrence: %w", err)
		}
		followUps = append(followUps, child.ID)
	}

	// --------------------------------------------------
	// Activity
	// --------------------------------------------------
	err = logActivity(ctx, tx, audit.Event{
		UserID:      actor,
		EquipmentID: &eq.ID,
		Action:      "maintenance_created",
		Entity:      entityMaintenance,
		EntityID:    &task.ID,
		Details: map[string]any{
			"event_type":     string(e.eventType),
			"title":          e.Title,
			"equipment":      eq.Name,
			"priority":       string(e.priority),
			"assignee":       assigneeName(user),
			"estimated_cost": e.EstimatedCost,
			"follow_ups":     len(followUps),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("log activity: %w", err)
	}

	return &dto.MutationResult{
		ID:        task.ID,
		StreamID:  calendar.StreamID(e.eventType, task.ID),
		EventType: string(e.eventType),
		Message:   "Maintenance scheduled successfully",
		FollowUps: followUps,
	}, nil
}

// --------------------------------------------------
// Calendar event
// --------------------------------------------------

func (uc *CreateEntry) createEvent(
	ctx context.Context,
	tx domain.Repository,
	actor uint,
	e entry,
) (*dto.MutationResult, error) {

	var eq *models.Equipment
	if e.EquipmentID != nil {
		found, err := tx.GetEquipment(ctx, *e.EquipmentID)
		if err != nil {
			return nil, mapNotFound(err, "equipment_not_found")
		}
		eq = found
	}

	user, err := assignee(ctx, tx, e.AssignedTo)
	if err != nil {
		return nil, err
	}

	ev := &models.CalendarEvent{
		Title:             e.Title,
		StartDate:         e.start,
		EndDate:           e.end,
		AllDay:            e.AllDay,
		EquipmentID:       e.EquipmentID,
		EventType:         string(e.eventType),
		Description:       e.Description,
		Priority:          string(e.priority),
		AssignedTo:        e.AssignedTo,
		Color:             e.Color,
		Location:          e.Location,
		EstimatedDuration: e.EstimatedDuration,
		EstimatedCost:     e.EstimatedCost,
		Notes:             e.Notes,
		ReminderTime:      e.ReminderTime,
		RecurrencePattern: string(e.pattern),
		Tags:              e.tags,
		CreatedBy:         actor,
	}

	if err := tx.CreateEvent(ctx, ev); err != nil {
		return nil, fmt.Errorf("create calendar event: %w", err)
	}

	var followUps []uint
	for _, occ := range calendar.GenerateRecurrences(e.pattern, e.start, e.end, e.until) {
		child := *ev
		child.ID = 0
		child.StartDate = occ.Start
		child.EndDate = occ.End
		child.RecurrenceParentID = &ev.ID

		if err := tx.CreateEvent(ctx, &child); err != nil {
			return nil, fmt.Errorf("create recurrence: %w", err)
		}
		followUps = append(followUps, child.ID)
	}

	err = logActivity(ctx, tx, audit.Event{
		UserID:      actor,
		EquipmentID: e.EquipmentID,
		Action:      "event_created",
		Entity:      entityEvent,
		EntityID:    &ev.ID,
		Details: map[string]any{
			"event_type":     string(e.eventType),
			"title":          e.Title,
			"equipment":      equipmentName(eq),
			"priority":       string(e.priority),
			"assignee":       assigneeName(user),
			"estimated_cost": e.EstimatedCost,
			"follow_ups":     len(followUps),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("log activity: %w", err)
	}

	return &dto.MutationResult{
		ID:        ev.ID,
		StreamID:  calendar.StreamID(e.eventType, ev.ID),
		EventType: string(e.eventType),
		Message:   "Event created successfully",
		FollowUps: followUps,
	}, nil
}

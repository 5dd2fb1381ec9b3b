package schedule

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/BruksfildServices01/gym-backoffice/internal/domain/calendar"
	"github.com/BruksfildServices01/gym-backoffice/internal/domain/maintenance"
	domain "github.com/BruksfildServices01/gym-backoffice/internal/domain/schedule"
	"github.com/BruksfildServices01/gym-backoffice/internal/dto"
	"github.com/BruksfildServices01/gym-backoffice/internal/models"
	"github.com/BruksfildServices01/gym-backoffice/internal/timezone"
)

// ListEvents builds the merged calendar feed of maintenance tasks and
// calendar events.
type ListEvents struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewListEvents(repo domain.Repository, clock timezone.Clock) *ListEvents {
	return &ListEvents{repo: repo, clock: clock}
}

func (uc *ListEvents) Execute(
	ctx context.Context,
	filter calendar.Filter,
) ([]dto.FeedItem, error) {

	today := uc.clock.Today()
	items := make([]dto.FeedItem, 0)

	if filter.IncludesTasks() {
		tasks, err := uc.repo.ListTasks(ctx, filter, domain.ListQuery{Today: today})
		if err != nil {
			return nil, err
		}
		for i := range tasks {
			items = append(items, taskFeedItem(&tasks[i], today))
		}
	}

	if filter.IncludesEvents() {
		events, err := uc.repo.ListEvents(ctx, filter)
		if err != nil {
			return nil, err
		}
		for i := range events {
			items = append(items, eventFeedItem(&events[i]))
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Start.Before(items[j].Start)
	})

	return items, nil
}

func taskFeedItem(t *models.MaintenanceTask, today time.Time) dto.FeedItem {
	priority := maintenance.Priority(t.Priority)
	display := maintenance.DisplayStatus(maintenance.Status(t.Status), t.ScheduledDate, today)

	var end *time.Time
	if t.EstimatedDuration > 0 {
		e := t.ScheduledDate.Add(time.Duration(t.EstimatedDuration) * time.Minute)
		end = &e
	}

	return dto.FeedItem{
		ID:     calendar.StreamID(calendar.EventMaintenance, t.ID),
		Title:  t.Equipment.Name + " - " + t.MaintenanceType,
		Start:  t.ScheduledDate,
		End:    end,
		AllDay: false,
		Color:  calendar.ColorFor(calendar.EventMaintenance, priority, display, ""),
		ClassNames: []string{
			"maintenance-event",
			"priority-" + slug(string(priority)),
			"status-" + slug(string(display)),
		},
		ExtendedProps: map[string]any{
			"type":               "maintenance",
			"event_type":         string(calendar.EventMaintenance),
			"task_id":            t.ID,
			"equipment_id":       t.EquipmentID,
			"equipment_name":     t.Equipment.Name,
			"equipment_status":   t.Equipment.Status.String(),
			"maintenance_type":   t.MaintenanceType,
			"description":        t.Description,
			"priority":           t.Priority,
			"status":             t.Status,
			"display_status":     string(display),
			"assigned_to":        t.AssignedTo,
			"assignee_name":      assigneeName(t.Assignee),
			"estimated_duration": t.EstimatedDuration,
			"estimated_cost":     t.EstimatedCost,
			"actual_cost":        t.ActualCost,
			"location":           t.Location,
			"notes":              t.Notes,
			"recurrence_pattern": t.RecurrencePattern,
		},
	}
}

func eventFeedItem(ev *models.CalendarEvent) dto.FeedItem {
	eventType := calendar.EventType(ev.EventType)

	props := map[string]any{
		"type":               "event",
		"event_type":         ev.EventType,
		"event_id":           ev.ID,
		"equipment_id":       ev.EquipmentID,
		"equipment_name":     equipmentName(ev.Equipment),
		"description":        ev.Description,
		"priority":           ev.Priority,
		"assigned_to":        ev.AssignedTo,
		"assignee_name":      assigneeName(ev.Assignee),
		"location":           ev.Location,
		"estimated_duration": ev.EstimatedDuration,
		"estimated_cost":     ev.EstimatedCost,
		"notes":              ev.Notes,
		"reminder_time":      ev.ReminderTime,
		"recurrence_pattern": ev.RecurrencePattern,
	}

	return dto.FeedItem{
		ID:     calendar.StreamID(eventType, ev.ID),
		Title:  ev.Title,
		Start:  ev.StartDate,
		End:    ev.EndDate,
		AllDay: ev.AllDay,
		Color:  calendar.ColorFor(eventType, maintenance.Priority(ev.Priority), "", ev.Color),
		ClassNames: []string{
			"calendar-event",
			"event-" + slug(ev.EventType),
		},
		ExtendedProps: props,
	}
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

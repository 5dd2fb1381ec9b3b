package maintenance

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/gym-backoffice/internal/httperr"
)

// ===============================
// Task Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "Scheduled"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"

	// StatusOverdue is display-only and never stored.
	StatusOverdue Status = "Overdue"
)

var statusByKey = map[string]Status{
	"scheduled":   StatusScheduled,
	"in progress": StatusInProgress,
	"in_progress": StatusInProgress,
	"completed":   StatusCompleted,
	"cancelled":   StatusCancelled,
	"canceled":    StatusCancelled,
	"overdue":     StatusOverdue,
}

// ParseStatus accepts any casing and the snake_case spelling used by filters.
func ParseStatus(raw string) (Status, error) {
	if st, ok := statusByKey[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return st, nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// ParseStoredStatus rejects Overdue: only explicit lifecycle values are persisted.
func ParseStoredStatus(raw string) (Status, error) {
	st, err := ParseStatus(raw)
	if err != nil {
		return "", err
	}
	if st == StatusOverdue {
		return "", httperr.ErrBusiness("invalid_status")
	}
	return st, nil
}

// InitialStatus is the status every new task starts in.
func InitialStatus() Status {
	return StatusScheduled
}

// IsOverdue reports whether a task is past due. today must be the start of
// the current day; a scheduled date on today is not overdue.
func IsOverdue(stored Status, scheduled time.Time, today time.Time) bool {
	return stored != StatusCompleted && scheduled.Before(today)
}

// DisplayStatus overlays Overdue on the stored status without changing it.
func DisplayStatus(stored Status, scheduled time.Time, today time.Time) Status {
	if IsOverdue(stored, scheduled, today) {
		return StatusOverdue
	}
	return stored
}

// ===============================
// Priority
// ===============================

type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

func ParsePriority(raw string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	case "critical":
		return PriorityCritical, nil
	}
	return "", httperr.ErrBusiness("invalid_priority")
}

var priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// IsUrgent covers the priorities counted as high on the dashboard.
func (p Priority) IsUrgent() bool {
	return p == PriorityHigh || p == PriorityCritical
}

// UrgentPriorities lists the stored values matched by IsUrgent.
func UrgentPriorities() []string {
	var out []string
	for _, p := range priorities {
		if p.IsUrgent() {
			out = append(out, string(p))
		}
	}
	return out
}

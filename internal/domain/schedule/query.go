package schedule

import "time"

// ListQuery carries what a filtered task listing needs besides the filter.
type ListQuery struct {
	// Today anchors the derived Overdue predicate.
	Today time.Time
	Limit int
}

// StatisticsQuery makes every window explicit; pages used to disagree on
// 30 vs 90 days.
type StatisticsQuery struct {
	Now          time.Time
	Today        time.Time
	WindowDays   int
	UpcomingDays int
}

const (
	DefaultWindowDays   = 30
	DefaultUpcomingDays = 7
	MaxWindowDays       = 366
)

// Normalize fills defaults and clamps windows to sane bounds.
func (q StatisticsQuery) Normalize() StatisticsQuery {
	if q.WindowDays <= 0 {
		q.WindowDays = DefaultWindowDays
	}
	if q.WindowDays > MaxWindowDays {
		q.WindowDays = MaxWindowDays
	}
	if q.UpcomingDays <= 0 {
		q.UpcomingDays = DefaultUpcomingDays
	}
	if q.UpcomingDays > MaxWindowDays {
		q.UpcomingDays = MaxWindowDays
	}
	return q
}

// WindowStart is the first instant counted by the "last N days" figures.
func (q StatisticsQuery) WindowStart() time.Time {
	return q.Today.AddDate(0, 0, -q.WindowDays)
}

// UpcomingEnd closes the "next N days" calendar window.
func (q StatisticsQuery) UpcomingEnd() time.Time {
	return q.Now.AddDate(0, 0, q.UpcomingDays)
}

type Statistics struct {
	Scheduled              int64   `json:"scheduled"`
	InProgress             int64   `json:"in_progress"`
	CompletedInWindow      int64   `json:"completed_in_window"`
	Overdue                int64   `json:"overdue_maintenance"`
	HighPriorityOpen       int64   `json:"high_priority_open"`
	UpcomingEvents         int64   `json:"upcoming_events"`
	EquipmentMaintained    int64   `json:"equipment_maintained"`
	EquipmentInMaintenance int64   `json:"equipment_in_maintenance"`
	TotalActualCost        float64 `json:"total_actual_cost"`
	AverageActualCost      float64 `json:"average_actual_cost"`

	WindowDays   int `json:"window_days"`
	UpcomingDays int `json:"upcoming_days"`
}

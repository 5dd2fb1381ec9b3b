package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-backoffice/internal/domain/calendar"
	"github.com/BruksfildServices01/gym-backoffice/internal/domain/maintenance"
	"github.com/BruksfildServices01/gym-backoffice/internal/domain/schedule"
	"github.com/BruksfildServices01/gym-backoffice/internal/models"
)

type costAggregate struct {
	Total   float64
	Average float64
}

// Statistics runs the dashboard aggregates. Every windowed figure uses the
// windows carried by q; overdue reuses calendar.OverduePredicate.
func (r *ScheduleGormRepository) Statistics(
	ctx context.Context,
	q schedule.StatisticsQuery,
) (*schedule.Statistics, error) {

	q = q.Normalize()
	db := r.db.WithContext(ctx)
	tasks := func() *gorm.DB { return db.Model(&models.MaintenanceTask{}) }

	completed := string(maintenance.StatusCompleted)
	cancelled := string(maintenance.StatusCancelled)
	windowStart := q.WindowStart()

	out := &schedule.Statistics{
		WindowDays:   q.WindowDays,
		UpcomingDays: q.UpcomingDays,
	}

	overdue := calendar.OverduePredicate(q.Today)

	counts := []struct {
		name  string
		dest  *int64
		query *gorm.DB
	}{
		{
			name:  "scheduled",
			dest:  &out.Scheduled,
			query: tasks().Where("status = ?", string(maintenance.StatusScheduled)),
		},
		{
			name:  "in_progress",
			dest:  &out.InProgress,
			query: tasks().Where("status = ?", string(maintenance.StatusInProgress)),
		},
		{
			name: "completed_in_window",
			dest: &out.CompletedInWindow,
			query: tasks().
				Where("status = ? AND completed_date >= ?", completed, windowStart),
		},
		{
			name:  "overdue",
			dest:  &out.Overdue,
			query: tasks().Where(overdue.SQL, overdue.Args...),
		},
		{
			name: "high_priority_open",
			dest: &out.HighPriorityOpen,
			query: tasks().
				Where("priority IN ?", maintenance.UrgentPriorities()).
				Where("status NOT IN ?", []string{completed, cancelled}),
		},
		{
			name: "upcoming_events",
			dest: &out.UpcomingEvents,
			query: db.Model(&models.CalendarEvent{}).
				Where("start_date >= ? AND start_date < ?", q.Now, q.UpcomingEnd()),
		},
		{
			name: "equipment_maintained",
			dest: &out.EquipmentMaintained,
			query: tasks().
				Distinct("equipment_id").
				Where("status = ? AND completed_date >= ?", completed, windowStart),
		},
		{
			name: "equipment_in_maintenance",
			dest: &out.EquipmentInMaintenance,
			query: db.Model(&models.Equipment{}).
				Where("LOWER(status) IN ?", []string{"maintenance", "under maintenance"}),
		},
	}

	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("statistics %s: %w", c.name, err)
		}
	}

	var cost costAggregate
	if err := tasks().
		Select("COALESCE(SUM(actual_cost), 0) AS total, COALESCE(AVG(actual_cost), 0) AS average").
		Where("status = ? AND completed_date >= ?", completed, windowStart).
		Scan(&cost).Error; err != nil {
		return nil, fmt.Errorf("statistics cost: %w", err)
	}

	out.TotalActualCost = cost.Total
	out.AverageActualCost = cost.Average

	return out, nil
}

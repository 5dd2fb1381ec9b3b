package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/gym-backoffice/internal/domain/calendar"
	"github.com/BruksfildServices01/gym-backoffice/internal/domain/maintenance"
	domain "github.com/BruksfildServices01/gym-backoffice/internal/domain/schedule"
	"github.com/BruksfildServices01/gym-backoffice/internal/dto"
	"github.com/BruksfildServices01/gym-backoffice/internal/models"
	"github.com/BruksfildServices01/gym-backoffice/internal/timezone"
)

// ListTasks is the tabular view of the maintenance schedule. Exports read the
// exact same rows.
type ListTasks struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewListTasks(repo domain.Repository, clock timezone.Clock) *ListTasks {
	return &ListTasks{repo: repo, clock: clock}
}

func (uc *ListTasks) Execute(
	ctx context.Context,
	filter calendar.Filter,
	limit int,
) ([]dto.TaskListDTO, error) {

	if !filter.IncludesTasks() {
		return []dto.TaskListDTO{}, nil
	}

	today := uc.clock.Today()

	tasks, err := uc.repo.ListTasks(ctx, filter, domain.ListQuery{
		Today: today,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.TaskListDTO, 0, len(tasks))
	for i := range tasks {
		out = append(out, taskRow(&tasks[i], today))
	}
	return out, nil
}

func taskRow(t *models.MaintenanceTask, today time.Time) dto.TaskListDTO {
	display := maintenance.DisplayStatus(maintenance.Status(t.Status), t.ScheduledDate, today)

	return dto.TaskListDTO{
		ID:              t.ID,
		EquipmentID:     t.EquipmentID,
		EquipmentName:   t.Equipment.Name,
		EquipmentStatus: t.Equipment.Status.String(),
		ScheduledDate:   t.ScheduledDate,
		MaintenanceType: t.MaintenanceType,
		Description:     t.Description,
		Priority:        t.Priority,
		Status:          t.Status,
		DisplayStatus:   string(display),
		AssignedTo:      t.AssignedTo,
		AssigneeName:    assigneeName(t.Assignee),
		EstimatedCost:   t.EstimatedCost,
		ActualCost:      t.ActualCost,
		ActualDuration:  t.ActualDuration,
		CompletedDate:   t.CompletedDate,
		Location:        t.Location,
	}
}

package schedule

import (
	"context"

	"github.com/BruksfildServices01/gym-backoffice/internal/cache"
	"github.com/BruksfildServices01/gym-backoffice/internal/domain/calendar"
	domain "github.com/BruksfildServices01/gym-backoffice/internal/domain/schedule"
	"github.com/BruksfildServices01/gym-backoffice/internal/metrics"
	"github.com/BruksfildServices01/gym-backoffice/internal/models"
	"github.com/BruksfildServices01/gym-backoffice/internal/timezone"
)

// CompleteTask backs the one-click "complete" action. Completing an already
// completed task is a no-op for the equipment.
type CompleteTask struct {
	repo  domain.Repository
	clock timezone.Clock
	stats cache.StatsCache
}

func NewCompleteTask(
	repo domain.Repository,
	clock timezone.Clock,
	stats cache.StatsCache,
) *CompleteTask {
	return &CompleteTask{
		repo:  repo,
		clock: clock,
		stats: statsCache(stats),
	}
}

func (uc *CompleteTask) Execute(
	ctx context.Context,
	actor uint,
	id uint,
) (*models.MaintenanceTask, error) {

	var (
		task    *models.MaintenanceTask
		changed cascades
	)

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		var err error
		if task, err = tx.GetTask(ctx, id); err != nil {
			return mapNotFound(err, "task_not_found")
		}
		return completeTask(ctx, tx, actor, task, uc.clock, &changed)
	})

	metrics.RecordMutation("complete", string(calendar.EventMaintenance), err)
	if err != nil {
		return nil, err
	}

	changed.record()
	uc.stats.Invalidate(ctx)

	return task, nil
}

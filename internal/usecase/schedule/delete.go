package schedule

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/gym-backoffice/internal/audit"
	"github.com/BruksfildServices01/gym-backoffice/internal/cache"
	"github.com/BruksfildServices01/gym-backoffice/internal/domain/calendar"
	domain "github.com/BruksfildServices01/gym-backoffice/internal/domain/schedule"
	"github.com/BruksfildServices01/gym-backoffice/internal/metrics"
	"github.com/BruksfildServices01/gym-backoffice/internal/timezone"
)

type DeleteEntry struct {
	repo  domain.Repository
	clock timezone.Clock
	stats cache.StatsCache
}

func NewDeleteEntry(
	repo domain.Repository,
	clock timezone.Clock,
	stats cache.StatsCache,
) *DeleteEntry {
	return &DeleteEntry{
		repo:  repo,
		clock: clock,
		stats: statsCache(stats),
	}
}

func (uc *DeleteEntry) Execute(
	ctx context.Context,
	actor uint,
	id uint,
	eventType calendar.EventType,
) error {

	var changed cascades

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		if eventType.IsMaintenance() {
			task, err := tx.GetTask(ctx, id)
			if err != nil {
				return mapNotFound(err, "task_not_found")
			}
			return deleteTask(ctx, tx, actor, task, uc.clock, &changed)
		}

		ev, err := tx.GetEvent(ctx, id)
		if err != nil {
			return mapNotFound(err, "event_not_found")
		}
		if err := tx.DeleteEvent(ctx, ev.ID); err != nil {
			return mapNotFound(err, "event_not_found")
		}

		if err := logActivity(ctx, tx, audit.Event{
			UserID:      actor,
			EquipmentID: ev.EquipmentID,
			Action:      "event_deleted",
			Entity:      entityEvent,
			EntityID:    &ev.ID,
			Details: map[string]any{
				"event_type": ev.EventType,
				"title":      ev.Title,
			},
		}); err != nil {
			return fmt.Errorf("log activity: %w", err)
		}
		return nil
	})

	metrics.RecordMutation("delete", string(eventType), err)
	if err != nil {
		return err
	}

	changed.record()
	uc.stats.Invalidate(ctx)

	return nil
}

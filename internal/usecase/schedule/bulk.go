package schedule

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/gym-backoffice/internal/cache"
	"github.com/BruksfildServices01/gym-backoffice/internal/domain/calendar"
	domain "github.com/BruksfildServices01/gym-backoffice/internal/domain/schedule"
	"github.com/BruksfildServices01/gym-backoffice/internal/httperr"
	"github.com/BruksfildServices01/gym-backoffice/internal/metrics"
	"github.com/BruksfildServices01/gym-backoffice/internal/timezone"
)

type BulkOperation string

const (
	BulkComplete BulkOperation = "complete"
	BulkCancel   BulkOperation = "cancel"
	BulkDelete   BulkOperation = "delete"
)

func ParseBulkOperation(raw string) (BulkOperation, error) {
	switch op := BulkOperation(strings.ToLower(strings.TrimSpace(raw))); op {
	case BulkComplete, BulkCancel, BulkDelete:
		return op, nil
	}
	return "", httperr.ErrBusiness("invalid_action")
}

// BulkAction applies one operation to many tasks. The batch is atomic: a
// missing id or a refused transition rolls back every task in it.
type BulkAction struct {
	repo  domain.Repository
	clock timezone.Clock
	stats cache.StatsCache
}

func NewBulkAction(
	repo domain.Repository,
	clock timezone.Clock,
	stats cache.StatsCache,
) *BulkAction {
	return &BulkAction{
		repo:  repo,
		clock: clock,
		stats: statsCache(stats),
	}
}

func (uc *BulkAction) Execute(
	ctx context.Context,
	actor uint,
	op BulkOperation,
	ids []uint,
) (int, error) {

	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return 0, httperr.ErrBusiness("missing_ids")
	}

	var changed cascades

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		for _, id := range ids {
			task, err := tx.GetTask(ctx, id)
			if err != nil {
				return mapNotFound(err, "task_not_found")
			}

			switch op {
			case BulkComplete:
				err = completeTask(ctx, tx, actor, task, uc.clock, &changed)
			case BulkCancel:
				err = cancelTask(ctx, tx, actor, task)
			case BulkDelete:
				err = deleteTask(ctx, tx, actor, task, uc.clock, &changed)
			default:
				err = httperr.ErrBusiness("invalid_action")
			}
			if err != nil {
				return err
			}
		}
		return nil
	})

	metrics.RecordMutation("bulk_"+string(op), string(calendar.EventMaintenance), err)
	if err != nil {
		return 0, err
	}

	changed.record()
	uc.stats.Invalidate(ctx)

	return len(ids), nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

package schedule

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/gym-backoffice/internal/audit"
	"github.com/BruksfildServices01/gym-backoffice/internal/cache"
	"github.com/BruksfildServices01/gym-backoffice/internal/domain/equipment"
	domain "github.com/BruksfildServices01/gym-backoffice/internal/domain/schedule"
	"github.com/BruksfildServices01/gym-backoffice/internal/httperr"
	"github.com/BruksfildServices01/gym-backoffice/internal/metrics"
	"github.com/BruksfildServices01/gym-backoffice/internal/models"
)

const (
	entityMaintenance = "maintenance"
	entityEvent       = "calendar_event"
)

// mapNotFound turns the repository sentinel into the caller-facing code.
func mapNotFound(err error, code string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}

func statsCache(c cache.StatsCache) cache.StatsCache {
	if c == nil {
		return cache.NopStatsCache{}
	}
	return c
}

// cascades collects equipment changes made inside a transaction so they are
// only counted once it commits.
type cascades []equipment.Status

func (c *cascades) add(st equipment.Status) {
	*c = append(*c, st)
}

func (c cascades) record() {
	for _, st := range c {
		metrics.RecordCascade(st.String())
	}
}

func logActivity(ctx context.Context, tx domain.Repository, ev audit.Event) error {
	return tx.CreateActivity(ctx, ev.Entry())
}

// assignee resolves the optional assignee; an unknown id is a client error.
func assignee(ctx context.Context, tx domain.Repository, id *uint) (*models.User, error) {
	if id == nil {
		return nil, nil
	}
	u, err := tx.GetUser(ctx, *id)
	if err != nil {
		return nil, mapNotFound(err, "assignee_not_found")
	}
	return u, nil
}

func assigneeName(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.Name
}

func equipmentName(eq *models.Equipment) string {
	if eq == nil {
		return ""
	}
	return eq.Name
}

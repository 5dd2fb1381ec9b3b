package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	appdb "github.com/BruksfildServices01/gym-backoffice/internal/db"
	"github.com/BruksfildServices01/gym-backoffice/internal/domain/equipment"
	"github.com/BruksfildServices01/gym-backoffice/internal/infra/repository"
	"github.com/BruksfildServices01/gym-backoffice/internal/models"
	"github.com/BruksfildServices01/gym-backoffice/internal/timezone"
)

var (
	now   = time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)
	today = time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	clock = timezone.FixedClock(now)
)

type fixture struct {
	db   *gorm.DB
	repo *repository.ScheduleGormRepository
	ctx  context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// one connection: every new connection would open a fresh in-memory db
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, appdb.Migrate(db))

	return &fixture{
		db:   db,
		repo: repository.NewScheduleGormRepository(db),
		ctx:  context.Background(),
	}
}

func (f *fixture) equipment(t *testing.T, name string, status equipment.Status) *models.Equipment {
	t.Helper()
	eq := &models.Equipment{Name: name, Type: "Cardio", Status: status}
	require.NoError(t, f.db.Create(eq).Error)
	return eq
}

func (f *fixture) user(t *testing.T, name string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: name + "@gym.test", PasswordHash: "x"}
	require.NoError(t, f.db.Create(u).Error)
	return u
}

func (f *fixture) task(t *testing.T, eqID uint, status string, scheduled time.Time) *models.MaintenanceTask {
	t.Helper()
	task := &models.MaintenanceTask{
		EquipmentID:     eqID,
		ScheduledDate:   scheduled,
		MaintenanceType: "Inspection",
		Priority:        "Medium",
		Status:          status,
	}
	require.NoError(t, f.repo.CreateTask(f.ctx, task))
	return task
}

func (f *fixture) reload(t *testing.T, eq *models.Equipment) *models.Equipment {
	t.Helper()
	got, err := f.repo.GetEquipment(f.ctx, eq.ID)
	require.NoError(t, err)
	return got
}

func (f *fixture) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

func ptr[T any](v T) *T {
	return &v
}

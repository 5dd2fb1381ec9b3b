package schedule

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/gym-backoffice/internal/domain/calendar"
	"github.com/BruksfildServices01/gym-backoffice/internal/models"
)

// ErrNotFound is returned by every lookup that matches no row.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	// -------- Transaction --------
	// WithinTx runs fn against a repository bound to one transaction.
	WithinTx(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Equipment --------
	GetEquipment(
		ctx context.Context,
		id uint,
	) (*models.Equipment, error)

	SaveEquipment(
		ctx context.Context,
		eq *models.Equipment,
	) error

	// -------- Users --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Maintenance tasks --------
	CreateTask(
		ctx context.Context,
		task *models.MaintenanceTask,
	) error

	GetTask(
		ctx context.Context,
		id uint,
	) (*models.MaintenanceTask, error)

	UpdateTask(
		ctx context.Context,
		task *models.MaintenanceTask,
	) error

	DeleteTask(
		ctx context.Context,
		id uint,
	) error

	ListTasks(
		ctx context.Context,
		filter calendar.Filter,
		q ListQuery,
	) ([]models.MaintenanceTask, error)

	// -------- Calendar events --------
	CreateEvent(
		ctx context.Context,
		ev *models.CalendarEvent,
	) error

	GetEvent(
		ctx context.Context,
		id uint,
	) (*models.CalendarEvent, error)

	UpdateEvent(
		ctx context.Context,
		ev *models.CalendarEvent,
	) error

	DeleteEvent(
		ctx context.Context,
		id uint,
	) error

	ListEvents(
		ctx context.Context,
		filter calendar.Filter,
	) ([]models.CalendarEvent, error)

	// -------- Side effects --------
	CreateActivity(
		ctx context.Context,
		entry *models.ActivityLog,
	) error

	CreateNotification(
		ctx context.Context,
		n *models.Notification,
	) error

	// -------- Statistics --------
	Statistics(
		ctx context.Context,
		q StatisticsQuery,
	) (*Statistics, error)
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/gym-backoffice/internal/domain/calendar"
	"github.com/BruksfildServices01/gym-backoffice/internal/domain/schedule"
	"github.com/BruksfildServices01/gym-backoffice/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return schedule.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *ScheduleGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx schedule.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ScheduleGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Equipment
// --------------------------------------------------

func (r *ScheduleGormRepository) GetEquipment(
	ctx context.Context,
	id uint,
) (*models.Equipment, error) {

	var eq models.Equipment
	if err := r.db.WithContext(ctx).First(&eq, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &eq, nil
}

func (r *ScheduleGormRepository) SaveEquipment(
	ctx context.Context,
	eq *models.Equipment,
) error {
	return r.db.WithContext(ctx).Save(eq).Error
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *ScheduleGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// --------------------------------------------------
// Maintenance tasks
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateTask(
	ctx context.Context,
	task *models.MaintenanceTask,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(task).Error
}

func (r *ScheduleGormRepository) GetTask(
	ctx context.Context,
	id uint,
) (*models.MaintenanceTask, error) {

	var task models.MaintenanceTask
	if err := r.db.WithContext(ctx).
		Preload("Equipment").
		Preload("Assignee").
		First(&task, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &task, nil
}

func (r *ScheduleGormRepository) UpdateTask(
	ctx context.Context,
	task *models.MaintenanceTask,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(task).Error
}

func (r *ScheduleGormRepository) DeleteTask(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.MaintenanceTask{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return schedule.ErrNotFound
	}
	return nil
}

func (r *ScheduleGormRepository) ListTasks(
	ctx context.Context,
	filter calendar.Filter,
	q schedule.ListQuery,
) ([]models.MaintenanceTask, error) {

	query := r.db.WithContext(ctx).
		Model(&models.MaintenanceTask{}).
		Preload("Equipment").
		Preload("Assignee")

	query = applyPredicates(query, filter.TaskPredicates(q.Today))

	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	var tasks []models.MaintenanceTask
	if err := query.
		Order("maintenance_schedule.scheduled_date ASC").
		Order("maintenance_schedule.id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// --------------------------------------------------
// Calendar events
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateEvent(
	ctx context.Context,
	ev *models.CalendarEvent,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(ev).Error
}

func (r *ScheduleGormRepository) GetEvent(
	ctx context.Context,
	id uint,
) (*models.CalendarEvent, error) {

	var ev models.CalendarEvent
	if err := r.db.WithContext(ctx).
		Preload("Equipment").
		Preload("Assignee").
		First(&ev, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &ev, nil
}

func (r *ScheduleGormRepository) UpdateEvent(
	ctx context.Context,
	ev *models.CalendarEvent,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ev).Error
}

func (r *ScheduleGormRepository) DeleteEvent(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.CalendarEvent{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return schedule.ErrNotFound
	}
	return nil
}

func (r *ScheduleGormRepository) ListEvents(
	ctx context.Context,
	filter calendar.Filter,
) ([]models.CalendarEvent, error) {

	query := r.db.WithContext(ctx).
		Model(&models.CalendarEvent{}).
		Preload("Equipment").
		Preload("Assignee")

	query = applyPredicates(query, filter.EventPredicates())

	var events []models.CalendarEvent
	if err := query.
		Order("calendar_events.start_date ASC").
		Order("calendar_events.id ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

// --------------------------------------------------
// Side effects
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateActivity(
	ctx context.Context,
	entry *models.ActivityLog,
) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *ScheduleGormRepository) CreateNotification(
	ctx context.Context,
	n *models.Notification,
) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func applyPredicates(q *gorm.DB, preds []calendar.Predicate) *gorm.DB {
	for _, p := range preds {
		q = q.Where(p.SQL, p.Args...)
	}
	return q
}

// Compile-time check
var _ schedule.Repository = (*ScheduleGormRepository)(nil)

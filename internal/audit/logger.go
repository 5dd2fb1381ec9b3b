package audit

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-backoffice/internal/models"
)

// Event is one activity-log line before it is persisted.
type Event struct {
	UserID      uint
	EquipmentID *uint
	Action      string
	Entity      string
	EntityID    *uint
	Details     any
}

// Entry converts the event into its table row. Details that fail to marshal
// are dropped rather than failing the mutation they describe.
func (ev Event) Entry() *models.ActivityLog {
	var details datatypes.JSON
	if ev.Details != nil {
		if b, err := json.Marshal(ev.Details); err == nil {
			details = datatypes.JSON(b)
		}
	}

	return &models.ActivityLog{
		UserID:      ev.UserID,
		EquipmentID: ev.EquipmentID,
		Action:      ev.Action,
		Entity:      ev.Entity,
		EntityID:    ev.EntityID,
		Details:     details,
	}
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	return l.db.WithContext(ctx).Create(ev.Entry()).Error
}

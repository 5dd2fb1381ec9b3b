package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog is append-only.
type ActivityLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID      uint  `gorm:"index" json:"user_id"`
	EquipmentID *uint `gorm:"index" json:"equipment_id"`

	Action   string         `gorm:"size:255;not null" json:"action"`
	Entity   string         `gorm:"size:50" json:"entity"`
	EntityID *uint          `json:"entity_id"`
	Details  datatypes.JSON `json:"details"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (ActivityLog) TableName() string {
	return "activity_log"
}

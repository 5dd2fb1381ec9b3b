package models

import (
	"time"

	"gorm.io/datatypes"
)

type CalendarEvent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title     string     `gorm:"size:200;not null" json:"title"`
	StartDate time.Time  `gorm:"index;not null" json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	AllDay    bool       `json:"all_day"`

	EquipmentID *uint      `gorm:"index" json:"equipment_id"`
	Equipment   *Equipment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	EventType   string `gorm:"size:20;not null;index" json:"event_type"`
	Description string `gorm:"type:text" json:"description"`
	Priority    string `gorm:"size:20;default:'Medium'" json:"priority"`

	AssignedTo *uint `gorm:"index" json:"assigned_to"`
	Assignee   *User `gorm:"foreignKey:AssignedTo;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Color             string  `gorm:"size:20" json:"color"`
	Location          string  `gorm:"size:100" json:"location"`
	EstimatedDuration int     `json:"estimated_duration"`
	EstimatedCost     float64 `json:"estimated_cost"`
	Notes             string  `gorm:"type:text" json:"notes"`
	ReminderTime      int     `json:"reminder_time"`

	RecurrencePattern  string         `gorm:"size:20;default:'none'" json:"recurrence_pattern"`
	RecurrenceParentID *uint          `gorm:"index" json:"recurrence_parent_id"`
	Tags               datatypes.JSON `json:"tags"`

	CreatedBy uint      `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CalendarEvent) TableName() string {
	return "calendar_events"
}

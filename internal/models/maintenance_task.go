package models

import (
	"time"

	"gorm.io/datatypes"
)

// MaintenanceTask is a row of the maintenance schedule. Status holds the
// stored lifecycle value only; "Overdue" is derived at read time.
type MaintenanceTask struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EquipmentID uint      `gorm:"index;not null" json:"equipment_id"`
	Equipment   Equipment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ScheduledDate   time.Time `gorm:"index;not null" json:"scheduled_date"`
	MaintenanceType string    `gorm:"size:100" json:"maintenance_type"`
	Description     string    `gorm:"type:text" json:"description"`

	Priority string `gorm:"size:20;default:'Medium'" json:"priority"`
	Status   string `gorm:"size:20;default:'Scheduled';index" json:"status"`

	AssignedTo *uint `gorm:"index" json:"assigned_to"`
	Assignee   *User `gorm:"foreignKey:AssignedTo;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	EstimatedDuration int     `json:"estimated_duration"`
	EstimatedCost     float64 `json:"estimated_cost"`
	ActualDuration    int     `json:"actual_duration"`
	ActualCost        float64 `json:"actual_cost"`

	Location        string     `gorm:"size:100" json:"location"`
	Notes           string     `gorm:"type:text" json:"notes"`
	CompletionNotes string     `gorm:"type:text" json:"completion_notes"`
	CompletedDate   *time.Time `json:"completed_date"`

	RecurrencePattern  string         `gorm:"size:20;default:'none'" json:"recurrence_pattern"`
	RecurrenceParentID *uint          `gorm:"index" json:"recurrence_parent_id"`
	Tags               datatypes.JSON `json:"tags"`

	CreatedBy uint      `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MaintenanceTask) TableName() string {
	return "maintenance_schedule"
}

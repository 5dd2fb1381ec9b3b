package models

import (
	"time"

	"github.com/BruksfildServices01/gym-backoffice/internal/domain/equipment"
)

type Equipment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string           `gorm:"size:100;not null" json:"name"`
	Type     string           `gorm:"size:50" json:"type"`
	Status   equipment.Status `gorm:"size:20;default:'Available'" json:"status"`
	Location string           `gorm:"size:100" json:"location"`

	PurchaseDate   *time.Time `json:"purchase_date"`
	WarrantyExpiry *time.Time `json:"warranty_expiry"`
	Cost           float64    `json:"cost"`

	ConditionRating int     `json:"condition_rating"`
	UsageHours      float64 `json:"usage_hours"`

	LastMaintenanceDate *time.Time `json:"last_maintenance_date"`
	NextMaintenanceDate *time.Time `json:"next_maintenance_date"`
	MaintenanceCount    int        `gorm:"default:0" json:"maintenance_count"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Equipment) TableName() string {
	return "equipment"
}

package dto

import "time"

// TaskListDTO is the denormalized task row shared by the task list and the
// report exports.
type TaskListDTO struct {
	ID              uint       `json:"id"`
	EquipmentID     uint       `json:"equipment_id"`
	EquipmentName   string     `json:"equipment_name"`
	EquipmentStatus string     `json:"equipment_status"`
	ScheduledDate   time.Time  `json:"scheduled_date"`
	MaintenanceType string     `json:"maintenance_type"`
	Description     string     `json:"description"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	DisplayStatus   string     `json:"display_status"`
	AssignedTo      *uint      `json:"assigned_to"`
	AssigneeName    string     `json:"assignee_name"`
	EstimatedCost   float64    `json:"estimated_cost"`
	ActualCost      float64    `json:"actual_cost"`
	ActualDuration  int        `json:"actual_duration"`
	CompletedDate   *time.Time `json:"completed_date"`
	Location        string     `json:"location"`
}

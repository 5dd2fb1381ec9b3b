package calendar

import (
	"github.com/BruksfildServices01/gym-backoffice/internal/domain/maintenance"
)

const (
	ColorOverdue    = "#8B0000"
	ColorCompleted  = "#28A745"
	ColorInProgress = "#007BFF"

	ColorPriorityHigh   = "#DC3545"
	ColorPriorityMedium = "#FD7E14"
	ColorPriorityLow    = "#FFC107"

	ColorMaintenanceDefault = ColorPriorityHigh

	ColorBooking    = "#17A2B8"
	ColorTraining   = "#6F42C1"
	ColorInspection = "#20C997"
	ColorMeeting    = "#6C757D"
	ColorOther      = "#343A40"
)

var eventTypeColors = map[EventType]string{
	EventBooking:    ColorBooking,
	EventTraining:   ColorTraining,
	EventInspection: ColorInspection,
	EventMeeting:    ColorMeeting,
	EventOther:      ColorOther,
}

// ColorFor derives the calendar colour. Maintenance colour follows
// Overdue > Completed > In Progress > priority > default; other events use the
// stored colour when set.
func ColorFor(
	eventType EventType,
	priority maintenance.Priority,
	display maintenance.Status,
	stored string,
) string {

	if !eventType.IsMaintenance() {
		if stored != "" {
			return stored
		}
		if c, ok := eventTypeColors[eventType]; ok {
			return c
		}
		return ColorOther
	}

	switch display {
	case maintenance.StatusOverdue:
		return ColorOverdue
	case maintenance.StatusCompleted:
		return ColorCompleted
	case maintenance.StatusInProgress:
		return ColorInProgress
	}

	switch priority {
	case maintenance.PriorityHigh:
		return ColorPriorityHigh
	case maintenance.PriorityMedium:
		return ColorPriorityMedium
	case maintenance.PriorityLow:
		return ColorPriorityLow
	}

	return ColorMaintenanceDefault
}

type LegendEntry struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

func Legend() []LegendEntry {
	return []LegendEntry{
		{Label: "Overdue", Color: ColorOverdue},
		{Label: "Completed", Color: ColorCompleted},
		{Label: "In Progress", Color: ColorInProgress},
		{Label: "High Priority", Color: ColorPriorityHigh},
		{Label: "Medium Priority", Color: ColorPriorityMedium},
		{Label: "Low Priority", Color: ColorPriorityLow},
		{Label: "Booking", Color: ColorBooking},
		{Label: "Training", Color: ColorTraining},
		{Label: "Inspection", Color: ColorInspection},
		{Label: "Meeting", Color: ColorMeeting},
		{Label: "Other", Color: ColorOther},
	}
}

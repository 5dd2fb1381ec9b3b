package calendar

import (
	"strings"

	"github.com/BruksfildServices01/gym-backoffice/internal/httperr"
)

type EventType string

const (
	EventMaintenance EventType = "maintenance"
	EventBooking     EventType = "booking"
	EventTraining    EventType = "training"
	EventInspection  EventType = "inspection"
	EventMeeting     EventType = "meeting"
	EventOther       EventType = "other"
)

func EventTypes() []EventType {
	return []EventType{
		EventMaintenance,
		EventBooking,
		EventTraining,
		EventInspection,
		EventMeeting,
		EventOther,
	}
}

func ParseEventType(raw string) (EventType, error) {
	v := EventType(strings.ToLower(strings.TrimSpace(raw)))
	for _, et := range EventTypes() {
		if v == et {
			return et, nil
		}
	}
	return "", httperr.ErrBusiness("invalid_event_type")
}

// IsMaintenance reports whether the type is backed by the maintenance schedule
// instead of calendar_events.
func (t EventType) IsMaintenance() bool {
	return t == EventMaintenance
}

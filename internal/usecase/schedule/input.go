package schedule

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/BruksfildServices01/gym-backoffice/internal/domain/calendar"
	"github.com/BruksfildServices01/gym-backoffice/internal/domain/maintenance"
	"github.com/BruksfildServices01/gym-backoffice/internal/httperr"
	"github.com/BruksfildServices01/gym-backoffice/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// EntryInput is the field set shared by create and update. Dates are raw
// strings; they are read in the gym's timezone.
type EntryInput struct {
	Title  string
	Start  string
	End    string
	AllDay bool

	EquipmentID *uint
	EventType   string
	Description string
	Priority    string
	AssignedTo  *uint

	Location          string
	EstimatedDuration int
	EstimatedCost     float64
	Notes             string
	Tags              []string
	Color             string
	ReminderTime      int
	MaintenanceType   string

	Recurrence    string
	RecurrenceEnd string
}

type UpdateInput struct {
	EntryInput

	Status          string
	ActualCost      float64
	ActualDuration  int
	CompletionNotes string
}

// entry is an EntryInput that passed validation.
type entry struct {
	EntryInput

	eventType calendar.EventType
	priority  maintenance.Priority
	pattern   calendar.Pattern

	start time.Time
	end   *time.Time
	until *time.Time
	tags  datatypes.JSON
}

// validate runs before any persistence. The order decides which error a
// caller sees first when several fields are wrong.
func (in EntryInput) validate(loc *time.Location) (entry, error) {
	e := entry{EntryInput: in}
	e.Title = strings.TrimSpace(in.Title)

	if e.Title == "" {
		return entry{}, httperr.ErrBusiness("missing_title")
	}

	if strings.TrimSpace(in.Start) == "" {
		return entry{}, httperr.ErrBusiness("missing_start")
	}
	start, _, err := timezone.ParseLocal(strings.TrimSpace(in.Start), loc)
	if err != nil {
		return entry{}, httperr.ErrBusiness("missing_start")
	}
	e.start = start

	if e.eventType, err = calendar.ParseEventType(in.EventType); err != nil {
		return entry{}, err
	}
	if e.priority, err = maintenance.ParsePriority(in.Priority); err != nil {
		return entry{}, err
	}
	if e.pattern, err = calendar.ParsePattern(in.Recurrence); err != nil {
		return entry{}, err
	}

	if e.eventType.IsMaintenance() && (in.EquipmentID == nil || *in.EquipmentID == 0) {
		return entry{}, httperr.ErrBusiness("missing_equipment")
	}
	if in.EquipmentID != nil && *in.EquipmentID == 0 {
		e.EquipmentID = nil
	}
	if in.AssignedTo != nil && *in.AssignedTo == 0 {
		e.AssignedTo = nil
	}

	if e.end, err = optionalDate(in.End, loc, false); err != nil {
		return entry{}, err
	}
	// a bare until date keeps the whole day
	if e.until, err = optionalDate(in.RecurrenceEnd, loc, true); err != nil {
		return entry{}, err
	}

	if e.MaintenanceType == "" {
		e.MaintenanceType = e.Title
	}

	if len(in.Tags) > 0 {
		if b, err := json.Marshal(in.Tags); err == nil {
			e.tags = datatypes.JSON(b)
		}
	}

	return e, nil
}

func optionalDate(raw string, loc *time.Location, endOfDay bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	t, dateOnly, err := timezone.ParseLocal(raw, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if dateOnly && endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Second)
	}
	return &t, nil
}

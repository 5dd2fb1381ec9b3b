package calendar

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/gym-backoffice/internal/domain/maintenance"
)

const (
	taskTable  = "maintenance_schedule"
	eventTable = "calendar_events"
)

// Filter selects calendar rows. Dimensions are ANDed; values inside a
// dimension are ORed. Empty dimensions and the value "all" match everything.
// Start is inclusive, End exclusive; zero values leave the range open.
type Filter struct {
	Start time.Time
	End   time.Time

	EquipmentIDs []uint
	EventTypes   []EventType
	Priorities   []maintenance.Priority
	Statuses     []maintenance.Status
	AssignedIDs  []uint
}

// Predicate is one named SQL condition with its arguments.
type Predicate struct {
	Name string
	SQL  string
	Args []any
}

// RawFilter is the untyped form received from query strings and forms.
type RawFilter struct {
	Start time.Time
	End   time.Time

	EquipmentIDs []uint
	EventTypes   []string
	Priorities   []string
	Statuses     []string
	AssignedIDs  []uint
}

// NewFilter validates and canonicalizes every dimension.
func NewFilter(raw RawFilter) (Filter, error) {
	f := Filter{
		Start:        raw.Start,
		End:          raw.End,
		EquipmentIDs: dedupeIDs(raw.EquipmentIDs),
		AssignedIDs:  dedupeIDs(raw.AssignedIDs),
	}

	for _, v := range selected(raw.EventTypes) {
		et, err := ParseEventType(v)
		if err != nil {
			return Filter{}, err
		}
		f.EventTypes = appendUnique(f.EventTypes, et)
	}

	for _, v := range selected(raw.Priorities) {
		p, err := maintenance.ParsePriority(v)
		if err != nil {
			return Filter{}, err
		}
		f.Priorities = appendUnique(f.Priorities, p)
	}

	for _, v := range selected(raw.Statuses) {
		st, err := maintenance.ParseStatus(v)
		if err != nil {
			return Filter{}, err
		}
		f.Statuses = appendUnique(f.Statuses, st)
	}

	return f, nil
}

// IncludesTasks reports whether maintenance rows can match.
func (f Filter) IncludesTasks() bool {
	if len(f.EventTypes) == 0 {
		return true
	}
	for _, et := range f.EventTypes {
		if et.IsMaintenance() {
			return true
		}
	}
	return false
}

// IncludesEvents reports whether calendar_events rows can match. Events have
// no lifecycle status, so any status filter excludes them.
func (f Filter) IncludesEvents() bool {
	if len(f.Statuses) > 0 {
		return false
	}
	if len(f.EventTypes) == 0 {
		return true
	}
	return len(f.eventOnlyTypes()) > 0
}

// TaskPredicates builds the AND-list applied to maintenance_schedule.
func (f Filter) TaskPredicates(today time.Time) []Predicate {
	col := column(taskTable)
	var out []Predicate

	if !f.Start.IsZero() {
		out = append(out, Predicate{Name: "start", SQL: col("scheduled_date") + " >= ?", Args: []any{f.Start}})
	}
	if !f.End.IsZero() {
		out = append(out, Predicate{Name: "end", SQL: col("scheduled_date") + " < ?", Args: []any{f.End}})
	}
	if len(f.EquipmentIDs) > 0 {
		out = append(out, Predicate{Name: "equipment", SQL: col("equipment_id") + " IN ?", Args: []any{f.EquipmentIDs}})
	}
	if len(f.Priorities) > 0 {
		out = append(out, Predicate{Name: "priority", SQL: col("priority") + " IN ?", Args: []any{priorityValues(f.Priorities)}})
	}
	if len(f.AssignedIDs) > 0 {
		out = append(out, Predicate{Name: "assigned", SQL: col("assigned_to") + " IN ?", Args: []any{f.AssignedIDs}})
	}
	if len(f.Statuses) > 0 {
		out = append(out, StatusPredicate(f.Statuses, today))
	}

	return out
}

// EventPredicates builds the AND-list applied to calendar_events.
func (f Filter) EventPredicates() []Predicate {
	col := column(eventTable)
	var out []Predicate

	if !f.Start.IsZero() {
		out = append(out, Predicate{Name: "start", SQL: col("start_date") + " >= ?", Args: []any{f.Start}})
	}
	if !f.End.IsZero() {
		out = append(out, Predicate{Name: "end", SQL: col("start_date") + " < ?", Args: []any{f.End}})
	}
	if len(f.EquipmentIDs) > 0 {
		out = append(out, Predicate{Name: "equipment", SQL: col("equipment_id") + " IN ?", Args: []any{f.EquipmentIDs}})
	}
	if types := f.eventOnlyTypes(); len(types) > 0 {
		out = append(out, Predicate{Name: "event_type", SQL: col("event_type") + " IN ?", Args: []any{types}})
	}
	if len(f.Priorities) > 0 {
		out = append(out, Predicate{Name: "priority", SQL: col("priority") + " IN ?", Args: []any{priorityValues(f.Priorities)}})
	}
	if len(f.AssignedIDs) > 0 {
		out = append(out, Predicate{Name: "assigned", SQL: col("assigned_to") + " IN ?", Args: []any{f.AssignedIDs}})
	}

	return out
}

// OverduePredicate is the single definition of a past-due task, shared by the
// feed, the task list and the statistics.
func OverduePredicate(today time.Time) Predicate {
	col := column(taskTable)
	return Predicate{
		Name: "overdue",
		SQL:  "(" + col("status") + " <> ? AND " + col("scheduled_date") + " < ?)",
		Args: []any{string(maintenance.StatusCompleted), today},
	}
}

// StatusPredicate ORs the literal statuses with the derived Overdue condition
// when Overdue is selected.
func StatusPredicate(statuses []maintenance.Status, today time.Time) Predicate {
	col := column(taskTable)

	var literal []string
	withOverdue := false
	for _, st := range statuses {
		if st == maintenance.StatusOverdue {
			withOverdue = true
			continue
		}
		literal = append(literal, string(st))
	}

	if !withOverdue {
		return Predicate{Name: "status", SQL: col("status") + " IN ?", Args: []any{literal}}
	}

	overdue := OverduePredicate(today)
	if len(literal) == 0 {
		return Predicate{Name: "status", SQL: overdue.SQL, Args: overdue.Args}
	}

	return Predicate{
		Name: "status",
		SQL:  "(" + col("status") + " IN ? OR " + overdue.SQL + ")",
		Args: append([]any{literal}, overdue.Args...),
	}
}

func (f Filter) eventOnlyTypes() []string {
	var out []string
	for _, et := range f.EventTypes {
		if !et.IsMaintenance() {
			out = append(out, string(et))
		}
	}
	return out
}

func column(table string) func(string) string {
	return func(name string) string {
		return table + "." + name
	}
}

func selected(values []string) []string {
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || strings.EqualFold(v, "all") {
			continue
		}
		out = append(out, v)
	}
	return out
}

func priorityValues(ps []maintenance.Priority) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, string(p))
	}
	return out
}

func dedupeIDs(ids []uint) []uint {
	var out []uint
	for _, id := range ids {
		if id != 0 {
			out = appendUnique(out, id)
		}
	}
	return out
}

func appendUnique[T comparable](list []T, v T) []T {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

package calendar

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/gym-backoffice/internal/httperr"
)

type Pattern string

const (
	RecurNone    Pattern = "none"
	RecurDaily   Pattern = "daily"
	RecurWeekly  Pattern = "weekly"
	RecurMonthly Pattern = "monthly"
)

// MaxOccurrences caps a series even when the end date is far away.
const MaxOccurrences = 52

var defaultCounts = map[Pattern]int{
	RecurDaily:   7,
	RecurWeekly:  4,
	RecurMonthly: 3,
}

func ParsePattern(raw string) (Pattern, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none":
		return RecurNone, nil
	case "daily":
		return RecurDaily, nil
	case "weekly":
		return RecurWeekly, nil
	case "monthly":
		return RecurMonthly, nil
	}
	return "", httperr.ErrBusiness("invalid_recurrence")
}

// Occurrence is one follow-up of a recurring task or event.
type Occurrence struct {
	Start time.Time
	End   *time.Time
}

// GenerateRecurrences returns the follow-ups of a series, excluding the first
// occurrence at start. With until set, occurrences starting after until are
// dropped; otherwise the pattern's default count applies.
func GenerateRecurrences(
	pattern Pattern,
	start time.Time,
	end *time.Time,
	until *time.Time,
) []Occurrence {

	limit, ok := defaultCounts[pattern]
	if !ok {
		return nil
	}
	if until != nil {
		limit = MaxOccurrences
	}

	var duration time.Duration
	if end != nil && end.After(start) {
		duration = end.Sub(start)
	}

	out := make([]Occurrence, 0, limit)
	for i := 1; i <= limit; i++ {
		next := step(pattern, start, i)
		if until != nil && next.After(*until) {
			break
		}

		occ := Occurrence{Start: next}
		if end != nil {
			e := next.Add(duration)
			occ.End = &e
		}
		out = append(out, occ)
	}

	return out
}

// step always counts from the series start so monthly dates do not drift.
func step(pattern Pattern, start time.Time, n int) time.Time {
	switch pattern {
	case RecurDaily:
		return start.AddDate(0, 0, n)
	case RecurWeekly:
		return start.AddDate(0, 0, 7*n)
	default:
		return addMonths(start, n)
	}
}

// addMonths lands on the same day n months later, or on the last day of the
// target month when it is shorter.
func addMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	day := min(t.Day(), daysIn(first))
	return first.AddDate(0, 0, day-1)
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

package httperr

import "net/http"

var businessStatus = map[string]int{
	"missing_title":      http.StatusBadRequest,
	"missing_start":      http.StatusBadRequest,
	"missing_equipment":  http.StatusBadRequest,
	"missing_ids":        http.StatusBadRequest,
	"invalid_event_type": http.StatusBadRequest,
	"invalid_priority":   http.StatusBadRequest,
	"invalid_status":     http.StatusBadRequest,
	"invalid_recurrence": http.StatusBadRequest,
	"invalid_date":       http.StatusBadRequest,
	"invalid_id":         http.StatusBadRequest,
	"invalid_action":     http.StatusBadRequest,
	"invalid_request":    http.StatusBadRequest,

	"invalid_equipment_status": http.StatusBadRequest,

	"task_not_found":      http.StatusNotFound,
	"event_not_found":     http.StatusNotFound,
	"equipment_not_found": http.StatusNotFound,
	"assignee_not_found":  http.StatusNotFound,

	"invalid_state": http.StatusConflict,
}

var businessMessage = map[string]string{
	"missing_title":       "Title is required",
	"missing_start":       "A valid start date is required",
	"missing_equipment":   "Equipment is required for maintenance",
	"missing_ids":         "Select at least one task",
	"invalid_event_type":  "Unknown event type",
	"invalid_priority":    "Unknown priority",
	"invalid_status":      "Unknown or non-storable status",
	"invalid_recurrence":  "Unknown recurrence pattern",
	"invalid_date":        "Date could not be parsed",
	"invalid_id":          "Invalid id",
	"invalid_action":      "Unknown action",
	"task_not_found":      "Maintenance task not found",
	"event_not_found":     "Event not found",
	"equipment_not_found": "Equipment not found",
	"assignee_not_found":  "Assigned user not found",
	"invalid_state":       "Transition not allowed from the current status",
}

// Status maps an error to its HTTP status. Anything that is not a known
// business error is a 500.
func Status(err error) (int, string) {
	code, ok := CodeOf(err)
	if !ok {
		return http.StatusInternalServerError, "internal_error"
	}
	if st, ok := businessStatus[code]; ok {
		return st, code
	}
	return http.StatusBadRequest, code
}

func Message(code string) string {
	if m, ok := businessMessage[code]; ok {
		return m
	}
	if code == "internal_error" {
		return "Something went wrong, please try again"
	}
	return code
}

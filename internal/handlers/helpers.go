package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gym-backoffice/internal/domain/calendar"
	"github.com/BruksfildServices01/gym-backoffice/internal/httperr"
	"github.com/BruksfildServices01/gym-backoffice/internal/timezone"
)

// respondError renders a use-case error. Business codes keep their code;
// everything else is logged and hidden behind internal_error.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	status, code := httperr.Status(err)
	if code == "internal_error" {
		log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	httperr.Write(c, status, code, httperr.Message(code))
}

var tagCodes = map[string]string{
	"priority":    "invalid_priority",
	"event_type":  "invalid_event_type",
	"recurrence":  "invalid_recurrence",
	"task_status": "invalid_status",
}

// bindError turns the first failing domain tag into its business code.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if code, ok := tagCodes[fe.Tag()]; ok {
				return httperr.ErrBusiness(code)
			}
		}
	}
	return httperr.ErrBusiness("invalid_request")
}

// --------------------------------------------------
// Filters
// --------------------------------------------------

// filterParams is the query/body shape shared by the feed, the task list and
// the exports. List values may be repeated or comma separated.
type filterParams struct {
	Start        string   `form:"start" json:"start"`
	End          string   `form:"end" json:"end"`
	EquipmentIDs []string `form:"equipment_ids" json:"-"`
	EventTypes   []string `form:"event_types" json:"event_types"`
	Priorities   []string `form:"priorities" json:"priorities"`
	Statuses     []string `form:"statuses" json:"statuses"`
	AssignedIDs  []string `form:"assigned_ids" json:"-"`
}

func (p filterParams) build(loc *time.Location, equipmentIDs, assignedIDs []uint) (calendar.Filter, error) {
	raw := calendar.RawFilter{
		EquipmentIDs: equipmentIDs,
		EventTypes:   splitList(p.EventTypes),
		Priorities:   splitList(p.Priorities),
		Statuses:     splitList(p.Statuses),
		AssignedIDs:  assignedIDs,
	}

	if p.Start != "" {
		start, _, err := timezone.ParseLocal(p.Start, loc)
		if err != nil {
			return calendar.Filter{}, httperr.ErrBusiness("invalid_date")
		}
		raw.Start = start
	}

	// a bare end date includes that whole day
	if p.End != "" {
		end, dateOnly, err := timezone.ParseLocal(p.End, loc)
		if err != nil {
			return calendar.Filter{}, httperr.ErrBusiness("invalid_date")
		}
		if dateOnly {
			end = end.AddDate(0, 0, 1)
		}
		raw.End = end
	}

	return calendar.NewFilter(raw)
}

func (p filterParams) parse(loc *time.Location) (calendar.Filter, error) {
	equipmentIDs, err := parseIDs(splitList(p.EquipmentIDs))
	if err != nil {
		return calendar.Filter{}, err
	}
	assignedIDs, err := parseIDs(splitList(p.AssignedIDs))
	if err != nil {
		return calendar.Filter{}, err
	}
	return p.build(loc, equipmentIDs, assignedIDs)
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseIDs(values []string) ([]uint, error) {
	out := make([]uint, 0, len(values))
	for _, v := range values {
		if strings.EqualFold(v, "all") {
			continue
		}
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_id")
		}
		out = append(out, uint(id))
	}
	return out, nil
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, httperr.ErrBusiness("invalid_id")
	}
	return uint(id), nil
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gym-backoffice/internal/domain/calendar"
	"github.com/BruksfildServices01/gym-backoffice/internal/dto"
	"github.com/BruksfildServices01/gym-backoffice/internal/httperr"
	"github.com/BruksfildServices01/gym-backoffice/internal/httpresp"
	"github.com/BruksfildServices01/gym-backoffice/internal/middleware"
	"github.com/BruksfildServices01/gym-backoffice/internal/timezone"
	ucSchedule "github.com/BruksfildServices01/gym-backoffice/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type CalendarHandler struct {
	create     *ucSchedule.CreateEntry
	update     *ucSchedule.UpdateEntry
	remove     *ucSchedule.DeleteEntry
	listEvents *ucSchedule.ListEvents
	statistics *ucSchedule.GetStatistics
	clock      timezone.Clock
	log        *zap.Logger
}

func NewCalendarHandler(
	create *ucSchedule.CreateEntry,
	update *ucSchedule.UpdateEntry,
	remove *ucSchedule.DeleteEntry,
	listEvents *ucSchedule.ListEvents,
	statistics *ucSchedule.GetStatistics,
	clock timezone.Clock,
	log *zap.Logger,
) *CalendarHandler {
	return &CalendarHandler{
		create:     create,
		update:     update,
		remove:     remove,
		listEvents: listEvents,
		statistics: statistics,
		clock:      clock,
		log:        log,
	}
}

// ======================================================
// REQUEST
// ======================================================

type CalendarAjaxRequest struct {
	Action string `json:"action" binding:"required,oneof=create update delete get_events get_statistics"`

	// ID accepts "m_12", "e_7" or a bare number.
	ID string `json:"id"`

	Title             string   `json:"title"`
	Start             string   `json:"start"`
	End               string   `json:"end"`
	AllDay            bool     `json:"allDay"`
	EquipmentID       *uint    `json:"equipment_id"`
	EventType         string   `json:"event_type" binding:"omitempty,event_type"`
	Description       string   `json:"description"`
	Priority          string   `json:"priority" binding:"priority"`
	AssignedTo        *uint    `json:"assigned_to"`
	Location          string   `json:"location"`
	EstimatedDuration int      `json:"estimated_duration"`
	EstimatedCost     float64  `json:"estimated_cost"`
	Notes             string   `json:"notes"`
	Tags              []string `json:"tags"`
	Recurrence        string   `json:"recurrence" binding:"recurrence"`
	RecurrenceEnd     string   `json:"recurrence_end"`
	ReminderTime      int      `json:"reminder_time"`
	Color             string   `json:"color"`
	MaintenanceType   string   `json:"maintenance_type"`

	Status          string  `json:"status" binding:"task_status"`
	ActualCost      float64 `json:"actual_cost"`
	ActualDuration  int     `json:"actual_duration"`
	CompletionNotes string  `json:"completion_notes"`

	// get_events
	EquipmentIDs []uint   `json:"equipment_ids"`
	EventTypes   []string `json:"event_types"`
	Priorities   []string `json:"priorities"`
	Statuses     []string `json:"statuses"`
	AssignedIDs  []uint   `json:"assigned_ids"`

	// get_statistics
	WindowDays   int `json:"window_days"`
	UpcomingDays int `json:"upcoming_days"`
}

func (r CalendarAjaxRequest) entry() ucSchedule.EntryInput {
	return ucSchedule.EntryInput{
		Title:             r.Title,
		Start:             r.Start,
		End:               r.End,
		AllDay:            r.AllDay,
		EquipmentID:       r.EquipmentID,
		EventType:         r.EventType,
		Description:       r.Description,
		Priority:          r.Priority,
		AssignedTo:        r.AssignedTo,
		Location:          r.Location,
		EstimatedDuration: r.EstimatedDuration,
		EstimatedCost:     r.EstimatedCost,
		Notes:             r.Notes,
		Tags:              r.Tags,
		Color:             r.Color,
		ReminderTime:      r.ReminderTime,
		MaintenanceType:   r.MaintenanceType,
		Recurrence:        r.Recurrence,
		RecurrenceEnd:     r.RecurrenceEnd,
	}
}

// target resolves the id and which table it lives in. A prefix wins over
// event_type; a bare number follows event_type.
func (r CalendarAjaxRequest) target() (uint, calendar.EventType, error) {
	fallback := calendar.EventType(strings.ToLower(strings.TrimSpace(r.EventType)))

	id, isMaintenance, err := calendar.ParseStreamID(r.ID, fallback)
	if err != nil {
		return 0, "", err
	}
	if isMaintenance {
		return id, calendar.EventMaintenance, nil
	}

	et, err := calendar.ParseEventType(r.EventType)
	if err != nil || et.IsMaintenance() {
		return id, calendar.EventOther, nil
	}
	return id, et, nil
}

// ======================================================
// DISPATCH
// ======================================================

func (h *CalendarHandler) Ajax(c *gin.Context) {
	var req CalendarAjaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindError(err))
		return
	}

	switch req.Action {
	case "create":
		h.handleCreate(c, req)
	case "update":
		h.handleUpdate(c, req)
	case "delete":
		h.handleDelete(c, req)
	case "get_events":
		h.handleEvents(c, req)
	case "get_statistics":
		h.handleStatistics(c, req)
	default:
		respondError(c, h.log, httperr.ErrBusiness("invalid_action"))
	}
}

func (h *CalendarHandler) handleCreate(c *gin.Context, req CalendarAjaxRequest) {
	res, err := h.create.Execute(c.Request.Context(), middleware.ActorID(c), req.entry())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Mutation(c, http.StatusCreated, res)
}

func (h *CalendarHandler) handleUpdate(c *gin.Context, req CalendarAjaxRequest) {
	id, et, err := req.target()
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	in := ucSchedule.UpdateInput{
		EntryInput:      req.entry(),
		Status:          req.Status,
		ActualCost:      req.ActualCost,
		ActualDuration:  req.ActualDuration,
		CompletionNotes: req.CompletionNotes,
	}
	if et.IsMaintenance() {
		in.EventType = string(calendar.EventMaintenance)
	} else if strings.EqualFold(in.EventType, string(calendar.EventMaintenance)) {
		respondError(c, h.log, httperr.ErrBusiness("invalid_event_type"))
		return
	}

	res, err := h.update.Execute(c.Request.Context(), middleware.ActorID(c), id, in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Mutation(c, http.StatusOK, res)
}

func (h *CalendarHandler) handleDelete(c *gin.Context, req CalendarAjaxRequest) {
	id, et, err := req.target()
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.ActorID(c), id, et); err != nil {
		respondError(c, h.log, err)
		return
	}

	message := "Event deleted successfully"
	if et.IsMaintenance() {
		message = "Maintenance deleted successfully"
	}
	httpresp.Mutation(c, http.StatusOK, &dto.MutationResult{
		ID:        id,
		StreamID:  calendar.StreamID(et, id),
		EventType: string(et),
		Message:   message,
	})
}

func (h *CalendarHandler) handleEvents(c *gin.Context, req CalendarAjaxRequest) {
	params := filterParams{
		Start:      req.Start,
		End:        req.End,
		EventTypes: req.EventTypes,
		Priorities: req.Priorities,
		Statuses:   req.Statuses,
	}

	filter, err := params.build(h.clock.Location(), req.EquipmentIDs, req.AssignedIDs)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	items, err := h.listEvents.Execute(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": items,
		"legend": calendar.Legend(),
	})
}

func (h *CalendarHandler) handleStatistics(c *gin.Context, req CalendarAjaxRequest) {
	stats, err := h.statistics.Execute(c.Request.Context(), req.WindowDays, req.UpcomingDays)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

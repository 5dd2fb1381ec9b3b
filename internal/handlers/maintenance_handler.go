package handlers

import (
	"net/http"
	"strconv"

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

type MaintenanceHandler struct {
	create   *ucSchedule.CreateEntry
	update   *ucSchedule.UpdateEntry
	remove   *ucSchedule.DeleteEntry
	complete *ucSchedule.CompleteTask
	bulk     *ucSchedule.BulkAction
	list     *ucSchedule.ListTasks
	clock    timezone.Clock
	log      *zap.Logger
}

func NewMaintenanceHandler(
	create *ucSchedule.CreateEntry,
	update *ucSchedule.UpdateEntry,
	remove *ucSchedule.DeleteEntry,
	complete *ucSchedule.CompleteTask,
	bulk *ucSchedule.BulkAction,
	list *ucSchedule.ListTasks,
	clock timezone.Clock,
	log *zap.Logger,
) *MaintenanceHandler {
	return &MaintenanceHandler{
		create:   create,
		update:   update,
		remove:   remove,
		complete: complete,
		bulk:     bulk,
		list:     list,
		clock:    clock,
		log:      log,
	}
}

// ======================================================
// REQUEST
// ======================================================

// MaintenanceFormRequest mirrors the schedule/edit/bulk forms. Which one was
// submitted is decided by the presence of its key.
type MaintenanceFormRequest struct {
	ScheduleMaintenance string `form:"schedule_maintenance" json:"schedule_maintenance"`
	UpdateMaintenance   string `form:"update_maintenance" json:"update_maintenance"`
	BulkAction          string `form:"bulk_action" json:"bulk_action"`

	TaskID  uint   `form:"maintenance_id" json:"maintenance_id"`
	TaskIDs []uint `form:"task_ids" json:"task_ids"`

	EquipmentID       uint    `form:"equipment_id" json:"equipment_id"`
	ScheduledDate     string  `form:"scheduled_date" json:"scheduled_date"`
	MaintenanceType   string  `form:"maintenance_type" json:"maintenance_type"`
	Description       string  `form:"description" json:"description"`
	Priority          string  `form:"priority" json:"priority" binding:"priority"`
	AssignedTo        *uint   `form:"assigned_to" json:"assigned_to"`
	EstimatedDuration int     `form:"estimated_duration" json:"estimated_duration"`
	EstimatedCost     float64 `form:"estimated_cost" json:"estimated_cost"`
	Location          string  `form:"location" json:"location"`
	Notes             string  `form:"notes" json:"notes"`
	Recurrence        string  `form:"recurrence_pattern" json:"recurrence_pattern" binding:"recurrence"`
	RecurrenceEnd     string  `form:"recurrence_end" json:"recurrence_end"`

	Status          string  `form:"status" json:"status" binding:"task_status"`
	ActualCost      float64 `form:"actual_cost" json:"actual_cost"`
	ActualDuration  int     `form:"actual_duration" json:"actual_duration"`
	CompletionNotes string  `form:"completion_notes" json:"completion_notes"`
}

func (r MaintenanceFormRequest) entry() ucSchedule.EntryInput {
	var equipmentID *uint
	if r.EquipmentID != 0 {
		id := r.EquipmentID
		equipmentID = &id
	}

	return ucSchedule.EntryInput{
		Title:             r.MaintenanceType,
		Start:             r.ScheduledDate,
		EquipmentID:       equipmentID,
		EventType:         string(calendar.EventMaintenance),
		Description:       r.Description,
		Priority:          r.Priority,
		AssignedTo:        r.AssignedTo,
		Location:          r.Location,
		EstimatedDuration: r.EstimatedDuration,
		EstimatedCost:     r.EstimatedCost,
		Notes:             r.Notes,
		MaintenanceType:   r.MaintenanceType,
		Recurrence:        r.Recurrence,
		RecurrenceEnd:     r.RecurrenceEnd,
	}
}

// ======================================================
// ROUTES
// ======================================================

// Submit handles POST /api/maintenance.
func (h *MaintenanceHandler) Submit(c *gin.Context) {
	var req MaintenanceFormRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, h.log, bindError(err))
		return
	}

	ctx := c.Request.Context()
	actor := middleware.ActorID(c)

	switch {
	case req.BulkAction != "":
		op, err := ucSchedule.ParseBulkOperation(req.BulkAction)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		n, err := h.bulk.Execute(ctx, actor, op, req.TaskIDs)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		httpresp.Message(c, "Bulk "+string(op)+" applied to "+strconv.Itoa(n)+" task(s)")

	case req.UpdateMaintenance != "":
		if req.TaskID == 0 {
			respondError(c, h.log, httperr.ErrBusiness("invalid_id"))
			return
		}
		res, err := h.update.Execute(ctx, actor, req.TaskID, ucSchedule.UpdateInput{
			EntryInput:      req.entry(),
			Status:          req.Status,
			ActualCost:      req.ActualCost,
			ActualDuration:  req.ActualDuration,
			CompletionNotes: req.CompletionNotes,
		})
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		httpresp.Mutation(c, http.StatusOK, res)

	case req.ScheduleMaintenance != "":
		res, err := h.create.Execute(ctx, actor, req.entry())
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		httpresp.Mutation(c, http.StatusCreated, res)

	default:
		respondError(c, h.log, httperr.ErrBusiness("invalid_action"))
	}
}

// Quick handles GET /api/maintenance/quick?action=complete|delete&id=N.
func (h *MaintenanceHandler) Quick(c *gin.Context) {
	id, err := parseID(c.Query("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	ctx := c.Request.Context()
	actor := middleware.ActorID(c)

	switch c.Query("action") {
	case "complete":
		if _, err := h.complete.Execute(ctx, actor, id); err != nil {
			respondError(c, h.log, err)
			return
		}
		httpresp.Mutation(c, http.StatusOK, &dto.MutationResult{
			ID:       id,
			StreamID: calendar.StreamID(calendar.EventMaintenance, id),
			Message:  "Maintenance marked as completed",
		})

	case "delete":
		if err := h.remove.Execute(ctx, actor, id, calendar.EventMaintenance); err != nil {
			respondError(c, h.log, err)
			return
		}
		httpresp.Mutation(c, http.StatusOK, &dto.MutationResult{
			ID:      id,
			Message: "Maintenance deleted successfully",
		})

	default:
		respondError(c, h.log, httperr.ErrBusiness("invalid_action"))
	}
}

// List handles GET /api/maintenance.
func (h *MaintenanceHandler) List(c *gin.Context) {
	var params filterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondError(c, h.log, httperr.ErrBusiness("invalid_request"))
		return
	}

	filter, err := params.parse(h.clock.Location())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if limit < 0 || limit > 1000 {
		limit = 1000
	}

	rows, err := h.list.Execute(c.Request.Context(), filter, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, rows)
}

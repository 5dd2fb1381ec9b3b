package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-backoffice/internal/httperr"
	"github.com/BruksfildServices01/gym-backoffice/internal/models"
	"github.com/BruksfildServices01/gym-backoffice/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type ActivityLogsHandler struct {
	db    *gorm.DB
	clock timezone.Clock
}

func NewActivityLogsHandler(db *gorm.DB, clock timezone.Clock) *ActivityLogsHandler {
	return &ActivityLogsHandler{db: db, clock: clock}
}

func (h *ActivityLogsHandler) List(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.WithContext(c.Request.Context()).Model(&models.ActivityLog{})

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if raw := c.Query("equipment_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_id", "equipment_id must be a positive number")
			return
		}
		q = q.Where("equipment_id = ?", id)
	}

	loc := h.clock.Location()

	if fromStr != "" {
		from, err := time.ParseInLocation(time.DateOnly, fromStr, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", httperr.Message("invalid_date"))
			return
		}
		q = q.Where("created_at >= ?", from)
	}

	// "to" includes that whole day
	if toStr != "" {
		to, err := time.ParseInLocation(time.DateOnly, toStr, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", httperr.Message("invalid_date"))
			return
		}
		q = q.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	// --------------------------------------------------
	// Total
	// --------------------------------------------------

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "activity_count_failed", "Could not count activity entries.")
		return
	}

	// --------------------------------------------------
	// Page
	// --------------------------------------------------

	var logs []models.ActivityLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "activity_list_failed", "Could not list activity entries.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}

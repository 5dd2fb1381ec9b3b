package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gym-backoffice/internal/domain/schedule"
	"github.com/BruksfildServices01/gym-backoffice/internal/httperr"
	"github.com/BruksfildServices01/gym-backoffice/internal/httpresp"
)

// EquipmentHandler is read-only; inventory CRUD lives elsewhere.
type EquipmentHandler struct {
	repo schedule.Repository
	log  *zap.Logger
}

func NewEquipmentHandler(repo schedule.Repository, log *zap.Logger) *EquipmentHandler {
	return &EquipmentHandler{repo: repo, log: log}
}

func (h *EquipmentHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	eq, err := h.repo.GetEquipment(c.Request.Context(), id)
	if errors.Is(err, schedule.ErrNotFound) {
		err = httperr.ErrBusiness("equipment_not_found")
	}
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, eq)
}

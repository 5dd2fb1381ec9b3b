package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gym-backoffice/internal/httperr"
	"github.com/BruksfildServices01/gym-backoffice/internal/middleware"
	"github.com/BruksfildServices01/gym-backoffice/internal/timezone"
	ucSchedule "github.com/BruksfildServices01/gym-backoffice/internal/usecase/schedule"
)

type ReportHandler struct {
	export *ucSchedule.ExportTasks
	clock  timezone.Clock
	log    *zap.Logger
}

func NewReportHandler(
	export *ucSchedule.ExportTasks,
	clock timezone.Clock,
	log *zap.Logger,
) *ReportHandler {
	return &ReportHandler{
		export: export,
		clock:  clock,
		log:    log,
	}
}

// MaintenanceCSV streams the filtered task list as an attachment.
func (h *ReportHandler) MaintenanceCSV(c *gin.Context) {
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

	res, err := h.export.Execute(c.Request.Context(), middleware.ActorID(c), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	filename := fmt.Sprintf("maintenance-%s.csv", h.clock.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("X-Report-Rows", strconv.Itoa(res.Rows))
	if res.ArchiveKey != "" {
		c.Header("X-Report-Archive", res.ArchiveKey)
	}

	c.Data(http.StatusOK, "text/csv; charset=utf-8", res.Body)
}

package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gym-backoffice/internal/httperr"
	"github.com/BruksfildServices01/gym-backoffice/internal/httpresp"
	ucSchedule "github.com/BruksfildServices01/gym-backoffice/internal/usecase/schedule"
)

type StatisticsHandler struct {
	stats *ucSchedule.GetStatistics
	log   *zap.Logger
}

func NewStatisticsHandler(stats *ucSchedule.GetStatistics, log *zap.Logger) *StatisticsHandler {
	return &StatisticsHandler{stats: stats, log: log}
}

// Get handles GET /api/statistics?window_days=&upcoming_days=.
func (h *StatisticsHandler) Get(c *gin.Context) {
	window, err := optionalInt(c.Query("window_days"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	upcoming, err := optionalInt(c.Query("upcoming_days"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	stats, err := h.stats.Execute(c.Request.Context(), window, upcoming)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"stats": stats})
}

func optionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_request")
	}
	return n, nil
}

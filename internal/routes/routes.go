package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-backoffice/internal/audit"
	"github.com/BruksfildServices01/gym-backoffice/internal/cache"
	"github.com/BruksfildServices01/gym-backoffice/internal/config"
	"github.com/BruksfildServices01/gym-backoffice/internal/handlers"
	infraRepo "github.com/BruksfildServices01/gym-backoffice/internal/infra/repository"
	"github.com/BruksfildServices01/gym-backoffice/internal/middleware"
	"github.com/BruksfildServices01/gym-backoffice/internal/report"
	"github.com/BruksfildServices01/gym-backoffice/internal/timezone"
	ucSchedule "github.com/BruksfildServices01/gym-backoffice/internal/usecase/schedule"
)

// Deps are the process-wide singletons built in main.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      *zap.Logger
	Clock    timezone.Clock
	Stats    cache.StatsCache
	Archiver report.Archiver
	Audit    *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(d.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	createUC := ucSchedule.NewCreateEntry(scheduleRepo, d.Clock, d.Stats)
	updateUC := ucSchedule.NewUpdateEntry(scheduleRepo, d.Clock, d.Stats)
	deleteUC := ucSchedule.NewDeleteEntry(scheduleRepo, d.Clock, d.Stats)
	completeUC := ucSchedule.NewCompleteTask(scheduleRepo, d.Clock, d.Stats)
	bulkUC := ucSchedule.NewBulkAction(scheduleRepo, d.Clock, d.Stats)

	listEventsUC := ucSchedule.NewListEvents(scheduleRepo, d.Clock)
	listTasksUC := ucSchedule.NewListTasks(scheduleRepo, d.Clock)
	statisticsUC := ucSchedule.NewGetStatistics(scheduleRepo, d.Clock, d.Stats)
	exportUC := ucSchedule.NewExportTasks(listTasksUC, d.Archiver, d.Audit, d.Clock, d.Log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Config, d.Audit)

	calendarHandler := handlers.NewCalendarHandler(
		createUC,
		updateUC,
		deleteUC,
		listEventsUC,
		statisticsUC,
		d.Clock,
		d.Log,
	)

	maintenanceHandler := handlers.NewMaintenanceHandler(
		createUC,
		updateUC,
		deleteUC,
		completeUC,
		bulkUC,
		listTasksUC,
		d.Clock,
		d.Log,
	)

	equipmentHandler := handlers.NewEquipmentHandler(scheduleRepo, d.Log)
	statisticsHandler := handlers.NewStatisticsHandler(statisticsUC, d.Log)
	reportHandler := handlers.NewReportHandler(exportUC, d.Clock, d.Log)
	activityLogsHandler := handlers.NewActivityLogsHandler(d.DB, d.Clock)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.POST("/auth/login", authHandler.Login)

	// ======================================================
	// BACK OFFICE (EquipmentManager / Admin)
	// ======================================================
	office := api.Group("")
	office.Use(middleware.AuthMiddleware(d.Config))
	office.Use(middleware.RequireRole(middleware.RoleEquipmentManager))

	office.POST("/calendar/ajax", calendarHandler.Ajax)

	office.GET("/maintenance", maintenanceHandler.List)
	office.POST("/maintenance", maintenanceHandler.Submit)
	office.GET("/maintenance/quick", maintenanceHandler.Quick)

	office.GET("/equipment/:id", equipmentHandler.Get)
	office.GET("/statistics", statisticsHandler.Get)
	office.GET("/reports/maintenance.csv", reportHandler.MaintenanceCSV)
	office.GET("/activity-logs", activityLogsHandler.List)
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gym-backoffice/internal/audit"
	"github.com/BruksfildServices01/gym-backoffice/internal/cache"
	"github.com/BruksfildServices01/gym-backoffice/internal/config"
	dbpkg "github.com/BruksfildServices01/gym-backoffice/internal/db"
	"github.com/BruksfildServices01/gym-backoffice/internal/logger"
	"github.com/BruksfildServices01/gym-backoffice/internal/report"
	"github.com/BruksfildServices01/gym-backoffice/internal/routes"
	"github.com/BruksfildServices01/gym-backoffice/internal/timezone"
	"github.com/BruksfildServices01/gym-backoffice/internal/validators"
)

func main() {

	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := validators.Register(); err != nil {
		log.Fatal("failed to register validators", zap.Error(err))
	}

	db := dbpkg.NewDB(cfg, log)

	// --------------------------------------------------
	// Optional collaborators
	// --------------------------------------------------
	var stats cache.StatsCache = cache.NopStatsCache{}
	if cfg.CacheEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn("redis unavailable, statistics cache disabled", zap.Error(err))
		} else {
			stats = cache.NewRedisStatsCache(rdb, cfg.StatsCacheTTL, log)
		}
	}

	var archiver report.Archiver = report.NopArchiver{}
	if cfg.ArchiveEnabled() {
		client := report.NewS3Client(report.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		archiver = report.NewS3Archiver(client, cfg.S3Bucket)
	}

	dispatcher := audit.NewDispatcher(audit.New(db), log)

	// --------------------------------------------------
	// HTTP
	// --------------------------------------------------
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Log:      log,
		Clock:    timezone.NewClock(cfg.Timezone),
		Stats:    stats,
		Archiver: archiver,
		Audit:    dispatcher,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}

	dispatcher.Close()
}

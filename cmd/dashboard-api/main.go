package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Axton-Industries/Nextgen-work/api/swagger"
	"github.com/Axton-Industries/Nextgen-work/internal/handler"
	"github.com/Axton-Industries/Nextgen-work/internal/middleware"
	"github.com/Axton-Industries/Nextgen-work/internal/repository"
	"github.com/Axton-Industries/Nextgen-work/internal/service"
	"github.com/Axton-Industries/Nextgen-work/pkg/cache"
	"github.com/Axton-Industries/Nextgen-work/pkg/config"
	"github.com/Axton-Industries/Nextgen-work/pkg/jobs"
	"github.com/Axton-Industries/Nextgen-work/pkg/logger"
	corsmiddleware "github.com/Axton-Industries/Nextgen-work/pkg/middleware/cors"
	reqidmiddleware "github.com/Axton-Industries/Nextgen-work/pkg/middleware/requestid"
)

// @title Classroom Insights Dashboard API
// @version 1.0.0
// @description Class overview and per-student dashboards over a 52-week school calendar
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := handler.RegisterValidators(); err != nil {
		logr.Fatal("failed to register validators", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dataset, err := repository.NewDatasetRepository(cfg.Dataset.Path)
	if err != nil {
		logr.Fatal("failed to load dataset", zap.Error(err))
	}
	logr.Info("dataset loaded", zap.String("source", dataset.Source()))

	metricsSvc := service.NewMetricsService()

	cacheEnabled := cfg.Dashboard.CacheEnabled
	var cacheRepo *repository.CacheRepository
	if cacheEnabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, dashboard cache disabled", zap.String("addr", cache.Addr(cfg.Redis)), zap.Error(err))
			cacheEnabled = false
			cacheRepo = repository.NewCacheRepository(nil, logr)
		} else {
			cacheRepo = repository.NewCacheRepository(client, logr)
		}
	} else {
		cacheRepo = repository.NewCacheRepository(nil, logr)
	}
	defer cacheRepo.Close() //nolint:errcheck
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, cacheEnabled)
	// Views cached by a previous process may stem from a different dataset.
	if err := cacheSvc.Invalidate(ctx, service.DashboardCachePattern); err != nil {
		logr.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}

	filterSvc := service.NewFilterService(service.FilterServiceConfig{
		MaxRangeWeeks: cfg.Filters.MaxRangeWeeks,
		MinYear:       cfg.Filters.MinYear,
		MaxYear:       cfg.Filters.MaxYear,
	}, logr)
	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Dataset: dataset,
		Cache:   cacheSvc,
		Metrics: metricsSvc,
		Logger:  logr,
		Config:  service.DashboardServiceConfig{CacheTTL: cfg.Dashboard.CacheTTL},
	})
	studentSvc := service.NewStudentService(dataset, logr)

	var exportHandler *handler.ExportHandler
	if cfg.Exports.Enabled {
		exportHandler = handler.NewExportHandler(service.NewExportService(dashboardSvc, logr, nil, nil), filterSvc)
	} else {
		exportHandler = handler.NewExportHandler(nil, filterSvc)
	}

	var readiness handler.Pinger
	if cacheEnabled {
		readiness = cacheRepo
	}

	var warmupQueue *jobs.Queue
	if cfg.Warmup.Enabled && cacheEnabled {
		warmupSvc := service.NewWarmupService(service.WarmupServiceParams{
			Students:   dataset,
			Dashboards: dashboardSvc,
			Filters:    filterSvc,
			Metrics:    metricsSvc,
			Logger:     logr,
		})
		warmupQueue = jobs.NewQueue("dashboard-warmup", warmupSvc.Handle, jobs.QueueConfig{
			Workers:    cfg.Warmup.Workers,
			MaxRetries: 1,
			RetryDelay: 2 * time.Second,
			Logger:     logr,
		})
		warmupQueue.Start(ctx)
		go func() {
			if _, err := warmupSvc.Enqueue(ctx, warmupQueue); err != nil {
				logr.Warn("dashboard warmup aborted", zap.Error(err))
			}
		}()
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc, "/health", "/ready", "/metrics"))
	r.Use(middleware.WithResponseMeta())

	metricsHandler := handler.NewMetricsHandler(metricsSvc, readiness)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	dashboardHandler := handler.NewDashboardHandler(dashboardSvc, filterSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	filterHandler := handler.NewFilterHandler(filterSvc)

	api := r.Group(cfg.APIPrefix)
	api.GET("/dashboard/overview", dashboardHandler.Overview)
	api.GET("/dashboard/students/:name", dashboardHandler.Student)
	api.GET("/dashboard/students/:name/export", exportHandler.StudentReport)
	api.GET("/students", studentHandler.List)
	api.GET("/students/search", studentHandler.Search)
	api.GET("/filters/presets", filterHandler.Presets)
	api.GET("/filters/weeks", filterHandler.Weeks)
	api.POST("/filters/transition", filterHandler.Transition)
	api.GET("/calendar/months", filterHandler.Calendar)
	api.GET("/system/metrics", metricsHandler.Snapshot)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "cache", cacheEnabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Warn("graceful shutdown failed", zap.Error(err))
	}
	if warmupQueue != nil {
		warmupQueue.Stop()
		stats := warmupQueue.Stats()
		logr.Info("warmup queue stopped",
			zap.Int64("succeeded", stats.Succeeded),
			zap.Int64("retried", stats.Retried),
			zap.Int64("failed", stats.Failed))
	}
}

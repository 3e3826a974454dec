package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/stroma-app/care-engine/internal/config"
	"github.com/stroma-app/care-engine/internal/domain"
	"github.com/stroma-app/care-engine/internal/handler"
	"github.com/stroma-app/care-engine/internal/health"
	"github.com/stroma-app/care-engine/internal/infra/carerecorder"
	"github.com/stroma-app/care-engine/internal/infra/repository"
	"github.com/stroma-app/care-engine/internal/observability/logging"
	"github.com/stroma-app/care-engine/internal/observability/metrics"
	"github.com/stroma-app/care-engine/internal/observability/middleware"
	"github.com/stroma-app/care-engine/internal/service/bucket"
	"github.com/stroma-app/care-engine/internal/service/reminder"
	"github.com/stroma-app/care-engine/internal/service/season"
	"github.com/stroma-app/care-engine/internal/service/window"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	if err := cfg.Scheduler.Validate(); err != nil {
		slog.Error("scheduler configuration error", slog.String("error", err.Error()))
		return 1
	}

	if cfg.DefaultReminderTime != "" {
		t, err := domain.ParseTimeOfDay(cfg.DefaultReminderTime)
		if err != nil {
			slog.Error("invalid REMINDER_TIME_DEFAULT", slog.String("error", err.Error()))
			return 1
		}
		domain.DefaultReminderTime = t
	}

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	reminderMetrics, err := metrics.NewReminderMetrics()
	if err != nil {
		slog.Error("failed to initialize reminder metrics", slog.String("error", err.Error()))
		return 1
	}

	// Initialize care event recorder (InfluxDB for local, BigQuery for gcloud)
	recorderCfg := carerecorder.LoadConfig()
	eventRecorder, err := carerecorder.NewRecorder(ctx, recorderCfg)
	if err != nil {
		slog.Error("failed to initialize care event recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := eventRecorder.Close(); err != nil {
			slog.Warn("failed to close care event recorder", slog.String("error", err.Error()))
		}
	}()

	// Initialize notification scheduler (push gateway for local, Cloud Tasks for gcloud)
	notificationScheduler, cleanup, err := initScheduler(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize notification scheduler", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("notification scheduler cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	redisOpts := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.Redis.TLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOpts)

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	plantRepo := repository.NewPlantRepository(redisClient)
	recordRepo := repository.NewReminderRecordRepository(redisClient)
	settingsRepo := repository.NewSettingsRepository(redisClient)

	clock := domain.SystemClock()
	seasons := season.NewClassifier()
	windows := window.NewCalculator(seasons)
	partitioner := bucket.NewPartitioner(windows)

	reminderService := reminder.NewService(
		plantRepo,
		recordRepo,
		settingsRepo,
		notificationScheduler,
		windows,
		clock,
		reminderMetrics,
	)

	plantHandler := handler.NewPlantHandler(plantRepo, partitioner, windows, seasons, reminderService, eventRecorder, clock)
	notificationHandler := handler.NewNotificationHandler(plantRepo, reminderService, eventRecorder)
	settingsHandler := handler.NewSettingsHandler(settingsRepo, reminderService)

	// Setup router with observability middleware
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready", "/metrics"},
		Module:      logging.Module("care-engine"),
		TracerName:  "github.com/stroma-app/care-engine/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	// Health check endpoints
	healthChecker := health.NewChecker(redisClient, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	// API routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/plants/overview", plantHandler.HandleOverview)
		v1.GET("/plants/:id/watering", plantHandler.HandleWateringStatus)
		v1.POST("/plants/:id/water", plantHandler.HandleWaterPlant)
		v1.POST("/plants/:id/notifications", notificationHandler.HandleToggle)
		v1.GET("/settings/reminder-time", settingsHandler.HandleGetReminderTime)
		v1.PUT("/settings/reminder-time", settingsHandler.HandleSetReminderTime)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
		)
		serverErr <- srv.ListenAndServe()
	}()

	// Wait for shutdown signal or server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}

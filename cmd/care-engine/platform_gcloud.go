//go:build gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/stroma-app/care-engine/internal/config"
	"github.com/stroma-app/care-engine/internal/infra/scheduler"
	"github.com/stroma-app/care-engine/internal/observability"
	"github.com/stroma-app/care-engine/internal/observability/logging"
)

func initScheduler(ctx context.Context, cfg *config.Config) (scheduler.NotificationScheduler, func() error, error) {
	cloudTasksScheduler, err := scheduler.NewCloudTasksScheduler(ctx, scheduler.CloudTasksConfig{
		ProjectID:  cfg.Scheduler.GCloudProjectID,
		LocationID: cfg.Scheduler.GCloudLocationID,
		QueueID:    cfg.Scheduler.GCloudQueueID,
		TargetURL:  cfg.Scheduler.GCloudTargetURL,
		MaxRetries: cfg.Scheduler.MaxRetries,
	})
	if err != nil {
		return nil, nil, err
	}

	slog.Info("notification scheduler initialized",
		slog.String("type", "cloud_tasks"),
		slog.String("project", cfg.Scheduler.GCloudProjectID),
		slog.String("location", cfg.Scheduler.GCloudLocationID),
		slog.String("queue", cfg.Scheduler.GCloudQueueID),
	)

	cleanup := func() error {
		if err := cloudTasksScheduler.Close(); err != nil {
			slog.Warn("failed to close cloud tasks scheduler", slog.String("error", err.Error()))

			return err
		}

		return nil
	}

	return cloudTasksScheduler, cleanup, nil
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "care-engine"
	}

	env := logging.EnvProd
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("GCLOUD_PROJECT_ID")
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("K_REVISION"),
		},
		Environment:   env,
		GCPProjectID:  projectID,
		SamplingRate:  1.0,
		DefaultModule: logging.Module("care-engine"),
		LogLevel:      cfg.LogLevel,
	})
	if err != nil {
		return nil, err
	}

	return obs, nil
}

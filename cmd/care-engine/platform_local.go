//go:build !gcloud

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

func initScheduler(_ context.Context, cfg *config.Config) (scheduler.NotificationScheduler, func() error, error) {
	client := scheduler.NewPushGatewayClient(cfg.Scheduler.PushGatewayURL)

	slog.Info("notification scheduler initialized",
		slog.String("type", "push_gateway"),
		slog.String("url", cfg.Scheduler.PushGatewayURL),
	)

	return client, nil, nil
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "care-engine"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: "",
		},
		Environment:   env,
		GCPProjectID:  "",
		SamplingRate:  1.0,
		DefaultModule: logging.Module("care-engine"),
		LogLevel:      cfg.LogLevel,
	})
	if err != nil {
		return nil, err
	}

	return obs, nil
}

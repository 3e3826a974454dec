//go:build !gcloud

package carerecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/stroma-app/care-engine/internal/domain"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.CareEventRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "care event recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, care event recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "care event recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) RecordWateringEvent(ctx context.Context, record domain.WateringEventRecord) error {
	point := influxdb2.NewPoint(
		"watering_event",
		map[string]string{
			"plant_id": record.PlantID,
			"species":  record.Species,
		},
		map[string]any{
			"watered_at_unix": record.WateredAt.Unix(),
			"in_season":       record.InSeason,
		},
		time.Now(),
	)

	if err := r.writeAPI.WritePoint(ctx, point); err != nil {
		slog.WarnContext(ctx, "failed to write watering event to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("plant_id", record.PlantID),
		)
	}

	return nil
}

func (r *influxDBRecorder) RecordScheduleOutcome(ctx context.Context, record domain.ScheduleOutcomeRecord) error {
	point := influxdb2.NewPoint(
		"schedule_outcome",
		map[string]string{
			"plant_id":  record.PlantID,
			"operation": record.Operation,
		},
		map[string]any{
			"reminder_count": record.ReminderCount,
			"success":        record.Success,
		},
		time.Now(),
	)

	if err := r.writeAPI.WritePoint(ctx, point); err != nil {
		slog.WarnContext(ctx, "failed to write schedule outcome to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("plant_id", record.PlantID),
		)
	}

	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}

//go:build gcloud

package carerecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/stroma-app/care-engine/internal/domain"
)

type wateringEventRow struct {
	RecordedAt time.Time `bigquery:"recorded_at"`
	PlantID    string    `bigquery:"plant_id"`
	Species    string    `bigquery:"species"`
	WateredAt  time.Time `bigquery:"watered_at"`
	InSeason   bool      `bigquery:"in_season"`
}

type scheduleOutcomeRow struct {
	RecordedAt    time.Time `bigquery:"recorded_at"`
	PlantID       string    `bigquery:"plant_id"`
	Operation     string    `bigquery:"operation"`
	ReminderCount int64     `bigquery:"reminder_count"`
	Success       bool      `bigquery:"success"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.CareEventRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "care event recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, care event recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, care event recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	table := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable)
	inserter := table.Inserter()

	slog.InfoContext(ctx, "care event recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) RecordWateringEvent(ctx context.Context, record domain.WateringEventRecord) error {
	row := &wateringEventRow{
		RecordedAt: time.Now(),
		PlantID:    record.PlantID,
		Species:    record.Species,
		WateredAt:  record.WateredAt,
		InSeason:   record.InSeason,
	}

	if err := r.inserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert watering event to BigQuery",
			slog.String("error", err.Error()),
			slog.String("plant_id", record.PlantID),
		)
	}

	return nil
}

func (r *bigQueryRecorder) RecordScheduleOutcome(ctx context.Context, record domain.ScheduleOutcomeRecord) error {
	row := &scheduleOutcomeRow{
		RecordedAt:    time.Now(),
		PlantID:       record.PlantID,
		Operation:     record.Operation,
		ReminderCount: int64(record.ReminderCount),
		Success:       record.Success,
	}

	if err := r.inserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert schedule outcome to BigQuery",
			slog.String("error", err.Error()),
			slog.String("plant_id", record.PlantID),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	reminderMeterName = "reminder.service"
)

type ReminderMetrics struct {
	remindersScheduled metric.Int64Counter
	remindersCancelled metric.Int64Counter
	planSize           metric.Int64Histogram
	scheduleDuration   metric.Float64Histogram
	rescheduleDuration metric.Float64Histogram
	scheduleFailures   metric.Int64Counter
}

func NewReminderMetrics() (*ReminderMetrics, error) {
	meter := otel.Meter(reminderMeterName)

	remindersScheduled, err := meter.Int64Counter(
		"reminders_scheduled_total",
		metric.WithDescription("Total number of reminder notifications scheduled"),
		metric.WithUnit("{reminder}"),
	)
	if err != nil {
		return nil, err
	}

	remindersCancelled, err := meter.Int64Counter(
		"reminders_cancelled_total",
		metric.WithDescription("Total number of reminder notifications cancelled"),
		metric.WithUnit("{reminder}"),
	)
	if err != nil {
		return nil, err
	}

	planSize, err := meter.Int64Histogram(
		"reminder_plan_size",
		metric.WithDescription("Number of entries in a generated reminder plan"),
		metric.WithUnit("{entry}"),
		metric.WithExplicitBucketBoundaries(1, 2, 3, 4, 5),
	)
	if err != nil {
		return nil, err
	}

	scheduleDuration, err := meter.Float64Histogram(
		"reminder_schedule_duration_seconds",
		metric.WithDescription("Time spent scheduling a plant's reminder plan"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5,
		),
	)
	if err != nil {
		return nil, err
	}

	rescheduleDuration, err := meter.Float64Histogram(
		"reminder_reschedule_all_duration_seconds",
		metric.WithDescription("Time spent rescheduling reminders across all plants"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60,
		),
	)
	if err != nil {
		return nil, err
	}

	scheduleFailures, err := meter.Int64Counter(
		"reminder_schedule_failures_total",
		metric.WithDescription("Total number of failed scheduling attempts"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, err
	}

	return &ReminderMetrics{
		remindersScheduled: remindersScheduled,
		remindersCancelled: remindersCancelled,
		planSize:           planSize,
		scheduleDuration:   scheduleDuration,
		rescheduleDuration: rescheduleDuration,
		scheduleFailures:   scheduleFailures,
	}, nil
}

func (m *ReminderMetrics) RecordReminderScheduled(ctx context.Context, kind string) {
	m.remindersScheduled.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

func (m *ReminderMetrics) RecordReminderCancelled(ctx context.Context, outcome string) {
	m.remindersCancelled.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *ReminderMetrics) RecordPlanSize(ctx context.Context, size int) {
	m.planSize.Record(ctx, int64(size))
}

func (m *ReminderMetrics) RecordScheduleDuration(ctx context.Context, duration time.Duration) {
	m.scheduleDuration.Record(ctx, duration.Seconds())
}

func (m *ReminderMetrics) RecordRescheduleAllDuration(ctx context.Context, duration time.Duration) {
	m.rescheduleDuration.Record(ctx, duration.Seconds())
}

func (m *ReminderMetrics) RecordScheduleFailure(ctx context.Context, reason string) {
	m.scheduleFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
	))
}

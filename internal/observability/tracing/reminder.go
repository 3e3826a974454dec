package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const reminderTracerName = "github.com/stroma-app/care-engine/internal/service/reminder"

func ReminderTracer() trace.Tracer {
	return otel.Tracer(reminderTracerName)
}

func StartScheduleSpan(ctx context.Context, plantID string, species string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.schedule",
		trace.WithAttributes(
			attribute.String("plant_id", plantID),
			attribute.String("species", species),
		),
	)
}

func StartCancelSpan(ctx context.Context, plantID string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.cancel",
		trace.WithAttributes(
			attribute.String("plant_id", plantID),
		),
	)
}

func StartRescheduleAllSpan(ctx context.Context) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.reschedule_all")
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.external_api."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordScheduleResult(span trace.Span, entryCount int, firstFiresAt time.Time, err error) {
	span.SetAttributes(
		attribute.Int("schedule.entry_count", entryCount),
	)
	if !firstFiresAt.IsZero() {
		span.SetAttributes(attribute.String("schedule.first_fires_at", firstFiresAt.Format(time.RFC3339)))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordCancelResult(span trace.Span, cancelledCount int, err error) {
	span.SetAttributes(
		attribute.Int("cancel.cancelled_count", cancelledCount),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordRescheduleAllResult(span trace.Span, plantCount, failedCount int) {
	span.SetAttributes(
		attribute.Int("reschedule.plant_count", plantCount),
		attribute.Int("reschedule.failed_count", failedCount),
	)
	if failedCount > 0 {
		span.SetStatus(codes.Error, "one or more plants failed to reschedule")
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

package domain

import (
	"context"
	"time"
)

type WateringEventRecord struct {
	PlantID   string
	Species   string
	WateredAt time.Time
	InSeason  bool
}

type ScheduleOutcomeRecord struct {
	PlantID       string
	Operation     string // "schedule", "cancel", "reschedule"
	ReminderCount int
	Success       bool
}

// CareEventRecorder is a best-effort analytics sink. Implementations log and
// swallow their own failures; callers never branch on recorder errors.
type CareEventRecorder interface {
	RecordWateringEvent(ctx context.Context, record WateringEventRecord) error
	RecordScheduleOutcome(ctx context.Context, record ScheduleOutcomeRecord) error
	Close() error
}

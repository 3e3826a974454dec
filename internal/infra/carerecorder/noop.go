package carerecorder

import (
	"context"

	"github.com/stroma-app/care-engine/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.CareEventRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordWateringEvent(_ context.Context, _ domain.WateringEventRecord) error {
	return nil
}

func (n *noopRecorder) RecordScheduleOutcome(_ context.Context, _ domain.ScheduleOutcomeRecord) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}

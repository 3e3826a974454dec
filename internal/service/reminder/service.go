// Package reminder manages the lifecycle of scheduled watering reminders:
// submitting a plant's plan to the notification scheduler, cancelling it,
// and rebuilding it when the inputs change.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/stroma-app/care-engine/internal/domain"
	"github.com/stroma-app/care-engine/internal/infra/scheduler"
	"github.com/stroma-app/care-engine/internal/observability/metrics"
	"github.com/stroma-app/care-engine/internal/observability/tracing"
	"github.com/stroma-app/care-engine/internal/service/plan"
	"github.com/stroma-app/care-engine/internal/service/window"
)

type Service struct {
	plants          domain.PlantRepository
	records         domain.ReminderRecordRepository
	settings        domain.SettingsRepository
	scheduler       scheduler.NotificationScheduler
	windows         *window.Calculator
	clock           domain.Clock
	reminderMetrics *metrics.ReminderMetrics
}

func NewService(
	plants domain.PlantRepository,
	records domain.ReminderRecordRepository,
	settings domain.SettingsRepository,
	notificationScheduler scheduler.NotificationScheduler,
	windows *window.Calculator,
	clock domain.Clock,
	reminderMetrics *metrics.ReminderMetrics,
) *Service {
	return &Service{
		plants:          plants,
		records:         records,
		settings:        settings,
		scheduler:       notificationScheduler,
		windows:         windows,
		clock:           clock,
		reminderMetrics: reminderMetrics,
	}
}

// ScheduleForPlant submits the plant's full reminder plan to the scheduler.
// Any plan already live for the plant is torn down first, so a repeated call
// replaces rather than stacks reminders and each (plant, kind) pair keeps at
// most one active record. Submissions fan out concurrently; if any of them
// fails, every reminder that was already accepted is cancelled again and
// nothing is persisted, so the plant never ends up with a partial plan. A
// plant with notifications disabled or no watering history is a no-op.
func (s *Service) ScheduleForPlant(ctx context.Context, plant *domain.Plant) ([]domain.ReminderRecord, error) {
	if !plant.NotificationsEnabled || !plant.HasWateringHistory() {
		slog.DebugContext(ctx, "skipping reminder scheduling",
			slog.String("plant_id", plant.ID),
			slog.Bool("notifications_enabled", plant.NotificationsEnabled),
			slog.Bool("has_watering_history", plant.HasWateringHistory()),
		)
		return nil, nil
	}

	ctx, span := tracing.StartScheduleSpan(ctx, plant.ID, string(plant.Species))
	defer span.End()

	start := time.Now()
	now := s.clock.Now()

	wateringWindow, err := s.windows.Compute(plant, now)
	if err != nil {
		tracing.RecordScheduleResult(span, 0, time.Time{}, err)
		return nil, fmt.Errorf("failed to compute watering window: %w", err)
	}

	reminderTime, err := s.settings.GetReminderTime(ctx)
	if err != nil {
		tracing.RecordScheduleResult(span, 0, time.Time{}, err)
		return nil, fmt.Errorf("failed to load reminder time: %w", err)
	}

	entries := plan.Generate(plant.Name, wateringWindow, now, reminderTime)
	if s.reminderMetrics != nil {
		s.reminderMetrics.RecordPlanSize(ctx, len(entries))
	}

	slog.DebugContext(ctx, "generated reminder plan",
		slog.String("plant_id", plant.ID),
		slog.Int("entry_count", len(entries)),
		slog.Time("window_min", wateringWindow.Min),
		slog.Time("window_max", wateringWindow.Max),
	)

	// Tear down any live plan before submitting the new one. A client
	// retrying an enable after a timeout lands here with records already
	// present; without this, a kind could carry two active reminders.
	if err := s.CancelAllForPlant(ctx, plant); err != nil {
		tracing.RecordScheduleResult(span, len(entries), time.Time{}, err)
		return nil, fmt.Errorf("failed to clear existing reminders: %w", err)
	}

	ids := make([]string, len(entries))
	errs := make([]error, len(entries))

	var wg sync.WaitGroup
	for i, entry := range entries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := s.scheduler.Schedule(ctx, &scheduler.Notification{
				Title:   entry.Title,
				Body:    entry.Body,
				FiresAt: entry.FiresAt,
				Metadata: map[string]string{
					"plant_id": plant.ID,
					"kind":     entry.Kind.String(),
				},
			})
			if err != nil {
				errs[i] = fmt.Errorf("reminder %s: %w", entry.Kind, err)
				return
			}
			ids[i] = id
		}()
	}
	wg.Wait()

	if submitErr := errors.Join(errs...); submitErr != nil {
		s.rollbackSubmitted(ctx, plant.ID, ids)
		if s.reminderMetrics != nil {
			s.reminderMetrics.RecordScheduleFailure(ctx, "submission")
		}
		err := fmt.Errorf("%w: %w", domain.ErrSchedulerSubmission, submitErr)
		tracing.RecordScheduleResult(span, len(entries), time.Time{}, err)
		return nil, err
	}

	reminderRecords := make([]domain.ReminderRecord, len(entries))
	for i, entry := range entries {
		reminderRecords[i] = domain.ReminderRecord{
			ID:        ids[i],
			PlantID:   plant.ID,
			FiresAt:   entry.FiresAt,
			Kind:      entry.Kind,
			Title:     entry.Title,
			Body:      entry.Body,
			CreatedAt: now,
		}
	}

	if err := s.records.SaveRecords(ctx, reminderRecords); err != nil {
		s.rollbackSubmitted(ctx, plant.ID, ids)
		if s.reminderMetrics != nil {
			s.reminderMetrics.RecordScheduleFailure(ctx, "persistence")
		}
		err = fmt.Errorf("failed to persist reminder records: %w", err)
		tracing.RecordScheduleResult(span, len(entries), time.Time{}, err)
		return nil, err
	}

	if err := s.plants.SetReminderIDs(ctx, plant.ID, ids); err != nil {
		s.rollbackSubmitted(ctx, plant.ID, ids)
		if delErr := s.records.DeleteByPlant(ctx, plant.ID); delErr != nil {
			slog.WarnContext(ctx, "failed to delete reminder records during rollback",
				slog.String("plant_id", plant.ID),
				slog.String("error", delErr.Error()),
			)
		}
		if s.reminderMetrics != nil {
			s.reminderMetrics.RecordScheduleFailure(ctx, "persistence")
		}
		err = fmt.Errorf("failed to attach reminder ids to plant: %w", err)
		tracing.RecordScheduleResult(span, len(entries), time.Time{}, err)
		return nil, err
	}

	plant.ReminderIDs = ids

	if s.reminderMetrics != nil {
		for _, entry := range entries {
			s.reminderMetrics.RecordReminderScheduled(ctx, entry.Kind.String())
		}
		s.reminderMetrics.RecordScheduleDuration(ctx, time.Since(start))
	}

	slog.InfoContext(ctx, "reminder plan scheduled",
		slog.String("plant_id", plant.ID),
		slog.Int("reminder_count", len(reminderRecords)),
		slog.Time("first_fires_at", reminderRecords[0].FiresAt),
	)
	tracing.RecordScheduleResult(span, len(entries), reminderRecords[0].FiresAt, nil)

	return reminderRecords, nil
}

// CancelAllForPlant cancels every reminder known for the plant and clears
// the local bookkeeping. Cancellation is idempotent: reminders that already
// fired or were never registered cancel as a no-op, and a plant with no
// reminders returns immediately.
func (s *Service) CancelAllForPlant(ctx context.Context, plant *domain.Plant) error {
	ctx, span := tracing.StartCancelSpan(ctx, plant.ID)
	defer span.End()

	existing, err := s.records.ListByPlant(ctx, plant.ID)
	if err != nil {
		tracing.RecordCancelResult(span, 0, err)
		return fmt.Errorf("failed to list reminder records: %w", err)
	}

	if len(existing) == 0 && len(plant.ReminderIDs) == 0 {
		tracing.RecordCancelResult(span, 0, nil)
		return nil
	}

	var cancelErrs []error
	cancelled := 0
	for _, record := range existing {
		if err := s.scheduler.Cancel(ctx, record.ID); err != nil {
			slog.WarnContext(ctx, "failed to cancel reminder",
				slog.String("plant_id", plant.ID),
				slog.String("reminder_id", record.ID),
				slog.String("error", err.Error()),
			)
			cancelErrs = append(cancelErrs, fmt.Errorf("reminder %s: %w", record.ID, err))
			if s.reminderMetrics != nil {
				s.reminderMetrics.RecordReminderCancelled(ctx, "failure")
			}
			continue
		}
		cancelled++
		if s.reminderMetrics != nil {
			s.reminderMetrics.RecordReminderCancelled(ctx, "success")
		}
	}

	// Local state is cleared even when some cancels failed: the scheduler
	// side treats unknown ids as already gone, so a stray reminder fires at
	// most once and never comes back.
	if err := s.records.DeleteByPlant(ctx, plant.ID); err != nil {
		cancelErrs = append(cancelErrs, fmt.Errorf("failed to delete reminder records: %w", err))
	}
	if err := s.plants.SetReminderIDs(ctx, plant.ID, nil); err != nil {
		cancelErrs = append(cancelErrs, fmt.Errorf("failed to clear reminder ids: %w", err))
	}
	plant.ReminderIDs = nil

	joined := errors.Join(cancelErrs...)
	tracing.RecordCancelResult(span, cancelled, joined)
	if joined != nil {
		return fmt.Errorf("failed to cancel reminders for plant %s: %w", plant.ID, joined)
	}

	slog.InfoContext(ctx, "reminders cancelled",
		slog.String("plant_id", plant.ID),
		slog.Int("cancelled_count", cancelled),
	)
	return nil
}

// RescheduleForPlant rebuilds the plant's reminder plan from scratch.
// ScheduleForPlant already cancels the live plan, so this is the error-only
// entry point for callers that do not need the new records.
func (s *Service) RescheduleForPlant(ctx context.Context, plant *domain.Plant) error {
	_, err := s.ScheduleForPlant(ctx, plant)
	return err
}

// RescheduleAll rebuilds reminder plans for every plant with notifications
// enabled and active reminders. Plants are processed sequentially and a
// failure on one plant is logged and skipped rather than aborting the sweep.
func (s *Service) RescheduleAll(ctx context.Context) error {
	ctx, span := tracing.StartRescheduleAllSpan(ctx)
	defer span.End()

	start := time.Now()

	plants, err := s.plants.ListPlants(ctx)
	if err != nil {
		tracing.RecordRescheduleAllResult(span, 0, 0)
		return fmt.Errorf("failed to list plants: %w", err)
	}

	processed := 0
	failed := 0
	for i := range plants {
		plant := &plants[i]
		if !plant.NotificationsEnabled || !plant.HasActiveReminders() {
			continue
		}

		processed++
		if err := s.RescheduleForPlant(ctx, plant); err != nil {
			failed++
			slog.ErrorContext(ctx, "failed to reschedule plant",
				slog.String("plant_id", plant.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	if s.reminderMetrics != nil {
		s.reminderMetrics.RecordRescheduleAllDuration(ctx, time.Since(start))
	}
	tracing.RecordRescheduleAllResult(span, processed, failed)

	slog.InfoContext(ctx, "reschedule sweep completed",
		slog.Int("plant_count", processed),
		slog.Int("failed_count", failed),
	)
	return nil
}

// SetGlobalReminderTime persists the new time of day and rebuilds every
// active reminder plan so existing reminders fire at the new time.
func (s *Service) SetGlobalReminderTime(ctx context.Context, t domain.TimeOfDay) error {
	if err := s.settings.SetReminderTime(ctx, t); err != nil {
		return fmt.Errorf("failed to persist reminder time: %w", err)
	}

	slog.InfoContext(ctx, "global reminder time updated",
		slog.String("reminder_time", t.String()),
	)

	return s.RescheduleAll(ctx)
}

// rollbackSubmitted best-effort cancels the reminders that were accepted
// before a scheduling round failed.
func (s *Service) rollbackSubmitted(ctx context.Context, plantID string, ids []string) {
	for _, id := range ids {
		if id == "" {
			continue
		}
		if err := s.scheduler.Cancel(ctx, id); err != nil {
			slog.WarnContext(ctx, "failed to roll back submitted reminder",
				slog.String("plant_id", plantID),
				slog.String("reminder_id", id),
				slog.String("error", err.Error()),
			)
		}
	}
}

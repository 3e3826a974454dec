//go:build gcloud

package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// CloudTasksScheduler delivers reminders through Google Cloud Tasks: each
// scheduled notification becomes a task that POSTs the payload to the push
// delivery endpoint at fire time. The task id doubles as the opaque
// notification id.
type CloudTasksScheduler struct {
	client     *cloudtasks.Client
	projectID  string
	locationID string
	queueID    string
	targetURL  string
	maxRetries int
}

type CloudTasksConfig struct {
	ProjectID  string
	LocationID string
	QueueID    string
	TargetURL  string
	MaxRetries int
}

func NewCloudTasksScheduler(ctx context.Context, cfg CloudTasksConfig) (*CloudTasksScheduler, error) {
	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud tasks client: %w", err)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	return &CloudTasksScheduler{
		client:     client,
		projectID:  cfg.ProjectID,
		locationID: cfg.LocationID,
		queueID:    cfg.QueueID,
		targetURL:  cfg.TargetURL,
		maxRetries: maxRetries,
	}, nil
}

func (s *CloudTasksScheduler) Schedule(ctx context.Context, notification *Notification) (string, error) {
	payload, err := json.Marshal(notification)
	if err != nil {
		return "", fmt.Errorf("failed to marshal notification: %w", err)
	}

	notificationID := uuid.NewString()

	task := &taskspb.Task{
		Name: s.taskPath(notificationID),
		MessageType: &taskspb.Task_HttpRequest{
			HttpRequest: &taskspb.HttpRequest{
				HttpMethod: taskspb.HttpMethod_POST,
				Url:        s.targetURL,
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
				Body: payload,
			},
		},
	}

	if !notification.FiresAt.IsZero() {
		task.ScheduleTime = timestamppb.New(notification.FiresAt)
	}

	req := &taskspb.CreateTaskRequest{
		Parent: s.queuePath(),
		Task:   task,
	}

	var lastErr error
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
			slog.DebugContext(ctx, "retrying notification scheduling",
				slog.String("notification_id", notificationID),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		if _, err := s.client.CreateTask(ctx, req); err != nil {
			slog.WarnContext(ctx, "failed to create cloud task",
				slog.String("notification_id", notificationID),
				slog.String("error", err.Error()),
			)
			lastErr = fmt.Errorf("failed to create cloud task: %w", err)
			continue
		}

		slog.InfoContext(ctx, "notification task registered to Cloud Tasks",
			slog.String("notification_id", notificationID),
			slog.Time("fires_at", notification.FiresAt),
		)
		return notificationID, nil
	}

	slog.ErrorContext(ctx, "all retries exhausted for notification scheduling",
		slog.String("notification_id", notificationID),
		slog.Int("max_retries", s.maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return "", fmt.Errorf("failed to schedule notification after %d retries: %w", s.maxRetries, lastErr)
}

func (s *CloudTasksScheduler) Cancel(ctx context.Context, id string) error {
	req := &taskspb.DeleteTaskRequest{
		Name: s.taskPath(id),
	}

	var lastErr error
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		err := s.client.DeleteTask(ctx, req)
		if err == nil {
			slog.DebugContext(ctx, "notification task deleted from Cloud Tasks",
				slog.String("notification_id", id),
			)
			return nil
		}

		// Already fired or already cancelled: treat as success.
		if status.Code(err) == codes.NotFound {
			slog.InfoContext(ctx, "notification task not found in Cloud Tasks (may have fired)",
				slog.String("notification_id", id),
			)
			return nil
		}

		slog.WarnContext(ctx, "failed to delete cloud task",
			slog.String("notification_id", id),
			slog.String("error", err.Error()),
		)
		lastErr = fmt.Errorf("failed to delete cloud task: %w", err)
	}

	return fmt.Errorf("failed to cancel notification after %d retries: %w", s.maxRetries, lastErr)
}

func (s *CloudTasksScheduler) Close() error {
	return s.client.Close()
}

func (s *CloudTasksScheduler) queuePath() string {
	return fmt.Sprintf("projects/%s/locations/%s/queues/%s", s.projectID, s.locationID, s.queueID)
}

func (s *CloudTasksScheduler) taskPath(id string) string {
	return fmt.Sprintf("%s/tasks/%s", s.queuePath(), id)
}

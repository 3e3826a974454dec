package scheduler

import "context"

//go:generate mockgen -source=scheduler.go -destination=mock.go -package=scheduler

// NotificationScheduler is the external capability that delivers reminders to
// devices. Schedule returns an opaque id owned by the scheduler; Cancel of an
// unknown id succeeds, so cancellation is idempotent.
type NotificationScheduler interface {
	Schedule(ctx context.Context, notification *Notification) (string, error)
	Cancel(ctx context.Context, id string) error
}

package domain

import "context"

//go:generate mockgen -source=reminder_repository.go -destination=reminder_repository_mock.go -package=domain

// ReminderRecordRepository persists the mapping between plants and the
// reminders submitted to the external scheduler.
type ReminderRecordRepository interface {
	SaveRecords(ctx context.Context, records []ReminderRecord) error
	ListByPlant(ctx context.Context, plantID string) ([]ReminderRecord, error)
	DeleteByPlant(ctx context.Context, plantID string) error
}

// SettingsRepository persists process-wide engine settings.
type SettingsRepository interface {
	GetReminderTime(ctx context.Context) (TimeOfDay, error)
	SetReminderTime(ctx context.Context, t TimeOfDay) error
}

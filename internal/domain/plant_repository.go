package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=plant_repository.go -destination=plant_repository_mock.go -package=domain

// PlantRepository is the engine's view of the external plant store.
// The engine never creates or deletes plants; SavePlant exists for the
// store implementation itself (seeding, hydration).
type PlantRepository interface {
	GetPlant(ctx context.Context, id string) (*Plant, error)
	ListPlants(ctx context.Context) ([]Plant, error)
	SavePlant(ctx context.Context, plant *Plant) error
	UpdateLastWatered(ctx context.Context, id string, wateredAt time.Time) error
	SetNotificationsEnabled(ctx context.Context, id string, enabled bool) error
	SetReminderIDs(ctx context.Context, id string, reminderIDs []string) error
}

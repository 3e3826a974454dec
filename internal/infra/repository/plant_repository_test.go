package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stroma-app/care-engine/internal/domain"
	"github.com/stroma-app/care-engine/internal/testutil"
)

func TestPlantRepositoryRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewPlantRepository(client)

	watered := time.Date(2025, time.November, 1, 12, 0, 0, 0, time.UTC)
	plant := &domain.Plant{
		ID:                   "plant-1",
		Name:                 "Monty",
		Species:              domain.SpeciesMonstera,
		Room:                 "living room",
		CreatedAt:            watered.AddDate(0, -1, 0),
		LastWatered:          watered,
		NotificationsEnabled: true,
		ReminderIDs:          []string{"r-1", "r-2"},
	}

	if err := repo.SavePlant(ctx, plant); err != nil {
		t.Fatalf("failed to save plant: %v", err)
	}

	got, err := repo.GetPlant(ctx, "plant-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != plant.Name || got.Species != plant.Species || got.Room != plant.Room {
		t.Errorf("got %+v, want %+v", got, plant)
	}
	if !got.LastWatered.Equal(plant.LastWatered) {
		t.Errorf("last watered: got %v, want %v", got.LastWatered, plant.LastWatered)
	}
	if len(got.ReminderIDs) != 2 {
		t.Errorf("reminder ids: got %v", got.ReminderIDs)
	}
}

func TestGetPlantNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewPlantRepository(client)

	_, err := repo.GetPlant(ctx, "missing")
	if !errors.Is(err, domain.ErrPlantNotFound) {
		t.Fatalf("got %v, want ErrPlantNotFound", err)
	}
}

func TestListPlants(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewPlantRepository(client)

	plants, err := repo.ListPlants(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plants) != 0 {
		t.Fatalf("expected empty store, got %d plants", len(plants))
	}

	for _, p := range []*domain.Plant{
		{ID: "plant-1", Name: "Monty", Species: domain.SpeciesMonstera},
		{ID: "plant-2", Name: "Snakey", Species: domain.SpeciesSnakePlant},
	} {
		if err := repo.SavePlant(ctx, p); err != nil {
			t.Fatalf("failed to save plant %s: %v", p.ID, err)
		}
	}

	plants, err = repo.ListPlants(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plants) != 2 {
		t.Fatalf("got %d plants, want 2", len(plants))
	}
}

func TestPlantFieldUpdates(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewPlantRepository(client)

	plant := &domain.Plant{ID: "plant-1", Name: "Monty", Species: domain.SpeciesMonstera}
	if err := repo.SavePlant(ctx, plant); err != nil {
		t.Fatalf("failed to save plant: %v", err)
	}

	wateredAt := time.Date(2025, time.December, 3, 12, 0, 0, 0, time.UTC)
	if err := repo.UpdateLastWatered(ctx, "plant-1", wateredAt); err != nil {
		t.Fatalf("failed to update last watered: %v", err)
	}
	if err := repo.SetNotificationsEnabled(ctx, "plant-1", true); err != nil {
		t.Fatalf("failed to set notifications enabled: %v", err)
	}
	if err := repo.SetReminderIDs(ctx, "plant-1", []string{"r-1"}); err != nil {
		t.Fatalf("failed to set reminder ids: %v", err)
	}

	got, err := repo.GetPlant(ctx, "plant-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.LastWatered.Equal(wateredAt) {
		t.Errorf("last watered: got %v, want %v", got.LastWatered, wateredAt)
	}
	if !got.NotificationsEnabled {
		t.Error("notifications should be enabled")
	}
	if len(got.ReminderIDs) != 1 || got.ReminderIDs[0] != "r-1" {
		t.Errorf("reminder ids: got %v, want [r-1]", got.ReminderIDs)
	}

	// Updates against unknown plants surface not-found.
	if err := repo.UpdateLastWatered(ctx, "missing", wateredAt); !errors.Is(err, domain.ErrPlantNotFound) {
		t.Errorf("got %v, want ErrPlantNotFound", err)
	}
}

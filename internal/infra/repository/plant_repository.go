package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stroma-app/care-engine/internal/domain"
)

const (
	plantKeyPrefix = "care:plant:"
	plantIndexKey  = "care:plants"
)

type plantRecord struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Species              string    `json:"species"`
	Room                 string    `json:"room,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	LastWatered          time.Time `json:"last_watered,omitzero"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	ReminderIDs          []string  `json:"reminder_ids"`
}

type plantRepository struct {
	client *redis.Client
}

func NewPlantRepository(client *redis.Client) domain.PlantRepository {
	return &plantRepository{
		client: client,
	}
}

func (r *plantRepository) GetPlant(ctx context.Context, id string) (*domain.Plant, error) {
	data, err := r.client.Get(ctx, plantKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrPlantNotFound
		}
		return nil, err
	}

	var record plantRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidPlantData
	}

	plant := record.toDomain()
	return &plant, nil
}

func (r *plantRepository) ListPlants(ctx context.Context) ([]domain.Plant, error) {
	ids, err := r.client.SMembers(ctx, plantIndexKey).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = plantKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	plants := make([]domain.Plant, 0, len(values))
	for _, value := range values {
		// Index entries without a backing record are stale; skip them.
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var record plantRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, ErrInvalidPlantData
		}
		plants = append(plants, record.toDomain())
	}

	return plants, nil
}

func (r *plantRepository) SavePlant(ctx context.Context, plant *domain.Plant) error {
	if plant == nil || plant.ID == "" {
		return ErrInvalidPlantData
	}

	record := recordFromDomain(plant)
	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidPlantData
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, plantKeyPrefix+plant.ID, data, 0)
	pipe.SAdd(ctx, plantIndexKey, plant.ID)

	_, err = pipe.Exec(ctx)
	return err
}

func (r *plantRepository) UpdateLastWatered(ctx context.Context, id string, wateredAt time.Time) error {
	return r.mutate(ctx, id, func(record *plantRecord) {
		record.LastWatered = wateredAt
	})
}

func (r *plantRepository) SetNotificationsEnabled(ctx context.Context, id string, enabled bool) error {
	return r.mutate(ctx, id, func(record *plantRecord) {
		record.NotificationsEnabled = enabled
	})
}

func (r *plantRepository) SetReminderIDs(ctx context.Context, id string, reminderIDs []string) error {
	return r.mutate(ctx, id, func(record *plantRecord) {
		record.ReminderIDs = reminderIDs
	})
}

func (r *plantRepository) mutate(ctx context.Context, id string, apply func(*plantRecord)) error {
	data, err := r.client.Get(ctx, plantKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.ErrPlantNotFound
		}
		return err
	}

	var record plantRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return ErrInvalidPlantData
	}

	apply(&record)

	updated, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidPlantData
	}

	return r.client.Set(ctx, plantKeyPrefix+id, updated, 0).Err()
}

func (record plantRecord) toDomain() domain.Plant {
	return domain.Plant{
		ID:                   record.ID,
		Name:                 record.Name,
		Species:              domain.Species(record.Species),
		Room:                 record.Room,
		CreatedAt:            record.CreatedAt,
		LastWatered:          record.LastWatered,
		NotificationsEnabled: record.NotificationsEnabled,
		ReminderIDs:          record.ReminderIDs,
	}
}

func recordFromDomain(plant *domain.Plant) plantRecord {
	return plantRecord{
		ID:                   plant.ID,
		Name:                 plant.Name,
		Species:              string(plant.Species),
		Room:                 plant.Room,
		CreatedAt:            plant.CreatedAt,
		LastWatered:          plant.LastWatered,
		NotificationsEnabled: plant.NotificationsEnabled,
		ReminderIDs:          plant.ReminderIDs,
	}
}

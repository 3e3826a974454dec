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
	reminderKeyPrefix      = "care:reminder:"
	plantRemindersPrefix   = "care:plant_reminders:"
	reminderTimeSettingKey = "care:settings:reminder_time"
)

type reminderRecord struct {
	ID        string    `json:"id"`
	PlantID   string    `json:"plant_id"`
	FiresAt   time.Time `json:"fires_at"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type reminderRecordRepository struct {
	client *redis.Client
}

func NewReminderRecordRepository(client *redis.Client) domain.ReminderRecordRepository {
	return &reminderRecordRepository{
		client: client,
	}
}

// SaveRecords writes all records and their per-plant index entries in a
// single transaction so a plant's plan is never half-persisted.
func (r *reminderRecordRepository) SaveRecords(ctx context.Context, records []domain.ReminderRecord) error {
	if len(records) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	for _, record := range records {
		if record.ID == "" || record.PlantID == "" {
			return ErrInvalidReminderData
		}

		data, err := json.Marshal(reminderRecord{
			ID:        record.ID,
			PlantID:   record.PlantID,
			FiresAt:   record.FiresAt,
			Kind:      record.Kind.String(),
			Title:     record.Title,
			Body:      record.Body,
			CreatedAt: record.CreatedAt,
		})
		if err != nil {
			return ErrInvalidReminderData
		}

		pipe.Set(ctx, reminderKeyPrefix+record.ID, data, 0)
		pipe.SAdd(ctx, plantRemindersPrefix+record.PlantID, record.ID)
	}

	_, err := pipe.Exec(ctx)
	return err
}

func (r *reminderRecordRepository) ListByPlant(ctx context.Context, plantID string) ([]domain.ReminderRecord, error) {
	ids, err := r.client.SMembers(ctx, plantRemindersPrefix+plantID).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = reminderKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	records := make([]domain.ReminderRecord, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var record reminderRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, ErrInvalidReminderData
		}

		records = append(records, domain.ReminderRecord{
			ID:        record.ID,
			PlantID:   record.PlantID,
			FiresAt:   record.FiresAt,
			Kind:      domain.ReminderKind(record.Kind),
			Title:     record.Title,
			Body:      record.Body,
			CreatedAt: record.CreatedAt,
		})
	}

	return records, nil
}

func (r *reminderRecordRepository) DeleteByPlant(ctx context.Context, plantID string) error {
	indexKey := plantRemindersPrefix + plantID

	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, reminderKeyPrefix+id)
	}
	pipe.Del(ctx, indexKey)

	_, err = pipe.Exec(ctx)
	return err
}

type settingsRepository struct {
	client *redis.Client
}

func NewSettingsRepository(client *redis.Client) domain.SettingsRepository {
	return &settingsRepository{
		client: client,
	}
}

// GetReminderTime returns the stored global reminder time, falling back to
// the default when no preference has been set yet.
func (r *settingsRepository) GetReminderTime(ctx context.Context) (domain.TimeOfDay, error) {
	value, err := r.client.Get(ctx, reminderTimeSettingKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.DefaultReminderTime, nil
		}
		return domain.TimeOfDay{}, err
	}

	t, err := domain.ParseTimeOfDay(value)
	if err != nil {
		return domain.TimeOfDay{}, ErrInvalidSettingsData
	}
	return t, nil
}

func (r *settingsRepository) SetReminderTime(ctx context.Context, t domain.TimeOfDay) error {
	return r.client.Set(ctx, reminderTimeSettingKey, t.String(), 0).Err()
}

package domain

import (
	"time"
)

// ReminderKind classifies a reminder within a plant's watering plan.
// At most one active ReminderRecord exists per (plant, kind) at a time.
type ReminderKind string

const (
	KindInitialBeforeWindow ReminderKind = "initial-before-window"
	KindInitialWithinWindow ReminderKind = "initial-within-window"
	KindOverdueDay1         ReminderKind = "overdue-day-1"
	KindOverdueDay2         ReminderKind = "overdue-day-2"
)

func (k ReminderKind) String() string {
	return string(k)
}

// ReminderRecord is the durable mapping between a locally known reminder and
// the opaque id assigned by the external notification scheduler.
type ReminderRecord struct {
	ID        string       `json:"id"`
	PlantID   string       `json:"plant_id"`
	FiresAt   time.Time    `json:"fires_at"`
	Kind      ReminderKind `json:"kind"`
	Title     string       `json:"title"`
	Body      string       `json:"body"`
	CreatedAt time.Time    `json:"created_at"`
}

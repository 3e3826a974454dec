package domain

import (
	"time"
)

type Plant struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Species              Species   `json:"species"`
	Room                 string    `json:"room,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	LastWatered          time.Time `json:"last_watered,omitzero"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	ReminderIDs          []string  `json:"reminder_ids"`
}

// HasWateringHistory reports whether the plant has ever been watered.
// A zero LastWatered means no watering window can be computed for it.
func (p *Plant) HasWateringHistory() bool {
	return !p.LastWatered.IsZero()
}

func (p *Plant) HasActiveReminders() bool {
	return len(p.ReminderIDs) > 0
}

package scheduler

import "time"

type Notification struct {
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	FiresAt  time.Time         `json:"fires_at"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type scheduleResponse struct {
	ID           string    `json:"id"`
	ScheduledFor time.Time `json:"scheduled_for"`
}

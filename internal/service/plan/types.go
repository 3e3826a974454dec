package plan

import (
	"time"

	"github.com/stroma-app/care-engine/internal/domain"
)

// Entry is a single reminder to be submitted to the notification scheduler.
type Entry struct {
	Kind    domain.ReminderKind
	FiresAt time.Time
	Title   string
	Body    string
}

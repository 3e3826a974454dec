package urgency

import (
	"fmt"
	"time"

	"github.com/stroma-app/care-engine/internal/domain"
)

// Kind classifies today's relationship to a watering window. The three kinds
// are mutually exclusive and cover every instant.
type Kind string

const (
	KindOverdue  Kind = "overdue"
	KindDueToday Kind = "due-today"
	KindUpcoming Kind = "upcoming"
)

func (k Kind) String() string {
	return string(k)
}

// Status is the derived urgency of a plant's watering window: a kind, the
// whole-day magnitude, and ready-to-render copy.
type Status struct {
	Kind Kind   `json:"kind"`
	Days int    `json:"days"`
	Text string `json:"text"`
}

func (s Status) IsOverdue() bool {
	return s.Kind == KindOverdue
}

// Classify compares today against the window at calendar-day granularity.
// Equality with max is still due-today; overdue requires strictly passing max.
func Classify(window domain.WateringWindow, today time.Time) Status {
	day := domain.StartOfDay(today)
	minDay := domain.StartOfDay(window.Min)
	maxDay := domain.StartOfDay(window.Max)

	if day.After(maxDay) {
		days := domain.DaysBetween(maxDay, day)
		return Status{
			Kind: KindOverdue,
			Days: days,
			Text: fmt.Sprintf("%d %s overdue", days, pluralDays(days)),
		}
	}

	if day.Before(minDay) {
		days := domain.DaysBetween(day, minDay)
		return Status{
			Kind: KindUpcoming,
			Days: days,
			Text: fmt.Sprintf("in %d %s", days, pluralDays(days)),
		}
	}

	return Status{
		Kind: KindDueToday,
		Text: "today",
	}
}

func pluralDays(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}

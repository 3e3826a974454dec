package domain

import (
	"time"
)

// WateringWindow is the [Min, Max] range in which a plant should ideally be
// watered next. Derived and ephemeral; recomputed on every query.
// Invariant: Min <= Max, both after the last-watered instant.
type WateringWindow struct {
	Min time.Time `json:"min"`
	Max time.Time `json:"max"`
}

// Contains reports whether the given day falls within the window,
// inclusive on both ends, compared at calendar-day granularity.
func (w WateringWindow) Contains(day time.Time) bool {
	d := StartOfDay(day)
	return !d.Before(StartOfDay(w.Min)) && !d.After(StartOfDay(w.Max))
}

package domain

import (
	"math"
	"time"
)

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AtNoon returns t's calendar day at 12:00 local time. Watering logs are
// stamped at noon so day-granularity math is stable across DST transitions.
func AtNoon(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of whole calendar days from `from` to `to`.
// Negative when `to` precedes `from`. Rounding absorbs the one-hour drift of
// DST boundaries.
func DaysBetween(from, to time.Time) int {
	diff := StartOfDay(to).Sub(StartOfDay(from))
	return int(math.Round(diff.Hours() / 24))
}

// SameDay reports whether both instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

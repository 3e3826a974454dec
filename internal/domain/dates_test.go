package domain

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	base := time.Date(2025, time.December, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{
			name:     "same day",
			from:     base,
			to:       base.Add(5 * time.Hour),
			expected: 0,
		},
		{
			name:     "next day ignores time of day",
			from:     base,
			to:       time.Date(2025, time.December, 2, 0, 30, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "week apart",
			from:     base,
			to:       base.AddDate(0, 0, 7),
			expected: 7,
		},
		{
			name:     "negative when to precedes from",
			from:     base,
			to:       base.AddDate(0, 0, -3),
			expected: -3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.from, tt.to); got != tt.expected {
				t.Errorf("got %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestDaysBetweenAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}

	// The 23-hour spring-forward day must still count as one calendar day.
	before := time.Date(2025, time.March, 8, 12, 0, 0, 0, loc)
	after := time.Date(2025, time.March, 9, 12, 0, 0, 0, loc)

	if got := DaysBetween(before, after); got != 1 {
		t.Errorf("got %d days across spring forward, want 1", got)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, time.December, 3, 0, 1, 0, 0, time.UTC)
	b := time.Date(2025, time.December, 3, 23, 59, 0, 0, time.UTC)
	c := time.Date(2025, time.December, 4, 0, 0, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Error("expected same day")
	}
	if SameDay(b, c) {
		t.Error("expected different days")
	}
}

func TestAtNoon(t *testing.T) {
	in := time.Date(2025, time.December, 3, 22, 45, 12, 0, time.UTC)
	got := AtNoon(in)

	want := time.Date(2025, time.December, 3, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWateringWindowContains(t *testing.T) {
	window := WateringWindow{
		Min: time.Date(2025, time.December, 5, 12, 0, 0, 0, time.UTC),
		Max: time.Date(2025, time.December, 8, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		day      time.Time
		expected bool
	}{
		{"day before min", time.Date(2025, time.December, 4, 23, 0, 0, 0, time.UTC), false},
		{"min day early morning", time.Date(2025, time.December, 5, 1, 0, 0, 0, time.UTC), true},
		{"inside window", time.Date(2025, time.December, 6, 12, 0, 0, 0, time.UTC), true},
		{"max day late evening", time.Date(2025, time.December, 8, 23, 59, 0, 0, time.UTC), true},
		{"day after max", time.Date(2025, time.December, 9, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := window.Contains(tt.day); got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

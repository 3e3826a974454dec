package urgency

import (
	"testing"
	"time"

	"github.com/stroma-app/care-engine/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2025, time.November, d, 12, 0, 0, 0, time.Local)
}

func TestClassify(t *testing.T) {
	// Monstera watered 2025-11-01, in season: window 11-08 .. 11-11
	window := domain.WateringWindow{Min: day(8), Max: day(11)}

	tests := []struct {
		name     string
		today    time.Time
		wantKind Kind
		wantDays int
		wantText string
	}{
		{
			name:     "well before min is upcoming",
			today:    day(2),
			wantKind: KindUpcoming,
			wantDays: 6,
			wantText: "in 6 days",
		},
		{
			name:     "day before min is upcoming singular",
			today:    day(7),
			wantKind: KindUpcoming,
			wantDays: 1,
			wantText: "in 1 day",
		},
		{
			name:     "on min is due today",
			today:    day(8),
			wantKind: KindDueToday,
			wantText: "today",
		},
		{
			name:     "strictly inside window is due today",
			today:    day(9),
			wantKind: KindDueToday,
			wantText: "today",
		},
		{
			name:     "on max is still due today, not overdue",
			today:    day(11),
			wantKind: KindDueToday,
			wantText: "today",
		},
		{
			name:     "one day past max is overdue by 1",
			today:    day(12),
			wantKind: KindOverdue,
			wantDays: 1,
			wantText: "1 day overdue",
		},
		{
			name:     "two days past max is overdue by 2",
			today:    day(13),
			wantKind: KindOverdue,
			wantDays: 2,
			wantText: "2 days overdue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(window, tt.today)

			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Days != tt.wantDays {
				t.Errorf("Days = %d, want %d", got.Days, tt.wantDays)
			}
			if got.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", got.Text, tt.wantText)
			}
		})
	}
}

// Totality: exactly one kind holds for every day around the window.
func TestClassify_Exclusivity(t *testing.T) {
	window := domain.WateringWindow{Min: day(8), Max: day(11)}

	for d := 1; d <= 20; d++ {
		status := Classify(window, day(d))

		switch status.Kind {
		case KindUpcoming:
			if d >= 8 {
				t.Errorf("day %d classified upcoming", d)
			}
		case KindDueToday:
			if d < 8 || d > 11 {
				t.Errorf("day %d classified due-today", d)
			}
		case KindOverdue:
			if d <= 11 {
				t.Errorf("day %d classified overdue", d)
			}
		default:
			t.Errorf("day %d: unknown kind %q", d, status.Kind)
		}
	}
}

func TestClassify_TimeOfDayIrrelevant(t *testing.T) {
	window := domain.WateringWindow{Min: day(8), Max: day(11)}

	// 23:59 on max day is still due-today regardless of the window's noon stamp.
	lateOnMax := time.Date(2025, time.November, 11, 23, 59, 0, 0, time.Local)
	if got := Classify(window, lateOnMax); got.Kind != KindDueToday {
		t.Errorf("Kind = %v, want due-today", got.Kind)
	}

	earlyPastMax := time.Date(2025, time.November, 12, 0, 1, 0, 0, time.Local)
	got := Classify(window, earlyPastMax)
	if got.Kind != KindOverdue || got.Days != 1 {
		t.Errorf("got %+v, want overdue by 1", got)
	}
}

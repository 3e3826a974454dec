package plan

import (
	"testing"
	"time"

	"github.com/stroma-app/care-engine/internal/domain"
)

var nineAM = domain.TimeOfDay{Hour: 9, Minute: 0}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.Local)
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.Local)
}

func TestGenerate_WindowInFuture(t *testing.T) {
	// Window 2025-12-05 .. 2025-12-08, now 2025-11-28 (7 days until min).
	window := domain.WateringWindow{
		Min: date(2025, time.December, 5),
		Max: date(2025, time.December, 8),
	}
	now := date(2025, time.November, 28)

	entries := Generate("Fern", window, now, nineAM)

	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	first := entries[0]
	if first.Kind != domain.KindInitialBeforeWindow {
		t.Errorf("entry 0 kind = %v, want initial-before-window", first.Kind)
	}
	// Min is >= 2 days away, so the heads-up fires the day before min.
	if want := at(2025, time.December, 4, 9, 0); !first.FiresAt.Equal(want) {
		t.Errorf("entry 0 fires at %v, want %v", first.FiresAt, want)
	}
	if first.Title != "Fern is thirsty!" {
		t.Errorf("entry 0 title = %q", first.Title)
	}
	if first.Body != "Reminder to water before Dec 8th" {
		t.Errorf("entry 0 body = %q", first.Body)
	}

	if entries[1].Kind != domain.KindOverdueDay1 {
		t.Errorf("entry 1 kind = %v, want overdue-day-1", entries[1].Kind)
	}
	if want := at(2025, time.December, 9, 9, 0); !entries[1].FiresAt.Equal(want) {
		t.Errorf("entry 1 fires at %v, want %v", entries[1].FiresAt, want)
	}
	if entries[1].Title != "Fern is 1 day overdue" {
		t.Errorf("entry 1 title = %q", entries[1].Title)
	}

	if entries[2].Kind != domain.KindOverdueDay2 {
		t.Errorf("entry 2 kind = %v, want overdue-day-2", entries[2].Kind)
	}
	if want := at(2025, time.December, 10, 9, 0); !entries[2].FiresAt.Equal(want) {
		t.Errorf("entry 2 fires at %v, want %v", entries[2].FiresAt, want)
	}
	if entries[2].Body != "Final reminder to water ASAP" {
		t.Errorf("entry 2 body = %q", entries[2].Body)
	}
}

func TestGenerate_WindowTomorrowFiresOnMin(t *testing.T) {
	// Min is exactly 1 day away: the heads-up fires on min itself.
	window := domain.WateringWindow{
		Min: date(2025, time.December, 5),
		Max: date(2025, time.December, 8),
	}
	now := date(2025, time.December, 4)

	entries := Generate("Fern", window, now, nineAM)

	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if want := at(2025, time.December, 5, 9, 0); !entries[0].FiresAt.Equal(want) {
		t.Errorf("entry 0 fires at %v, want %v", entries[0].FiresAt, want)
	}
}

func TestGenerate_TodayWithinWindow(t *testing.T) {
	window := domain.WateringWindow{
		Min: date(2025, time.December, 5),
		Max: date(2025, time.December, 8),
	}
	now := date(2025, time.December, 6)

	entries := Generate("Ivy", window, now, nineAM)

	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	if entries[0].Kind != domain.KindInitialWithinWindow {
		t.Errorf("entry 0 kind = %v, want initial-within-window", entries[0].Kind)
	}
	// Fires tomorrow.
	if want := at(2025, time.December, 7, 9, 0); !entries[0].FiresAt.Equal(want) {
		t.Errorf("entry 0 fires at %v, want %v", entries[0].FiresAt, want)
	}
	if entries[1].Kind != domain.KindOverdueDay1 || entries[2].Kind != domain.KindOverdueDay2 {
		t.Errorf("follow-up kinds = %v, %v", entries[1].Kind, entries[2].Kind)
	}
}

func TestGenerate_TodayIsMaxSkipsInitial(t *testing.T) {
	// Today equals max: the "tomorrow" reminder would collide with
	// overdue-day-1, so it is dropped.
	window := domain.WateringWindow{
		Min: date(2025, time.December, 5),
		Max: date(2025, time.December, 8),
	}
	now := date(2025, time.December, 8)

	entries := Generate("Ivy", window, now, nineAM)

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Kind != domain.KindOverdueDay1 {
		t.Errorf("entry 0 kind = %v, want overdue-day-1", entries[0].Kind)
	}
	if want := at(2025, time.December, 9, 9, 0); !entries[0].FiresAt.Equal(want) {
		t.Errorf("entry 0 fires at %v, want %v", entries[0].FiresAt, want)
	}
	if entries[1].Kind != domain.KindOverdueDay2 {
		t.Errorf("entry 1 kind = %v, want overdue-day-2", entries[1].Kind)
	}
}

func TestGenerate_AlreadyOverdue(t *testing.T) {
	// Max was 2025-12-08, now is 12-11: tomorrow is 4 days past max.
	window := domain.WateringWindow{
		Min: date(2025, time.December, 5),
		Max: date(2025, time.December, 8),
	}
	now := date(2025, time.December, 11)

	entries := Generate("Aloe", window, now, nineAM)

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	if entries[0].Kind != domain.KindOverdueDay1 {
		t.Errorf("entry 0 kind = %v, want overdue-day-1", entries[0].Kind)
	}
	if want := at(2025, time.December, 12, 9, 0); !entries[0].FiresAt.Equal(want) {
		t.Errorf("entry 0 fires at %v, want %v", entries[0].FiresAt, want)
	}
	if entries[0].Title != "Aloe is 4 days overdue" {
		t.Errorf("entry 0 title = %q, want overdue count as of tomorrow", entries[0].Title)
	}

	if want := at(2025, time.December, 13, 9, 0); !entries[1].FiresAt.Equal(want) {
		t.Errorf("entry 1 fires at %v, want %v", entries[1].FiresAt, want)
	}
	if entries[1].Title != "Aloe is 5 days overdue" {
		t.Errorf("entry 1 title = %q, want overdue count as of the day after", entries[1].Title)
	}
	if entries[1].Body != "Final reminder to water ASAP" {
		t.Errorf("entry 1 body = %q", entries[1].Body)
	}
}

func TestGenerate_ReminderTimeStamping(t *testing.T) {
	window := domain.WateringWindow{
		Min: date(2025, time.December, 5),
		Max: date(2025, time.December, 8),
	}
	now := date(2025, time.November, 28)
	evening := domain.TimeOfDay{Hour: 18, Minute: 30}

	for _, entry := range Generate("Fig", window, now, evening) {
		if entry.FiresAt.Hour() != 18 || entry.FiresAt.Minute() != 30 {
			t.Errorf("%s fires at %v, want 18:30 time of day", entry.Kind, entry.FiresAt)
		}
	}
}

func TestFormatMonthDay(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, "Dec 1st"},
		{2, "Dec 2nd"},
		{3, "Dec 3rd"},
		{4, "Dec 4th"},
		{11, "Dec 11th"},
		{12, "Dec 12th"},
		{13, "Dec 13th"},
		{21, "Dec 21st"},
		{22, "Dec 22nd"},
		{23, "Dec 23rd"},
		{31, "Dec 31st"},
	}

	for _, tt := range tests {
		got := formatMonthDay(date(2025, time.December, tt.day))
		if got != tt.want {
			t.Errorf("formatMonthDay(day %d) = %q, want %q", tt.day, got, tt.want)
		}
	}
}

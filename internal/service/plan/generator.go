package plan

import (
	"fmt"
	"time"

	"github.com/stroma-app/care-engine/internal/domain"
)

// Generate derives the deterministic reminder plan for a watering window.
// Every FiresAt is stamped to the global reminder time of day on its computed
// calendar date. Pure: no I/O, no clock reads, no side effects.
//
// Three disjoint cases on today's relationship to the window:
//   - before the window: a heads-up reminder plus two overdue follow-ups
//   - inside the window: a tomorrow reminder (unless today is the max date,
//     which would collide with the first overdue follow-up) plus the two
//     follow-ups
//   - past the window: two escalating overdue reminders, counted from the
//     day each one fires
func Generate(plantName string, window domain.WateringWindow, now time.Time, reminderTime domain.TimeOfDay) []Entry {
	today := domain.StartOfDay(now)
	minDay := domain.StartOfDay(window.Min)
	maxDay := domain.StartOfDay(window.Max)

	deadline := formatMonthDay(maxDay)
	thirstyTitle := fmt.Sprintf("%s is thirsty!", plantName)

	switch {
	case today.Before(minDay):
		// First reminder fires the day before min when min is at least two
		// days away, otherwise on min itself.
		firstDay := minDay
		if domain.DaysBetween(today, minDay) >= 2 {
			firstDay = minDay.AddDate(0, 0, -1)
		}

		return []Entry{
			{
				Kind:    domain.KindInitialBeforeWindow,
				FiresAt: reminderTime.On(firstDay),
				Title:   thirstyTitle,
				Body:    fmt.Sprintf("Reminder to water before %s", deadline),
			},
			overdueDay1(plantName, reminderTime.On(maxDay.AddDate(0, 0, 1))),
			overdueDay2(plantName, reminderTime.On(maxDay.AddDate(0, 0, 2))),
		}

	case !today.After(maxDay):
		entries := make([]Entry, 0, 3)

		if !today.Equal(maxDay) {
			entries = append(entries, Entry{
				Kind:    domain.KindInitialWithinWindow,
				FiresAt: reminderTime.On(today.AddDate(0, 0, 1)),
				Title:   thirstyTitle,
				Body:    fmt.Sprintf("Reminder to water before %s", deadline),
			})
		}

		entries = append(entries,
			overdueDay1(plantName, reminderTime.On(maxDay.AddDate(0, 0, 1))),
			overdueDay2(plantName, reminderTime.On(maxDay.AddDate(0, 0, 2))),
		)
		return entries

	default:
		// Already overdue: each reminder's title carries the overdue count as
		// of the day it fires, not a fixed "1" or "2".
		tomorrow := today.AddDate(0, 0, 1)
		dayAfter := today.AddDate(0, 0, 2)

		return []Entry{
			{
				Kind:    domain.KindOverdueDay1,
				FiresAt: reminderTime.On(tomorrow),
				Title:   fmt.Sprintf("%s is %d days overdue", plantName, domain.DaysBetween(maxDay, tomorrow)),
				Body:    "Reminder to water ASAP",
			},
			{
				Kind:    domain.KindOverdueDay2,
				FiresAt: reminderTime.On(dayAfter),
				Title:   fmt.Sprintf("%s is %d days overdue", plantName, domain.DaysBetween(maxDay, dayAfter)),
				Body:    "Final reminder to water ASAP",
			},
		}
	}
}

func overdueDay1(plantName string, firesAt time.Time) Entry {
	return Entry{
		Kind:    domain.KindOverdueDay1,
		FiresAt: firesAt,
		Title:   fmt.Sprintf("%s is 1 day overdue", plantName),
		Body:    "Reminder to water ASAP",
	}
}

func overdueDay2(plantName string, firesAt time.Time) Entry {
	return Entry{
		Kind:    domain.KindOverdueDay2,
		FiresAt: firesAt,
		Title:   fmt.Sprintf("%s is 2 days overdue", plantName),
		Body:    "Final reminder to water ASAP",
	}
}

// formatMonthDay renders a date as e.g. "Dec 8th".
func formatMonthDay(t time.Time) string {
	return fmt.Sprintf("%s %d%s", t.Format("Jan"), t.Day(), ordinalSuffix(t.Day()))
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

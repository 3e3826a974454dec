package bucket

import (
	"sort"
	"time"

	"github.com/stroma-app/care-engine/internal/domain"
	"github.com/stroma-app/care-engine/internal/service/urgency"
	"github.com/stroma-app/care-engine/internal/service/window"
)

// Entry is a plant enriched with its derived watering data for display.
type Entry struct {
	Plant     domain.Plant
	Window    domain.WateringWindow
	Status    urgency.Status
	IsOverdue bool
}

// Buckets partitions plants by how soon their watering window opens.
// A plant appears in at most one bucket; plants due more than 30 days out
// appear in none.
type Buckets struct {
	Today     []Entry
	ThisWeek  []Entry
	NextWeek  []Entry
	ThisMonth []Entry
}

type Partitioner struct {
	windows *window.Calculator
}

func NewPartitioner(windows *window.Calculator) *Partitioner {
	return &Partitioner{
		windows: windows,
	}
}

// Partition computes each plant's window and assigns it to a display bucket.
// Plants that were never watered are silently excluded: there is nothing to
// schedule against. An unknown species surfaces as an error, since it means
// the plant data itself is broken.
func (p *Partitioner) Partition(plants []domain.Plant, now time.Time) (*Buckets, error) {
	buckets := &Buckets{}
	today := domain.StartOfDay(now)

	for _, plant := range plants {
		if !plant.HasWateringHistory() {
			continue
		}

		w, err := p.windows.Compute(&plant, now)
		if err != nil {
			return nil, err
		}

		status := urgency.Classify(w, now)
		entry := Entry{
			Plant:     plant,
			Window:    w,
			Status:    status,
			IsOverdue: status.IsOverdue(),
		}

		daysUntilMin := domain.DaysBetween(today, domain.StartOfDay(w.Min))

		switch {
		case domain.SameDay(w.Min, today) || w.Contains(today) || entry.IsOverdue:
			buckets.Today = append(buckets.Today, entry)
		case daysUntilMin > 0 && daysUntilMin <= 7:
			buckets.ThisWeek = append(buckets.ThisWeek, entry)
		case daysUntilMin > 7 && daysUntilMin <= 14:
			buckets.NextWeek = append(buckets.NextWeek, entry)
		case daysUntilMin > 14 && daysUntilMin <= 30:
			buckets.ThisMonth = append(buckets.ThisMonth, entry)
		}
	}

	// Today: overdue entries first, then ascending min date.
	sort.SliceStable(buckets.Today, func(i, j int) bool {
		a, b := buckets.Today[i], buckets.Today[j]
		if a.IsOverdue != b.IsOverdue {
			return a.IsOverdue
		}
		return a.Window.Min.Before(b.Window.Min)
	})

	sortByMin(buckets.ThisWeek)
	sortByMin(buckets.NextWeek)
	sortByMin(buckets.ThisMonth)

	return buckets, nil
}

func sortByMin(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Window.Min.Before(entries[j].Window.Min)
	})
}

func (b *Buckets) OverdueCount() int {
	count := 0
	for _, entry := range b.Today {
		if entry.IsOverdue {
			count++
		}
	}
	return count
}

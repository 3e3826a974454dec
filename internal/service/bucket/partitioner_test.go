package bucket

import (
	"errors"
	"testing"
	"time"

	"github.com/stroma-app/care-engine/internal/domain"
	"github.com/stroma-app/care-engine/internal/service/season"
	"github.com/stroma-app/care-engine/internal/service/window"
)

// Out-of-season fixture date so snake plants carry a wide 28-42 day interval,
// letting lastWatered offsets reach every bucket boundary.
var testNow = time.Date(2025, time.December, 15, 10, 0, 0, 0, time.Local)

func newTestPartitioner() *Partitioner {
	return NewPartitioner(window.NewCalculator(season.NewClassifier()))
}

// snakePlantDueIn returns a snake plant whose window min opens `daysUntilMin`
// days from testNow (out-of-season range 28-42).
func snakePlantDueIn(id string, daysUntilMin int) domain.Plant {
	return domain.Plant{
		ID:          id,
		Name:        id,
		Species:     domain.SpeciesSnakePlant,
		LastWatered: testNow.AddDate(0, 0, daysUntilMin-28),
	}
}

func bucketOf(t *testing.T, buckets *Buckets, id string) string {
	t.Helper()

	found := ""
	check := func(name string, entries []Entry) {
		for _, e := range entries {
			if e.Plant.ID == id {
				if found != "" {
					t.Fatalf("plant %s in both %s and %s", id, found, name)
				}
				found = name
			}
		}
	}
	check("today", buckets.Today)
	check("thisWeek", buckets.ThisWeek)
	check("nextWeek", buckets.NextWeek)
	check("thisMonth", buckets.ThisMonth)
	return found
}

func TestPartition_BucketBoundaries(t *testing.T) {
	p := newTestPartitioner()

	tests := []struct {
		daysUntilMin int
		wantBucket   string
	}{
		{0, "today"},
		{1, "thisWeek"},
		{7, "thisWeek"},
		{8, "nextWeek"},
		{14, "nextWeek"},
		{15, "thisMonth"},
		{30, "thisMonth"},
		{31, ""},
		{-1, "today"}, // inside the window
	}

	for _, tt := range tests {
		plant := snakePlantDueIn("p", tt.daysUntilMin)

		buckets, err := p.Partition([]domain.Plant{plant}, testNow)
		if err != nil {
			t.Fatalf("daysUntilMin=%d: Partition() error = %v", tt.daysUntilMin, err)
		}

		if got := bucketOf(t, buckets, "p"); got != tt.wantBucket {
			t.Errorf("daysUntilMin=%d: bucket = %q, want %q", tt.daysUntilMin, got, tt.wantBucket)
		}
	}
}

func TestPartition_OverdueLandsInToday(t *testing.T) {
	p := newTestPartitioner()

	// Watered 45 days ago: window closed 3 days ago.
	plant := snakePlantDueIn("overdue", -17)

	buckets, err := p.Partition([]domain.Plant{plant}, testNow)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	if len(buckets.Today) != 1 {
		t.Fatalf("today bucket size = %d, want 1", len(buckets.Today))
	}
	if !buckets.Today[0].IsOverdue {
		t.Error("entry should be marked overdue")
	}
	if buckets.OverdueCount() != 1 {
		t.Errorf("OverdueCount() = %d, want 1", buckets.OverdueCount())
	}
}

func TestPartition_NeverWateredExcluded(t *testing.T) {
	p := newTestPartitioner()

	plants := []domain.Plant{
		{ID: "unwatered", Species: domain.SpeciesPothos},
		snakePlantDueIn("watered", 3),
	}

	buckets, err := p.Partition(plants, testNow)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	if got := bucketOf(t, buckets, "unwatered"); got != "" {
		t.Errorf("never-watered plant appeared in bucket %q", got)
	}
	if got := bucketOf(t, buckets, "watered"); got != "thisWeek" {
		t.Errorf("watered plant bucket = %q, want thisWeek", got)
	}
}

func TestPartition_UnknownSpeciesSurfaces(t *testing.T) {
	p := newTestPartitioner()

	plants := []domain.Plant{
		{ID: "bad", Species: domain.Species("triffid"), LastWatered: testNow.AddDate(0, 0, -5)},
	}

	_, err := p.Partition(plants, testNow)
	if !errors.Is(err, domain.ErrUnknownSpecies) {
		t.Errorf("Partition() error = %v, want ErrUnknownSpecies", err)
	}
}

func TestPartition_TodaySortsOverdueFirstThenMinAscending(t *testing.T) {
	p := newTestPartitioner()

	plants := []domain.Plant{
		snakePlantDueIn("due-late", 0),      // min today
		snakePlantDueIn("overdue-old", -20), // overdue 6 days
		snakePlantDueIn("due-early", -2),    // min two days ago, inside window
		snakePlantDueIn("overdue-new", -16), // overdue 2 days
	}

	buckets, err := p.Partition(plants, testNow)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	got := make([]string, 0, len(buckets.Today))
	for _, e := range buckets.Today {
		got = append(got, e.Plant.ID)
	}

	// Overdue first by ascending min, then non-overdue by ascending min.
	want := []string{"overdue-old", "overdue-new", "due-early", "due-late"}
	if len(got) != len(want) {
		t.Fatalf("today bucket = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("today bucket = %v, want %v", got, want)
		}
	}
}

func TestPartition_WeeklyBucketsSortByMinAscending(t *testing.T) {
	p := newTestPartitioner()

	plants := []domain.Plant{
		snakePlantDueIn("b", 5),
		snakePlantDueIn("a", 2),
		snakePlantDueIn("c", 7),
	}

	buckets, err := p.Partition(plants, testNow)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	want := []string{"a", "b", "c"}
	for i, e := range buckets.ThisWeek {
		if e.Plant.ID != want[i] {
			t.Fatalf("thisWeek order wrong at %d: got %s, want %s", i, e.Plant.ID, want[i])
		}
	}
}

func TestHeadline(t *testing.T) {
	overdue := Entry{IsOverdue: true}
	due := Entry{}

	tests := []struct {
		name    string
		buckets Buckets
		want    string
	}{
		{
			name:    "overdue takes priority",
			buckets: Buckets{Today: []Entry{overdue, overdue, due}, ThisWeek: []Entry{due}},
			want:    "2 plants overdue for watering",
		},
		{
			name:    "single overdue is singular",
			buckets: Buckets{Today: []Entry{overdue}},
			want:    "1 plant overdue for watering",
		},
		{
			name:    "today without overdue",
			buckets: Buckets{Today: []Entry{due}, ThisWeek: []Entry{due, due}},
			want:    "1 plant to water today",
		},
		{
			name:    "this week only",
			buckets: Buckets{ThisWeek: []Entry{due, due}},
			want:    "2 plants to water this week",
		},
		{
			name:    "fallback",
			buckets: Buckets{NextWeek: []Entry{due}},
			want:    "No plants to water this week",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Headline(&tt.buckets); got != tt.want {
				t.Errorf("Headline() = %q, want %q", got, tt.want)
			}
		})
	}
}

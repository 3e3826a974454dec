package window

import (
	"errors"
	"testing"
	"time"

	"github.com/stroma-app/care-engine/internal/domain"
	"github.com/stroma-app/care-engine/internal/service/season"
)

func newTestCalculator() *Calculator {
	return NewCalculator(season.NewClassifier())
}

func TestCalculator_Compute_InSeason(t *testing.T) {
	calc := newTestCalculator()

	lastWatered := time.Date(2025, time.November, 1, 12, 0, 0, 0, time.Local)
	now := time.Date(2025, time.November, 1, 15, 0, 0, 0, time.Local)

	plant := &domain.Plant{
		ID:          "plant-1",
		Species:     domain.SpeciesMonstera,
		LastWatered: lastWatered,
	}

	window, err := calc.Compute(plant, now)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	// Monstera in season: 7-10 days
	wantMin := time.Date(2025, time.November, 8, 12, 0, 0, 0, time.Local)
	wantMax := time.Date(2025, time.November, 11, 12, 0, 0, 0, time.Local)

	if !window.Min.Equal(wantMin) {
		t.Errorf("Min = %v, want %v", window.Min, wantMin)
	}
	if !window.Max.Equal(wantMax) {
		t.Errorf("Max = %v, want %v", window.Max, wantMax)
	}
}

func TestCalculator_Compute_OutOfSeason(t *testing.T) {
	calc := newTestCalculator()

	lastWatered := time.Date(2025, time.December, 10, 12, 0, 0, 0, time.Local)
	now := time.Date(2025, time.December, 12, 9, 0, 0, 0, time.Local)

	plant := &domain.Plant{
		ID:          "plant-1",
		Species:     domain.SpeciesMonstera,
		LastWatered: lastWatered,
	}

	window, err := calc.Compute(plant, now)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	// Monstera out of season: 14-21 days
	wantMin := time.Date(2025, time.December, 24, 12, 0, 0, 0, time.Local)
	wantMax := time.Date(2025, time.December, 31, 12, 0, 0, 0, time.Local)

	if !window.Min.Equal(wantMin) {
		t.Errorf("Min = %v, want %v", window.Min, wantMin)
	}
	if !window.Max.Equal(wantMax) {
		t.Errorf("Max = %v, want %v", window.Max, wantMax)
	}
}

func TestCalculator_Compute_MissingLastWatered(t *testing.T) {
	calc := newTestCalculator()

	plant := &domain.Plant{
		ID:      "plant-1",
		Species: domain.SpeciesPothos,
	}

	_, err := calc.Compute(plant, time.Now())
	if !errors.Is(err, domain.ErrMissingLastWatered) {
		t.Errorf("Compute() error = %v, want ErrMissingLastWatered", err)
	}
}

func TestCalculator_Compute_UnknownSpecies(t *testing.T) {
	calc := newTestCalculator()

	plant := &domain.Plant{
		ID:          "plant-1",
		Species:     domain.Species("triffid"),
		LastWatered: time.Now(),
	}

	_, err := calc.Compute(plant, time.Now())
	if !errors.Is(err, domain.ErrUnknownSpecies) {
		t.Errorf("Compute() error = %v, want ErrUnknownSpecies", err)
	}
}

// Window monotonicity: min <= max and both strictly after lastWatered,
// for every species in both seasons.
func TestCalculator_Compute_WindowMonotonicity(t *testing.T) {
	calc := newTestCalculator()

	lastWatered := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.Local)
	nows := map[string]time.Time{
		"in_season":     time.Date(2025, time.June, 2, 12, 0, 0, 0, time.Local),
		"out_of_season": time.Date(2025, time.December, 2, 12, 0, 0, 0, time.Local),
	}

	for name, now := range nows {
		t.Run(name, func(t *testing.T) {
			for _, species := range domain.KnownSpecies() {
				plant := &domain.Plant{
					ID:          "plant-1",
					Species:     species,
					LastWatered: lastWatered,
				}

				window, err := calc.Compute(plant, now)
				if err != nil {
					t.Fatalf("%s: Compute() error = %v", species, err)
				}

				if window.Min.After(window.Max) {
					t.Errorf("%s: min %v after max %v", species, window.Min, window.Max)
				}
				if !window.Min.After(lastWatered) {
					t.Errorf("%s: min %v not after lastWatered %v", species, window.Min, lastWatered)
				}
				if !window.Max.After(lastWatered) {
					t.Errorf("%s: max %v not after lastWatered %v", species, window.Max, lastWatered)
				}
			}
		})
	}
}

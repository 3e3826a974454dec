package window

import (
	"fmt"
	"time"

	"github.com/stroma-app/care-engine/internal/domain"
	"github.com/stroma-app/care-engine/internal/service/season"
)

// Calculator derives a plant's next watering window from its last-watered
// instant and the species care profile. Deterministic and side-effect free;
// windows are cheap to recompute, so nothing is cached.
type Calculator struct {
	seasons *season.Classifier
}

func NewCalculator(seasons *season.Classifier) *Calculator {
	return &Calculator{
		seasons: seasons,
	}
}

// Compute returns the watering window for the plant as of `now`.
// Returns domain.ErrMissingLastWatered when the plant was never watered and
// domain.ErrUnknownSpecies when the species has no care profile.
func (c *Calculator) Compute(plant *domain.Plant, now time.Time) (domain.WateringWindow, error) {
	if !plant.HasWateringHistory() {
		return domain.WateringWindow{}, fmt.Errorf("plant %s: %w", plant.ID, domain.ErrMissingLastWatered)
	}

	profile, err := domain.CareProfileFor(plant.Species)
	if err != nil {
		return domain.WateringWindow{}, fmt.Errorf("plant %s species %q: %w", plant.ID, plant.Species, err)
	}

	interval := profile.Watering.ForSeason(c.seasons.InSeason(now))

	// Calendar-day addition keeps the window correct across DST transitions.
	return domain.WateringWindow{
		Min: plant.LastWatered.AddDate(0, 0, interval.Minimum),
		Max: plant.LastWatered.AddDate(0, 0, interval.Maximum),
	}, nil
}

package season

import (
	"time"
)

// Growing season runs April through November by local calendar month;
// December through March is dormant. Intentionally coarse: no geolocation,
// no partial-month handling.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// InSeason reports whether the given instant falls in the growing season.
// The binary result selects which half of a species care profile applies.
func (c *Classifier) InSeason(now time.Time) bool {
	month := now.Month()
	return month >= time.April && month <= time.November
}

package season

import (
	"testing"
	"time"
)

func TestClassifier_InSeason(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		month    time.Month
		inSeason bool
	}{
		{time.January, false},
		{time.February, false},
		{time.March, false},
		{time.April, true},
		{time.May, true},
		{time.June, true},
		{time.July, true},
		{time.August, true},
		{time.September, true},
		{time.October, true},
		{time.November, true},
		{time.December, false},
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			now := time.Date(2025, tt.month, 15, 10, 30, 0, 0, time.Local)

			if got := classifier.InSeason(now); got != tt.inSeason {
				t.Errorf("InSeason(%s) = %v, want %v", tt.month, got, tt.inSeason)
			}
		})
	}
}

func TestClassifier_InSeasonBoundaries(t *testing.T) {
	classifier := NewClassifier()

	// First instant of April is in season
	if !classifier.InSeason(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.Local)) {
		t.Error("April 1st should be in season")
	}

	// Last instant of November is in season
	if !classifier.InSeason(time.Date(2025, time.November, 30, 23, 59, 59, 0, time.Local)) {
		t.Error("November 30th should be in season")
	}

	// First instant of December is out of season
	if classifier.InSeason(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.Local)) {
		t.Error("December 1st should be out of season")
	}
}

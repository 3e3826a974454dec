package domain

import "errors"

var (
	ErrPlantNotFound        = errors.New("plant not found")
	ErrMissingLastWatered   = errors.New("plant has no watering history")
	ErrUnknownSpecies       = errors.New("no care profile for species")
	ErrSchedulerSubmission  = errors.New("notification scheduler submission failed")
	ErrInvalidTimeOfDay     = errors.New("invalid time of day")
	ErrInvalidReminderState = errors.New("invalid reminder record data")
)

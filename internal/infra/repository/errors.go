package repository

import "errors"

var (
	ErrRedisConnection     = errors.New("redis connection error")
	ErrInvalidPlantData    = errors.New("invalid plant data")
	ErrInvalidReminderData = errors.New("invalid reminder data")
	ErrInvalidSettingsData = errors.New("invalid settings data")
)

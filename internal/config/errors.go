package config

import "errors"

// Startup validation errors. Each names the environment variable at fault so
// the failure is actionable from the log line alone.
var (
	ErrRedisAddrMissing = errors.New("REDIS_ADDR must be set")
	ErrInvalidRedisDB   = errors.New("REDIS_DB must be an integer")
)

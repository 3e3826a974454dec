package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port      string
	LogLevel  slog.Level
	Scheduler SchedulerConfig
	Redis     *RedisConfig

	// DefaultReminderTime overrides the built-in 09:00 fallback used when no
	// reminder time has been persisted yet. Raw "HH:MM", empty keeps the
	// built-in default.
	DefaultReminderTime string
}

// SchedulerConfig selects the notification scheduler backend. The push
// gateway fields drive the local HTTP client; the GCloud fields drive the
// Cloud Tasks client under the gcloud build tag.
type SchedulerConfig struct {
	PushGatewayURL string

	GCloudProjectID  string
	GCloudLocationID string
	GCloudQueueID    string
	GCloudTargetURL  string

	MaxRetries int
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	maxRetries := 3
	if v := os.Getenv("SCHEDULER_MAX_RETRIES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxRetries = parsed
		}
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:     port,
		LogLevel: parseLogLevel(os.Getenv("LOG_LEVEL")),
		Scheduler: SchedulerConfig{
			PushGatewayURL: os.Getenv("PUSH_GATEWAY_URL"),

			GCloudProjectID:  os.Getenv("GCLOUD_PROJECT_ID"),
			GCloudLocationID: os.Getenv("GCLOUD_LOCATION_ID"),
			GCloudQueueID:    os.Getenv("GCLOUD_QUEUE_ID"),
			GCloudTargetURL:  os.Getenv("GCLOUD_TARGET_URL"),

			MaxRetries: maxRetries,
		},
		Redis:               redisConfig,
		DefaultReminderTime: os.Getenv("REMINDER_TIME_DEFAULT"),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

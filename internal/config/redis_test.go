package config

import (
	"errors"
	"testing"
)

func TestLoadRedisConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(redisAddrEnv, "")
		t.Setenv(redisPasswordEnv, "")
		t.Setenv(redisDBEnv, "")
		t.Setenv(redisTLSEnv, "")

		cfg, err := LoadRedisConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Addr != defaultRedisAddr {
			t.Errorf("addr: got %q, want %q", cfg.Addr, defaultRedisAddr)
		}
		if cfg.DB != 0 || cfg.TLS {
			t.Errorf("got DB=%d TLS=%v, want zero values", cfg.DB, cfg.TLS)
		}
	})

	t.Run("explicit values", func(t *testing.T) {
		t.Setenv(redisAddrEnv, "redis.internal:6380")
		t.Setenv(redisPasswordEnv, "hunter2")
		t.Setenv(redisDBEnv, "3")
		t.Setenv(redisTLSEnv, "true")

		cfg, err := LoadRedisConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Addr != "redis.internal:6380" || cfg.Password != "hunter2" || cfg.DB != 3 || !cfg.TLS {
			t.Errorf("got %+v", cfg)
		}
	})

	t.Run("invalid db", func(t *testing.T) {
		t.Setenv(redisDBEnv, "three")

		if _, err := LoadRedisConfig(); !errors.Is(err, ErrInvalidRedisDB) {
			t.Fatalf("got %v, want ErrInvalidRedisDB", err)
		}
	})
}

func TestRedisConfigValidate(t *testing.T) {
	if err := (&RedisConfig{}).Validate(); !errors.Is(err, ErrRedisAddrMissing) {
		t.Fatalf("got %v, want ErrRedisAddrMissing", err)
	}
	if err := (&RedisConfig{Addr: defaultRedisAddr}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

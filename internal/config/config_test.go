package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/citorva/connect-four/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	// GetEnv treats empty as unset, so this masks any ambient values
	for _, key := range []string{
		"CONNECT4_DB_PATH",
		"CONNECT4_REDIS_ENABLED",
		"CONNECT4_REDIS_URL",
		"CONNECT4_REDIS_PASSWORD",
		"CONNECT4_LOG_LEVEL",
		"CONNECT4_COLOR",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	assert.Equal(t, "connect-four.db", cfg.DBPath)
	assert.False(t, cfg.RedisEnabled)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.Color)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CONNECT4_DB_PATH", "/tmp/games.db")
	t.Setenv("CONNECT4_REDIS_ENABLED", "true")
	t.Setenv("CONNECT4_REDIS_URL", "redis.internal:6379")
	t.Setenv("CONNECT4_LOG_LEVEL", "debug")
	t.Setenv("CONNECT4_COLOR", "off")

	cfg := config.Load()

	assert.Equal(t, "/tmp/games.db", cfg.DBPath)
	assert.True(t, cfg.RedisEnabled)
	assert.Equal(t, "redis.internal:6379", cfg.RedisURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "off", cfg.Color)
}

func TestGetEnvAsBoolFallsBackOnGarbage(t *testing.T) {
	t.Setenv("CONNECT4_REDIS_ENABLED", "maybe")

	assert.False(t, config.GetEnvAsBool("CONNECT4_REDIS_ENABLED", false))
	assert.True(t, config.GetEnvAsBool("CONNECT4_REDIS_ENABLED", true))
}

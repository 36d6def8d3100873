package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	DBPath        string
	RedisEnabled  bool
	RedisURL      string
	RedisPassword string
	LogLevel      string
	Color         string
}

// Load reads configuration from the environment. Every key has a working
// default so the game runs with no setup at all.
func Load() *Config {
	return &Config{
		DBPath:        GetEnv("CONNECT4_DB_PATH", "connect-four.db"),
		RedisEnabled:  GetEnvAsBool("CONNECT4_REDIS_ENABLED", false),
		RedisURL:      GetEnv("CONNECT4_REDIS_URL", "localhost:6379"),
		RedisPassword: GetEnv("CONNECT4_REDIS_PASSWORD", ""),
		LogLevel:      GetEnv("CONNECT4_LOG_LEVEL", "warn"),
		Color:         GetEnv("CONNECT4_COLOR", "auto"),
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %v", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the engine
type Config struct {
	Redis    RedisConfig
	Narrator NarratorConfig
	Storage  StorageConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string // Optional: when empty the engine uses local storage
}

// NarratorConfig holds narration service configuration
type NarratorConfig struct {
	BaseURL        string // Optional: when empty the deterministic fallback is used
	APIKey         string
	TimeoutSeconds int
}

// StorageConfig holds local snapshot storage configuration
type StorageConfig struct {
	Dir string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Narrator: NarratorConfig{
			BaseURL:        os.Getenv("NARRATOR_URL"),
			APIKey:         os.Getenv("NARRATOR_API_KEY"),
			TimeoutSeconds: getEnvAsIntOrDefault("NARRATOR_TIMEOUT_SECONDS", 30),
		},
		Storage: StorageConfig{
			Dir: getEnvOrDefault("SNAPSHOT_DIR", "data"),
		},
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

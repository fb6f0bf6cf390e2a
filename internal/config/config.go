package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Port string

	// ExchangeRateURL is the base URL of the currency backend used for
	// display-only conversion. Empty means conversion always falls back to
	// a 1:1 rate.
	ExchangeRateURL     string
	ExchangeRateTimeout time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", "8080"),
		ExchangeRateURL:     getEnv("EXCHANGE_RATE_URL", ""),
		ExchangeRateTimeout: getEnvSeconds("EXCHANGE_RATE_TIMEOUT_SECONDS", 5),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvSeconds parses an env var as a duration in whole seconds
func getEnvSeconds(key string, defaultSeconds int) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(defaultSeconds) * time.Second
}

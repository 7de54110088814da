// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port         int
	LogLevel     string
	DevMode      bool
	DefaultYears int // Simulated years per synthetic draw when a request omits one
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:         8080,
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		DevMode:      getEnv("DEV_MODE", "false") == "true",
		DefaultYears: 10_000,
	}

	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q: %w", raw, err)
		}
		cfg.Port = port
	}

	if raw := os.Getenv("SIM_YEARS"); raw != "" {
		years, err := strconv.Atoi(raw)
		if err != nil || years < 1 {
			return nil, fmt.Errorf("invalid SIM_YEARS value %q", raw)
		}
		cfg.DefaultYears = years
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

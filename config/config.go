// Package config loads server configuration from the environment.
//
// A .env file in the working directory is applied first when present
// (development convenience); real environment variables win over it.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Host     string // SERVER_HOST, default 0.0.0.0
	Port     int    // SERVER_PORT, default 8080
	Env      string // APP_ENV, default development
	DBPath   string // DB_PATH, default chinabank.db (":memory:" supported)
	LogLevel string // LOG_LEVEL, default info
}

func Load() (*Config, error) {
	// Missing .env is fine; only explicit env vars are required anyway.
	_ = godotenv.Load()

	cfg := &Config{
		Host:     envOr("SERVER_HOST", "0.0.0.0"),
		Env:      envOr("APP_ENV", "development"),
		DBPath:   envOr("DB_PATH", "chinabank.db"),
		LogLevel: envOr("LOG_LEVEL", "info"),
	}

	port, err := strconv.Atoi(envOr("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

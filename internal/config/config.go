// Package config materializes the full application configuration once at
// process start. Everything downstream receives it explicitly; nothing reads
// the environment after boot.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Metrics  MetricsConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds the Postgres connection settings.
type DatabaseConfig struct {
	DSN string
}

// AuthConfig holds token signing settings.
type AuthConfig struct {
	JWTSecret     string
	TokenTTLHours int
}

// MetricsConfig holds the snapshot scheduler settings.
type MetricsConfig struct {
	CronSchedule string
}

// Load reads environment variables (optionally from a .env file) and builds
// a Config. Missing .env files are acceptable when configuration comes from
// the environment directly.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			getenvWithDefault("DB_PORT", "5432"),
		)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("PORT", "3000"),
		},
		Database: DatabaseConfig{
			DSN: dsn,
		},
		Auth: AuthConfig{
			JWTSecret:     os.Getenv("JWT_SECRET"),
			TokenTTLHours: 24,
		},
		Metrics: MetricsConfig{
			// Midnight snapshot so every metric_date gets a row even on
			// write-free days.
			CronSchedule: getenvWithDefault("METRICS_CRON_SCHEDULE", "0 0 * * *"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET must be provided")
	}
	if c.Database.DSN == "" {
		return errors.New("DATABASE_URL or DB_* settings must be provided")
	}
	if c.Metrics.CronSchedule == "" {
		return errors.New("METRICS_CRON_SCHEDULE must not be empty")
	}
	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

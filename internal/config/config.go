// Package config loads application settings from the environment, an optional
// .env file and an optional YAML file.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	SRS       SRSConfig       `mapstructure:"srs"`
	Reminders RemindersConfig `mapstructure:"reminders"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig selects the storage backend
type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=sqlite3 postgres"`
	DSN    string `mapstructure:"dsn" validate:"required"`
}

// SRSConfig tunes scheduling
type SRSConfig struct {
	// Upper bound for review intervals in days, 0 means no cap
	MaxIntervalDays   int     `mapstructure:"max_interval_days" validate:"gte=0"`
	Timezone          string  `mapstructure:"timezone" validate:"required"`
	DefaultEaseFactor float64 `mapstructure:"default_ease_factor" validate:"gte=1.3"`
}

// RemindersConfig controls the due-review reminder job
type RemindersConfig struct {
	Enabled   bool `mapstructure:"enabled"`
	StartHour int  `mapstructure:"start_hour" validate:"gte=0,lte=23"`
	EndHour   int  `mapstructure:"end_hour" validate:"gte=0,lte=23,gtefield=StartHour"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     8080,
			LogLevel: "info",
		},
		Database: DatabaseConfig{
			Driver: "sqlite3",
			DSN:    "data/ellinika.db",
		},
		SRS: SRSConfig{
			MaxIntervalDays:   0,
			Timezone:          "UTC",
			DefaultEaseFactor: 2.3,
		},
		Reminders: RemindersConfig{
			Enabled:   false,
			StartHour: 9,
			EndHour:   21,
		},
	}
}

// Location resolves the configured time zone used for calendar days
func (c *SRSConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig
	Log     LogConfig
	Display DisplayConfig
}

// AppConfig holds process-wide settings
type AppConfig struct {
	Env string // Environment: development, staging, production
}

// IsDevelopment returns true if the environment is development
func (a *AppConfig) IsDevelopment() bool {
	return a.Env == "development" || a.Env == ""
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json or text
}

// DisplayConfig holds settings for rendered dates
type DisplayConfig struct {
	Timezone             string // IANA name or "Local"
	TimestampPlaceholder string // shown when a timestamp is missing
}

// Location resolves the configured display timezone
func (d *DisplayConfig) Location() (*time.Location, error) {
	if d.Timezone == "" || d.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(d.Timezone)
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	env := getEnv("ENV", "development")
	defaultFormat := "json"
	if env == "development" {
		defaultFormat = "text"
	}

	config := &Config{
		App: AppConfig{
			Env: env,
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", defaultFormat),
		},
		Display: DisplayConfig{
			Timezone:             getEnv("DISPLAY_TIMEZONE", "Local"),
			TimestampPlaceholder: getEnv("TIMESTAMP_PLACEHOLDER", "N/A"),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Log.Format)
	}
	if _, err := c.Display.Location(); err != nil {
		return fmt.Errorf("DISPLAY_TIMEZONE %q is not a known timezone: %w", c.Display.Timezone, err)
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

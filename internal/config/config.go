package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	// HTTP settings
	HTTPPort    int
	BearerToken string

	// Synthesis settings
	Duration      float64
	SampleRate    int
	MaxTextLength int

	// Logging settings
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables with sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		// HTTP settings
		HTTPPort:    getEnvInt("HTTP_PORT", 8080),
		BearerToken: os.Getenv("BEARER_TOKEN"),

		// Synthesis settings
		Duration:      getEnvFloat("SYNTH_DURATION", 2.0),
		SampleRate:    getEnvInt("SAMPLE_RATE", 44100),
		MaxTextLength: getEnvInt("MAX_TEXT_LENGTH", 1000),

		// Logging settings
		LogLevel:  getEnvString("LOG_LEVEL", "info"),
		LogFormat: getEnvString("LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// AuthDisabled returns true if bearer token authentication is disabled.
func (c *Config) AuthDisabled() bool {
	return c.BearerToken == ""
}

// Validate checks that configuration values are usable.
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return errors.New("HTTP_PORT must be between 1 and 65535")
	}

	if c.Duration <= 0 {
		return errors.New("SYNTH_DURATION must be positive")
	}

	if c.SampleRate < 1 {
		return errors.New("SAMPLE_RATE must be at least 1")
	}

	if c.MaxTextLength < 1 {
		return errors.New("MAX_TEXT_LENGTH must be at least 1")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return errors.New("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	validLogFormats := map[string]bool{"text": true, "json": true}
	if !validLogFormats[c.LogFormat] {
		return errors.New("LOG_FORMAT must be one of: text, json")
	}

	return nil
}

// getEnvString returns the environment variable value or a default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the environment variable as an int or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloat returns the environment variable as a float64 or a default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

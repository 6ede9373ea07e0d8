package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear relevant env vars to test defaults
	envVars := []string{
		"HTTP_PORT", "BEARER_TOKEN", "SYNTH_DURATION", "SAMPLE_RATE",
		"MAX_TEXT_LENGTH", "LOG_LEVEL", "LOG_FORMAT",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Check defaults
	if cfg.HTTPPort != 8080 {
		t.Errorf("HTTPPort = %d, want 8080", cfg.HTTPPort)
	}
	if cfg.Duration != 2.0 {
		t.Errorf("Duration = %v, want 2.0", cfg.Duration)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", cfg.SampleRate)
	}
	if cfg.MaxTextLength != 1000 {
		t.Errorf("MaxTextLength = %d, want 1000", cfg.MaxTextLength)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %s, want text", cfg.LogFormat)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	os.Setenv("HTTP_PORT", "9090")
	os.Setenv("BEARER_TOKEN", "secret")
	os.Setenv("SYNTH_DURATION", "0.5")
	os.Setenv("SAMPLE_RATE", "22050")
	os.Setenv("MAX_TEXT_LENGTH", "500")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")

	defer func() {
		os.Unsetenv("HTTP_PORT")
		os.Unsetenv("BEARER_TOKEN")
		os.Unsetenv("SYNTH_DURATION")
		os.Unsetenv("SAMPLE_RATE")
		os.Unsetenv("MAX_TEXT_LENGTH")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("LOG_FORMAT")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPPort != 9090 {
		t.Errorf("HTTPPort = %d, want 9090", cfg.HTTPPort)
	}
	if cfg.BearerToken != "secret" {
		t.Errorf("BearerToken = %s, want secret", cfg.BearerToken)
	}
	if cfg.Duration != 0.5 {
		t.Errorf("Duration = %v, want 0.5", cfg.Duration)
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050", cfg.SampleRate)
	}
	if cfg.MaxTextLength != 500 {
		t.Errorf("MaxTextLength = %d, want 500", cfg.MaxTextLength)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %s, want json", cfg.LogFormat)
	}
}

func validConfig() *Config {
	return &Config{
		HTTPPort:      8080,
		Duration:      2.0,
		SampleRate:    44100,
		MaxTextLength: 1000,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

func TestValidate_InvalidHTTPPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTPPort = 0

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() expected error for invalid HTTP port")
	}
}

func TestValidate_InvalidDuration(t *testing.T) {
	cfg := validConfig()
	cfg.Duration = 0

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() expected error for non-positive duration")
	}
}

func TestValidate_InvalidSampleRate(t *testing.T) {
	cfg := validConfig()
	cfg.SampleRate = 0

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() expected error for invalid sample rate")
	}
}

func TestValidate_InvalidMaxTextLength(t *testing.T) {
	cfg := validConfig()
	cfg.MaxTextLength = 0

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() expected error for invalid max text length")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.LogLevel = "invalid"

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() expected error for invalid log level")
	}
}

func TestValidate_InvalidLogFormat(t *testing.T) {
	cfg := validConfig()
	cfg.LogFormat = "invalid"

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() expected error for invalid log format")
	}
}

func TestAuthDisabled(t *testing.T) {
	cfg := validConfig()
	if !cfg.AuthDisabled() {
		t.Error("AuthDisabled() = false, want true for empty token")
	}

	cfg.BearerToken = "secret"
	if cfg.AuthDisabled() {
		t.Error("AuthDisabled() = true, want false with token set")
	}
}

func TestGetEnvString(t *testing.T) {
	os.Setenv("TEST_STRING", "value")
	defer os.Unsetenv("TEST_STRING")

	if got := getEnvString("TEST_STRING", "default"); got != "value" {
		t.Errorf("getEnvString() = %s, want value", got)
	}

	if got := getEnvString("NONEXISTENT", "default"); got != "default" {
		t.Errorf("getEnvString() = %s, want default", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	os.Setenv("TEST_INT", "42")
	defer os.Unsetenv("TEST_INT")

	if got := getEnvInt("TEST_INT", 0); got != 42 {
		t.Errorf("getEnvInt() = %d, want 42", got)
	}

	if got := getEnvInt("NONEXISTENT", 10); got != 10 {
		t.Errorf("getEnvInt() = %d, want 10", got)
	}

	os.Setenv("TEST_INT_INVALID", "not-a-number")
	defer os.Unsetenv("TEST_INT_INVALID")

	if got := getEnvInt("TEST_INT_INVALID", 10); got != 10 {
		t.Errorf("getEnvInt() = %d, want 10 for invalid input", got)
	}
}

func TestGetEnvFloat(t *testing.T) {
	os.Setenv("TEST_FLOAT", "1.5")
	defer os.Unsetenv("TEST_FLOAT")

	if got := getEnvFloat("TEST_FLOAT", 0); got != 1.5 {
		t.Errorf("getEnvFloat() = %v, want 1.5", got)
	}

	if got := getEnvFloat("NONEXISTENT", 2.0); got != 2.0 {
		t.Errorf("getEnvFloat() = %v, want 2.0", got)
	}

	os.Setenv("TEST_FLOAT_INVALID", "not-a-number")
	defer os.Unsetenv("TEST_FLOAT_INVALID")

	if got := getEnvFloat("TEST_FLOAT_INVALID", 2.0); got != 2.0 {
		t.Errorf("getEnvFloat() = %v, want 2.0 for invalid input", got)
	}
}

package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Evaluation EvaluationConfig
	Log        LogConfig
	OTEL       OTELConfig
}

// EvaluationConfig holds accuracy evaluation configuration
type EvaluationConfig struct {
	// AllowEmptyInput restores the legacy NaN ratio for empty series instead of failing.
	AllowEmptyInput bool
	WarnZeroActual  bool
}

// LogConfig holds logging configuration
type LogConfig struct {
	Env   string
	Level string
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Enabled        bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Evaluation: EvaluationConfig{
			AllowEmptyInput: getEnvAsBool("EVAL_ALLOW_EMPTY_INPUT", false),
			WarnZeroActual:  getEnvAsBool("EVAL_WARN_ZERO_ACTUAL", true),
		},
		Log: LogConfig{
			Env:   getEnv("LOG_ENV", "production"),
			Level: getEnv("LOG_LEVEL", "info"),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "price-accuracy"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

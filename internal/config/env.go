package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variables read by FromEnv.
const (
	EnvPort          = "RESUME_MATCHER_PORT"
	EnvLogLevel      = "RESUME_MATCHER_LOG_LEVEL"
	EnvLogFormat     = "RESUME_MATCHER_LOG_FORMAT"
	EnvMaxInputBytes = "RESUME_MATCHER_MAX_INPUT_BYTES"
)

// FromEnv returns the settings present in the environment. Unset or
// unparsable variables leave the field at its zero value.
func FromEnv() Config {
	return Config{
		Port:          GetEnvInt(EnvPort, 0),
		LogLevel:      GetEnvString(EnvLogLevel, ""),
		LogFormat:     GetEnvString(EnvLogFormat, ""),
		MaxInputBytes: int64(GetEnvInt(EnvMaxInputBytes, 0)),
	}
}

// GetEnvString gets an environment variable as a string with a default value.
func GetEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt gets an environment variable as an integer with a default value.
func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvBool gets an environment variable as a boolean with a default value.
func GetEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// GetEnvDuration gets an environment variable as a duration with a default value.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds process configuration.
type Config struct {
	// Log level: debug, info, warn, error
	LogLevel string
	// Upper bound for a single OS identity query, in seconds
	QueryTimeoutSeconds int
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	// Parse query timeout, default 3 seconds
	queryTimeout := parseInt(getEnv("HOSTID_QUERY_TIMEOUT", "3"), 3)
	if queryTimeout < 1 {
		queryTimeout = 1 // minimum 1 second
	}

	return &Config{
		LogLevel:            getEnv("HOSTID_LOG_LEVEL", "info"),
		QueryTimeoutSeconds: queryTimeout,
	}
}

// QueryTimeout returns the query timeout as a duration.
func (c *Config) QueryTimeout() time.Duration {
	return time.Duration(c.QueryTimeoutSeconds) * time.Second
}

// parseInt parses an integer, returning the default on failure.
func parseInt(s string, defaultVal int) int {
	if val, err := strconv.Atoi(s); err == nil {
		return val
	}
	return defaultVal
}

// getEnv returns the environment variable value, or the default if unset.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

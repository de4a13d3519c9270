// Package config provides configuration management with 2-tier priority:
// Environment variables > Default values
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Upstream    UpstreamConfig
	Display     DisplayConfig
	LogRotation LogRotationConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host     string
	Port     int
	LogLevel string
}

// UpstreamConfig holds the analytics feed endpoint configuration.
type UpstreamConfig struct {
	URL            string
	TimeoutSeconds int
}

// DisplayConfig holds record rendering configuration.
type DisplayConfig struct {
	// Fixed civil-timezone offset for the timezone-aware display variant.
	TimezoneName          string
	TimezoneOffsetMinutes int
}

// LogRotationConfig holds log rotation settings powered by lumberjack.
type LogRotationConfig struct {
	MaxSizeMB  int  // Maximum size in MB before rotation
	MaxBackups int  // Maximum number of old log files to retain
	MaxAgeDays int  // Maximum number of days to retain old log files
	Compress   bool // Whether to gzip compress rotated files
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:     "0.0.0.0",
			Port:     8080,
			LogLevel: "INFO",
		},
		Upstream: UpstreamConfig{
			TimeoutSeconds: 15,
		},
		Display: DisplayConfig{
			TimezoneName:          "IST",
			TimezoneOffsetMinutes: 330, // UTC+5:30
		},
		LogRotation: LogRotationConfig{
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 30,
			Compress:   true,
		},
	}
}

// Validate checks the configuration for errors. The upstream URL is validated
// at fetch time instead, so a missing feed surfaces per-request rather than
// preventing startup.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return &ConfigError{Field: "server.port", Message: "must be between 1 and 65535"}
	}
	if c.Upstream.TimeoutSeconds < 1 {
		return &ConfigError{Field: "upstream.timeout_seconds", Message: "must be at least 1"}
	}
	return nil
}

// ValidateUpstreamURL checks that a configured upstream value is a usable URL.
// A bare port number (a common misconfiguration when the variable is pointed
// at the server's own PORT) is rejected explicitly.
func ValidateUpstreamURL(raw string) error {
	if raw == "" {
		return &ConfigError{Field: "upstream.url", Message: "not set"}
	}
	if _, err := strconv.Atoi(raw); err == nil {
		return &ConfigError{Field: "upstream.url", Message: "holds a bare port number, expected a full URL"}
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return &ConfigError{Field: "upstream.url", Message: "malformed URL"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + ": " + e.Message
}

// TimezoneLocation returns the fixed display timezone.
func (c *Config) TimezoneLocation() *time.Location {
	return time.FixedZone(c.Display.TimezoneName, c.Display.TimezoneOffsetMinutes*60)
}

// Helper functions for environment variable parsing.

func getEnvStr(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	lower := strings.ToLower(v)
	return lower == "true" || lower == "1" || lower == "yes" || lower == "on"
}

package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load loads configuration with 2-tier priority:
// Environment variables > Default values
func Load() (*Config, error) {
	// Load .env file if present; real env vars are never overwritten.
	_ = godotenv.Load()

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) {
	// Server config
	cfg.Server.Host = getEnvStr("DASHBOARD_HOST", cfg.Server.Host)
	cfg.Server.Port = getEnvInt("PORT", cfg.Server.Port)
	cfg.Server.LogLevel = getEnvStr("LOG_LEVEL", cfg.Server.LogLevel)

	// Upstream feed config
	cfg.Upstream.URL = getEnvStr("UPSTREAM_ANALYTICS_URL", cfg.Upstream.URL)
	cfg.Upstream.TimeoutSeconds = getEnvInt("UPSTREAM_TIMEOUT_SECONDS", cfg.Upstream.TimeoutSeconds)

	// Display config
	cfg.Display.TimezoneName = getEnvStr("DISPLAY_TZ_NAME", cfg.Display.TimezoneName)
	cfg.Display.TimezoneOffsetMinutes = getEnvInt("DISPLAY_TZ_OFFSET_MINUTES", cfg.Display.TimezoneOffsetMinutes)

	// Log rotation config
	cfg.LogRotation.MaxSizeMB = getEnvInt("LOG_MAX_SIZE_MB", cfg.LogRotation.MaxSizeMB)
	cfg.LogRotation.MaxBackups = getEnvInt("LOG_MAX_BACKUPS", cfg.LogRotation.MaxBackups)
	cfg.LogRotation.MaxAgeDays = getEnvInt("LOG_MAX_AGE_DAYS", cfg.LogRotation.MaxAgeDays)
	cfg.LogRotation.Compress = getEnvBool("LOG_COMPRESS", cfg.LogRotation.Compress)
}

// LogDir returns the directory log files are written to.
func LogDir() string {
	if dir := os.Getenv("DASHBOARD_LOGS_DIR"); dir != "" {
		return dir
	}
	return "logs"
}

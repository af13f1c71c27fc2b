package config

import (
	"os"
	"strings"
	"time"
)

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TADA_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("TADA_DATA_DIR"); v != "" {
		cfg.Storage.Dir = v
	}
	if v := os.Getenv("TADA_DB"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("TADA_KEY"); v != "" {
		cfg.Storage.Key = v
	}
	if v := os.Getenv("TADA_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("TADA_ADD_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.UI.AddDelay = d
		}
	}
	// https://no-color.org: any non-empty value disables colour.
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.UI.NoColor = true
	}
	if v := os.Getenv("TADA_NO_COLOR"); v != "" {
		cfg.UI.NoColor = boolFromString(v)
	}
	if v := os.Getenv("TADA_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TADA_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

func boolFromString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

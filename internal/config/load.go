package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors config.toml. Zero values mean "not set".
type fileConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	LogLevel       string `toml:"log_level"`
	LogFormat      string `toml:"log_format"`
}

// loadConfigFile overlays settings from a TOML file onto cfg.
func loadConfigFile(cfg *Config, path string) error {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("invalid %s: unknown key: %s", ConfigFile, undecoded[0].String())
	}

	if fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if fc.TimeoutSeconds < 0 {
		return fmt.Errorf("invalid %s: timeout_seconds must not be negative", ConfigFile)
	}
	if fc.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(fc.LogLevel)
	}
	if fc.LogFormat != "" {
		cfg.LogFormat = strings.ToLower(fc.LogFormat)
	}
	return nil
}

// loadFromEnv overrides config from environment variables.
// Malformed numeric values are ignored.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODOLIST_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("TODOLIST_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("TODOLIST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("TODOLIST_LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
}

// Package config handles the XDG configuration directory, the config file and
// the settings derived from it.
package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// AppName is the application directory name.
	AppName = "todolist"

	// ConfigFile is the TOML settings filename inside the config directory.
	ConfigFile = "config.toml"

	// LogFile is the diagnostic log filename used by the interactive screen.
	LogFile = "todolist.log"

	// DefaultBaseURL is where the CRUD service is expected to listen.
	DefaultBaseURL = "http://localhost:3000"

	// DefaultTimeout bounds each request to the CRUD service.
	DefaultTimeout = 5 * time.Second
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// BaseURL is the scheme and host of the CRUD service.
	BaseURL string

	// Timeout is the per-request timeout.
	Timeout time.Duration

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// LogFormat is one of text, logfmt, json.
	LogFormat string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a Config for the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todolist or $HOME/.config/todolist.
// Settings are layered: defaults, then config.toml, then environment.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir}
	setDefaults(cfg)

	if cfg.HasConfigFile() {
		if err := loadConfigFile(cfg, cfg.ConfigPath()); err != nil {
			return nil, err
		}
	}
	loadFromEnv(cfg)

	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to the TOML settings file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// LogPath returns the path to the diagnostic log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, LogFile)
}

// HasConfigFile checks if the settings file exists.
func (c *Config) HasConfigFile() bool {
	_, err := os.Stat(c.ConfigPath())
	return err == nil
}

func setDefaults(cfg *Config) {
	cfg.BaseURL = DefaultBaseURL
	cfg.Timeout = DefaultTimeout
	cfg.LogLevel = "info"
	cfg.LogFormat = "text"
}

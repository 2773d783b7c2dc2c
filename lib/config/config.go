// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable that points at the config
// file when no --config flag is given.
const EnvVar = "NICKVIEW_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// Edit modes select how the edit route is handed off.
const (
	// EditModeBrowser opens the edit form in the platform browser.
	EditModeBrowser = "browser"
	// EditModeClipboard copies the edit URL to the terminal clipboard.
	EditModeClipboard = "clipboard"
)

// Config is the configuration of the nickview client.
type Config struct {
	// Environment identifies the deployment type (development, staging, production).
	Environment Environment `yaml:"environment"`

	// Store configures the remote record store.
	Store StoreConfig `yaml:"store"`

	// Edit configures the hand-off to the web edit form.
	Edit EditConfig `yaml:"edit"`

	// Log configures the diagnostic log file.
	Log LogConfig `yaml:"log"`

	// Per-environment overrides, applied after the base config is
	// loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Store *StoreConfig `yaml:"store,omitempty"`
	Edit  *EditConfig  `yaml:"edit,omitempty"`
	Log   *LogConfig   `yaml:"log,omitempty"`
}

// StoreConfig configures the remote record store.
type StoreConfig struct {
	// APIURL is the base URL the /api/... routes hang off.
	// Default: http://localhost:5000
	APIURL string `yaml:"api_url"`

	// RequestTimeout bounds each request, as a Go duration string.
	// Default: 15s
	RequestTimeout string `yaml:"request_timeout"`
}

// EditConfig configures where the edit route is sent.
type EditConfig struct {
	// WebURL is the root of the web application serving /create/{id}.
	// Default: http://localhost:3000
	WebURL string `yaml:"web_url"`

	// Mode is "browser" or "clipboard".
	// Default: browser
	Mode string `yaml:"mode"`
}

// LogConfig configures diagnostics written while the TUI owns the
// terminal.
type LogConfig struct {
	// Level is the minimum level: debug, info, warn or error.
	// Default: warn
	Level string `yaml:"level"`

	// Output is a file path for JSON logs. Empty disables the file.
	Output string `yaml:"output"`

	// MaxSizeMB is the size at which the log file is rotated.
	// Default: 10
	MaxSizeMB int `yaml:"max_size_mb"`

	// MaxBackups is how many rotated files are kept.
	// Default: 3
	MaxBackups int `yaml:"max_backups"`
}

// Default returns the default configuration, which points at a store
// and web application running locally.
func Default() *Config {
	return &Config{
		Environment: Development,
		Store: StoreConfig{
			APIURL:         "http://localhost:5000",
			RequestTimeout: "15s",
		},
		Edit: EditConfig{
			WebURL: "http://localhost:3000",
			Mode:   EditModeBrowser,
		},
		Log: LogConfig{
			Level:      "warn",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load loads configuration from the file named by NICKVIEW_CONFIG.
// When the variable is unset the defaults are returned; when it names
// a file, that file must exist.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvVar)
	if configPath == "" {
		cfg := Default()
		cfg.applyEnvironmentOverrides()
		return cfg, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path on top of
// the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, c)
}

// applyEnvironmentOverrides applies the section matching Environment.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
		// Production default: errors only.
		if overrides == nil {
			overrides = &ConfigOverrides{
				Log: &LogConfig{Level: "error"},
			}
		}
	}

	if overrides == nil {
		return
	}

	if overrides.Store != nil {
		if overrides.Store.APIURL != "" {
			c.Store.APIURL = overrides.Store.APIURL
		}
		if overrides.Store.RequestTimeout != "" {
			c.Store.RequestTimeout = overrides.Store.RequestTimeout
		}
	}

	if overrides.Edit != nil {
		if overrides.Edit.WebURL != "" {
			c.Edit.WebURL = overrides.Edit.WebURL
		}
		if overrides.Edit.Mode != "" {
			c.Edit.Mode = overrides.Edit.Mode
		}
	}

	if overrides.Log != nil {
		if overrides.Log.Level != "" {
			c.Log.Level = overrides.Log.Level
		}
		if overrides.Log.Output != "" {
			c.Log.Output = overrides.Log.Output
		}
		if overrides.Log.MaxSizeMB != 0 {
			c.Log.MaxSizeMB = overrides.Log.MaxSizeMB
		}
		if overrides.Log.MaxBackups != 0 {
			c.Log.MaxBackups = overrides.Log.MaxBackups
		}
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in URL
// and path fields.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Store.APIURL = expandVars(c.Store.APIURL, vars)
	c.Edit.WebURL = expandVars(c.Edit.WebURL, vars)
	c.Log.Output = expandVars(c.Log.Output, vars)
}

// varPattern matches ${VAR} and ${VAR:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// RequestTimeout parses Store.RequestTimeout.
func (c *Config) RequestTimeout() (time.Duration, error) {
	timeout, err := time.ParseDuration(c.Store.RequestTimeout)
	if err != nil {
		return 0, fmt.Errorf("store.request_timeout: %w", err)
	}
	if timeout <= 0 {
		return 0, fmt.Errorf("store.request_timeout must be positive, got %s", c.Store.RequestTimeout)
	}
	return timeout, nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Validate checks the configuration for errors, reporting all of them.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains([]Environment{Development, Staging, Production}, c.Environment) {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.Store.APIURL == "" {
		errs = append(errs, fmt.Errorf("store.api_url is required"))
	} else if err := checkHTTPURL(c.Store.APIURL); err != nil {
		errs = append(errs, fmt.Errorf("store.api_url: %w", err))
	}

	if _, err := c.RequestTimeout(); err != nil {
		errs = append(errs, err)
	}

	modes := []string{EditModeBrowser, EditModeClipboard}
	if !slices.Contains(modes, c.Edit.Mode) {
		errs = append(errs, fmt.Errorf("edit.mode must be one of: %v", modes))
	}
	if c.Edit.WebURL == "" {
		if c.Edit.Mode == EditModeBrowser {
			errs = append(errs, fmt.Errorf("edit.web_url is required in browser mode"))
		}
	} else if err := checkHTTPURL(c.Edit.WebURL); err != nil {
		errs = append(errs, fmt.Errorf("edit.web_url: %w", err))
	}

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.Log.MaxSizeMB < 0 {
		errs = append(errs, fmt.Errorf("log.max_size_mb must not be negative"))
	}
	if c.Log.MaxBackups < 0 {
		errs = append(errs, fmt.Errorf("log.max_backups must not be negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// checkHTTPURL requires an absolute http or https URL.
func checkHTTPURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%q must use http or https", raw)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%q has no host", raw)
	}
	return nil
}

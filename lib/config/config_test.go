// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "nickview.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return configPath
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Environment != Development {
		t.Errorf("expected environment=development, got %s", cfg.Environment)
	}
	if cfg.Store.APIURL != "http://localhost:5000" {
		t.Errorf("expected api_url=http://localhost:5000, got %s", cfg.Store.APIURL)
	}
	if cfg.Edit.Mode != EditModeBrowser {
		t.Errorf("expected edit mode browser, got %s", cfg.Edit.Mode)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_WithoutConfigUsesDefaults(t *testing.T) {
	t.Setenv(EnvVar, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without %s failed: %v", EnvVar, err)
	}
	if cfg.Store.APIURL != Default().Store.APIURL {
		t.Errorf("expected default api_url, got %s", cfg.Store.APIURL)
	}
}

func TestLoad_WithConfigEnv(t *testing.T) {
	configPath := writeConfig(t, `
environment: staging
store:
  api_url: https://staging.example/api-root
`)
	t.Setenv(EnvVar, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Environment != Staging {
		t.Errorf("expected environment=staging, got %s", cfg.Environment)
	}
	if cfg.Store.APIURL != "https://staging.example/api-root" {
		t.Errorf("expected api_url from file, got %s", cfg.Store.APIURL)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv(EnvVar, filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	if err == nil {
		t.Fatal("a named config file must exist")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	configPath := writeConfig(t, `
environment: staging

store:
  api_url: http://10.0.0.5:5000
  request_timeout: 4s

edit:
  web_url: https://nick.example
  mode: clipboard

log:
  level: debug
  output: /tmp/nickview.log
  max_size_mb: 50
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Store.APIURL != "http://10.0.0.5:5000" {
		t.Errorf("expected api_url from file, got %s", cfg.Store.APIURL)
	}
	if timeout, err := cfg.RequestTimeout(); err != nil || timeout != 4*time.Second {
		t.Errorf("expected request timeout 4s, got %v (%v)", timeout, err)
	}
	if cfg.Edit.Mode != EditModeClipboard || cfg.Edit.WebURL != "https://nick.example" {
		t.Errorf("unexpected edit config %+v", cfg.Edit)
	}
	if level, err := cfg.LogLevel(); err != nil || level != slog.LevelDebug {
		t.Errorf("expected debug level, got %v (%v)", level, err)
	}
	if cfg.Log.MaxSizeMB != 50 {
		t.Errorf("expected max_size_mb=50, got %d", cfg.Log.MaxSizeMB)
	}
	// Unset fields keep their defaults.
	if cfg.Log.MaxBackups != 3 {
		t.Errorf("expected default max_backups=3, got %d", cfg.Log.MaxBackups)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	configPath := writeConfig(t, `
environment: production

store:
  api_url: http://localhost:5000

production:
  store:
    api_url: https://nick.example/backend
  edit:
    mode: clipboard
  log:
    level: warn
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Store.APIURL != "https://nick.example/backend" {
		t.Errorf("expected production api_url, got %s", cfg.Store.APIURL)
	}
	if cfg.Edit.Mode != EditModeClipboard {
		t.Errorf("expected clipboard mode from production override, got %s", cfg.Edit.Mode)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected log level warn, got %s", cfg.Log.Level)
	}
}

func TestProductionDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "environment: production\n"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("production without a section should log errors only, got %s", cfg.Log.Level)
	}
}

func TestVariableExpansion(t *testing.T) {
	t.Setenv("NICK_API_HOST", "api.internal")
	configPath := writeConfig(t, `
store:
  api_url: http://${NICK_API_HOST}:${NICK_API_PORT:-5000}
log:
  output: ${HOME}/nickview.log
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Store.APIURL != "http://api.internal:5000" {
		t.Errorf("expected expanded api_url, got %s", cfg.Store.APIURL)
	}
	if want := os.Getenv("HOME") + "/nickview.log"; cfg.Log.Output != want {
		t.Errorf("expected log output %s, got %s", want, cfg.Log.Output)
	}
}

func TestExpandVars(t *testing.T) {
	tests := []struct {
		input    string
		vars     map[string]string
		expected string
	}{
		{
			input:    "${HOME}/nickview",
			vars:     map[string]string{"HOME": "/home/user"},
			expected: "/home/user/nickview",
		},
		{
			input:    "${NICKVIEW_TEST_MISSING:-default}",
			vars:     map[string]string{},
			expected: "default",
		},
		{
			input:    "${PRESENT:-default}",
			vars:     map[string]string{"PRESENT": "value"},
			expected: "value",
		},
		{
			input:    "${A}/${B}",
			vars:     map[string]string{"A": "first", "B": "second"},
			expected: "first/second",
		},
		{
			input:    "no variables here",
			vars:     map[string]string{},
			expected: "no variables here",
		},
	}

	for _, tt := range tests {
		result := expandVars(tt.input, tt.vars)
		if result != tt.expected {
			t.Errorf("expandVars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid default config",
			modify: func(c *Config) {},
		},
		{
			name:    "invalid environment",
			modify:  func(c *Config) { c.Environment = "invalid" },
			wantErr: "invalid environment",
		},
		{
			name:    "empty api url",
			modify:  func(c *Config) { c.Store.APIURL = "" },
			wantErr: "store.api_url is required",
		},
		{
			name:    "non-http api url",
			modify:  func(c *Config) { c.Store.APIURL = "ftp://store" },
			wantErr: "store.api_url",
		},
		{
			name:    "unparseable timeout",
			modify:  func(c *Config) { c.Store.RequestTimeout = "soon" },
			wantErr: "store.request_timeout",
		},
		{
			name:    "zero timeout",
			modify:  func(c *Config) { c.Store.RequestTimeout = "0s" },
			wantErr: "must be positive",
		},
		{
			name:    "unknown edit mode",
			modify:  func(c *Config) { c.Edit.Mode = "popup" },
			wantErr: "edit.mode",
		},
		{
			name:    "browser mode without web url",
			modify:  func(c *Config) { c.Edit.WebURL = "" },
			wantErr: "edit.web_url is required",
		},
		{
			name: "clipboard mode without web url",
			modify: func(c *Config) {
				c.Edit.Mode = EditModeClipboard
				c.Edit.WebURL = ""
			},
		},
		{
			name:    "bad log level",
			modify:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: "log.level",
		},
		{
			name:    "negative rotation",
			modify:  func(c *Config) { c.Log.MaxBackups = -1 },
			wantErr: "log.max_backups",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want one mentioning %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Environment = "qa"
	cfg.Edit.Mode = "popup"
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	for _, want := range []string{"invalid environment", "edit.mode", "log.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("joined error missing %q: %v", want, err)
		}
	}
}

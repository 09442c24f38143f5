// Package config provides configuration loading and validation for the
// CLI and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded
// from a JSON file. All fields are optional; missing values use
// defaults or CLI flags.
type Config struct {
	// Server
	Port           int   `json:"port,omitempty"`             // HTTP listen port
	MaxUploadBytes int64 `json:"max_upload_bytes,omitempty"` // CV upload size cap
	ResultTTL      int   `json:"result_ttl_minutes,omitempty"`

	// Behavior
	UseBrowser  bool   `json:"use_browser,omitempty"`  // headless rendering for SPA job boards
	ReportTitle string `json:"report_title,omitempty"` // title of exported reports
	Debug       bool   `json:"debug,omitempty"`        // verbose logging
	JSONLogs    bool   `json:"json_logs,omitempty"`    // JSON log encoding
}

// Defaults returns the built-in configuration values.
func Defaults() Config {
	return Config{
		Port:           8080,
		MaxUploadBytes: 16 << 20, // 16 MiB, same cap as typical CV upload forms
		ResultTTL:      30,
		ReportTitle:    "Rapport d'Analyse CV",
	}
}

// Load loads configuration from a JSON file and fills missing values
// from defaults. An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	defaults := Defaults()
	if path == "" {
		return &defaults, nil
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	merged := cfg.MergeWithDefaults(defaults)
	return &merged, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}
	if c.ResultTTL < 0 {
		return fmt.Errorf("config error: 'result_ttl_minutes' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled
// from defaults. Bool fields are not merged; flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}
	if result.ResultTTL == 0 {
		result.ResultTTL = defaults.ResultTTL
	}
	if result.ReportTitle == "" {
		result.ReportTitle = defaults.ReportTitle
	}

	return result
}

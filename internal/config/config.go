// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for chrono-tui.
//
// Supports TOML configuration with sensible defaults, environment variable
// overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - $CHRONO_CONFIG (explicit path override)
//   - ~/.chrono/config.toml
//   - Built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/chrono-tui/internal/chrono"
	"github.com/jeranaias/chrono-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete chrono-tui configuration.
type Config struct {
	Version string `toml:"version"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// TimePicker configuration
	TimePicker TimePickerConfig `toml:"timepicker"`

	// DatePicker configuration
	DatePicker DatePickerConfig `toml:"datepicker"`
}

// UIConfig contains general interface configuration.
type UIConfig struct {
	// MouseEnabled turns on mouse support (clock-face dragging).
	MouseEnabled bool `toml:"mouse_enabled"`
	// AltScreen runs the demo in the terminal's alternate screen buffer.
	AltScreen bool `toml:"alt_screen"`
}

// TimePickerConfig contains time picker configuration.
type TimePickerConfig struct {
	// Label shown next to the time field.
	Label string `toml:"label"`
	// DefaultPeriod is the period preselected for fresh pickers: "AM" or "PM".
	DefaultPeriod string `toml:"default_period"`
}

// DatePickerConfig contains date picker configuration.
type DatePickerConfig struct {
	// Label shown next to the date field.
	Label string `toml:"label"`
	// MinYear / MaxYear bound the selectable year range. Values are
	// clamped to [0, 9999]; a reversed range falls back to the defaults.
	MinYear int `toml:"min_year"`
	MaxYear int `toml:"max_year"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		UI: UIConfig{
			MouseEnabled: true,
			AltScreen:    true,
		},
		TimePicker: TimePickerConfig{
			Label:         "Time",
			DefaultPeriod: "AM",
		},
		DatePicker: DatePickerConfig{
			Label:   "Date",
			MinYear: chrono.DefaultMinYear,
			MaxYear: chrono.DefaultMaxYear,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// Dir returns the chrono config directory (~/.chrono).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".chrono"), nil
}

// Path returns the path to the TOML config file, honoring the
// CHRONO_CONFIG environment override.
func Path() (string, error) {
	if override := os.Getenv("CHRONO_CONFIG"); override != "" {
		return override, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the config file if present and falls back to defaults
// otherwise. The returned config is always validated.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.Validate()
	return cfg, nil
}

// LoadTOML decodes a TOML config file over an existing config, so
// unspecified keys keep their current values.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// LoadFromPath loads and validates a config from an explicit path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, err
	}
	cfg.Validate()
	return cfg, nil
}

// Save writes the config to the default TOML path atomically.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the config as TOML to the given path atomically.
func SaveTOML(cfg *Config, path string) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf, 0600, 0700)
}

// =============================================================================
// OVERRIDES / VALIDATION
// =============================================================================

// ApplyEnvOverrides applies CHRONO_* environment variables over the
// loaded configuration.
func (c *Config) ApplyEnvOverrides() {
	if minYear := os.Getenv("CHRONO_MIN_YEAR"); minYear != "" {
		if y, ok := util.ParseDigits(minYear); ok {
			c.DatePicker.MinYear = y
		}
	}
	if maxYear := os.Getenv("CHRONO_MAX_YEAR"); maxYear != "" {
		if y, ok := util.ParseDigits(maxYear); ok {
			c.DatePicker.MaxYear = y
		}
	}
	if mouse := os.Getenv("CHRONO_NO_MOUSE"); mouse != "" {
		c.UI.MouseEnabled = false
	}
}

// Validate normalizes the configuration in place. Invalid values are
// replaced with defaults rather than reported: the pickers must always
// come up, even with a broken config file.
func (c *Config) Validate() {
	// Year bounds clamp to the absolute [0, 9999] range.
	c.DatePicker.MinYear = chrono.ClampYear(c.DatePicker.MinYear)
	c.DatePicker.MaxYear = chrono.ClampYear(c.DatePicker.MaxYear)
	if c.DatePicker.MinYear > c.DatePicker.MaxYear {
		c.DatePicker.MinYear = chrono.DefaultMinYear
		c.DatePicker.MaxYear = chrono.DefaultMaxYear
	}

	if c.TimePicker.DefaultPeriod != "AM" && c.TimePicker.DefaultPeriod != "PM" {
		c.TimePicker.DefaultPeriod = "AM"
	}
	if c.TimePicker.Label == "" {
		c.TimePicker.Label = "Time"
	}
	if c.DatePicker.Label == "" {
		c.DatePicker.Label = "Date"
	}
}

// DefaultPeriod returns the configured period as a chrono value.
func (c *Config) DefaultPeriod() chrono.Period {
	if c.TimePicker.DefaultPeriod == "PM" {
		return chrono.PM
	}
	return chrono.AM
}

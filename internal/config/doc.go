// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for chrono-tui.
//
// Supports TOML configuration with sensible defaults, environment variable
// overrides, validation, and live reload via a filesystem watcher.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - TimePickerConfig: Time picker defaults (label, default period)
//   - DatePickerConfig: Date picker defaults (label, year bounds)
//   - Watcher: Debounced file watcher that delivers reloaded configs
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (CHRONO_*)
//   - ~/.chrono/config.toml (or CHRONO_CONFIG)
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Watch for changes:
//
//	path, _ := config.Path()
//	w, err := config.NewWatcher(path, time.Second)
//	for cfg := range w.Reloads() { ... }
package config

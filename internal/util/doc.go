// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the chrono-tui application.
//
// This package contains common helper functions used throughout the
// application for string layout, zero-padded field formatting, and file
// operations.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - PadWidth: display-width aware padding (CJK safe)
//
// Field Formatting:
//   - Pad2, Pad4: zero-padded rendering for the fixed "HH:MM AM" and
//     "DD.MM.YYYY" display formats
//   - ParseDigits: strict all-digits parsing for those same fields
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	// Zero-pad the pieces of a display string
//	field := util.Pad2(7) + ":" + util.Pad2(5) // "07:05"
//
//	// Write config files atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0600, 0700)
package util

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chrono provides the time and date value types for the picker widgets.
package chrono

import (
	"time"

	"github.com/jeranaias/chrono-tui/internal/util"
)

// =============================================================================
// TIME VALUE
// =============================================================================

// Period is the AM/PM half of a 12-hour clock time.
type Period int

const (
	AM Period = iota
	PM
)

// String returns "AM" or "PM".
func (p Period) String() string {
	if p == PM {
		return "PM"
	}
	return "AM"
}

// Time is a 12-hour clock time as shown by the time picker.
// A valid Time has Hour in [1,12] and Minute in [0,59]; out-of-range
// values only ever exist as transient typed text, never as a Time.
type Time struct {
	Hour   int
	Minute int
	Period Period
}

// Valid reports whether the time satisfies the 12-hour clock invariant.
func (t Time) Valid() bool {
	return t.Hour >= 1 && t.Hour <= 12 && t.Minute >= 0 && t.Minute <= 59
}

// Now returns the current local wall-clock time on the 12-hour clock.
func Now() Time {
	now := time.Now()
	period := AM
	if now.Hour() >= 12 {
		period = PM
	}
	hour := now.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return Time{Hour: hour, Minute: now.Minute(), Period: period}
}

// =============================================================================
// FORMAT / PARSE
// =============================================================================

// FormatTime renders a time as "HH:MM AM" / "HH:MM PM", zero-padded.
func FormatTime(t Time) string {
	return util.Pad2(t.Hour) + ":" + util.Pad2(t.Minute) + " " + t.Period.String()
}

// ParseTime parses the exact "HH:MM AM|PM" shape produced by FormatTime.
// Both numeric fields must be exactly two digits. Any other shape, or an
// out-of-range value such as hour 00 or minute 61, returns ok=false.
func ParseTime(s string) (Time, bool) {
	if len(s) != 8 || s[2] != ':' || s[5] != ' ' {
		return Time{}, false
	}

	hour, ok := util.ParseDigits(s[0:2])
	if !ok {
		return Time{}, false
	}
	minute, ok := util.ParseDigits(s[3:5])
	if !ok {
		return Time{}, false
	}

	var period Period
	switch s[6:8] {
	case "AM":
		period = AM
	case "PM":
		period = PM
	default:
		return Time{}, false
	}

	t := Time{Hour: hour, Minute: minute, Period: period}
	if !t.Valid() {
		return Time{}, false
	}
	return t, true
}

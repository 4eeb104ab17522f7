// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chrono provides the time and date value types for the picker widgets.
package chrono

import (
	"time"

	"github.com/jeranaias/chrono-tui/internal/util"
)

// =============================================================================
// YEAR BOUNDS
// =============================================================================

// Year bounds for the date picker. Configured bounds are clamped to
// [YearFloor, YearCeil]; the defaults match the picker's stock range.
const (
	YearFloor = 0
	YearCeil  = 9999

	DefaultMinYear = 1900
	DefaultMaxYear = 2100
)

// ClampYear clamps a configured year bound into [YearFloor, YearCeil].
func ClampYear(year int) int {
	return util.Clamp(year, YearFloor, YearCeil)
}

// =============================================================================
// DATE VALUE
// =============================================================================

// Date is a calendar date as shown by the date picker. Month is 1-based
// (1 = January). A valid Date denotes a real calendar day, checked
// against actual month lengths including leap years.
type Date struct {
	Day   int
	Month int
	Year  int
}

// IsLeapYear reports whether a year is a leap year in the Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the given
// year, or 0 for an out-of-range month.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// Valid reports whether the date denotes a real calendar day with a year
// inside the absolute [YearFloor, YearCeil] range.
func (d Date) Valid() bool {
	return d.ValidIn(YearFloor, YearCeil)
}

// ValidIn reports whether the date denotes a real calendar day with a
// year inside [minYear, maxYear]. 30.02.2021 is rejected; 29.02.2020 is
// accepted; 29.02.2021 is rejected.
func (d Date) ValidIn(minYear, maxYear int) bool {
	if d.Year < minYear || d.Year > maxYear {
		return false
	}
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

// Weekday returns the day of the week (Sunday = 0) for the date.
func (d Date) Weekday() int {
	return int(time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).Weekday())
}

// Today returns the current local calendar date.
func Today() Date {
	now := time.Now()
	return Date{Day: now.Day(), Month: int(now.Month()), Year: now.Year()}
}

// =============================================================================
// FORMAT / PARSE
// =============================================================================

// FormatDate renders a date as "DD.MM.YYYY", zero-padded.
func FormatDate(d Date) string {
	return util.Pad2(d.Day) + "." + util.Pad2(d.Month) + "." + util.Pad4(d.Year)
}

// ParseDate parses the exact "DD.MM.YYYY" shape produced by FormatDate.
// Day and month must be exactly two digits and the year exactly four.
// Impossible dates return ok=false; range-checking against configured
// year bounds is the caller's concern via ValidIn.
func ParseDate(s string) (Date, bool) {
	if len(s) != 10 || s[2] != '.' || s[5] != '.' {
		return Date{}, false
	}

	day, ok := util.ParseDigits(s[0:2])
	if !ok {
		return Date{}, false
	}
	month, ok := util.ParseDigits(s[3:5])
	if !ok {
		return Date{}, false
	}
	year, ok := util.ParseDigits(s[6:10])
	if !ok {
		return Date{}, false
	}

	d := Date{Day: day, Month: month, Year: year}
	if !d.Valid() {
		return Date{}, false
	}
	return d, true
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the chrono-tui application.
package util

import "strconv"

// Pad2 renders a non-negative number as exactly two digits ("07", "12").
// Values above 99 are rendered unpadded.
func Pad2(n int) string {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Pad4 renders a non-negative number as at least four digits ("0042", "2021").
func Pad4(n int) string {
	if n < 0 {
		n = 0
	}
	s := strconv.Itoa(n)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}

// ParseDigits parses a string consisting solely of ASCII digits.
// Unlike strconv.Atoi it rejects signs, spaces, and empty input, so the
// field-width checks in the date/time parsers stay strict.
func ParseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// Clamp limits n to the inclusive range [lo, hi].
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

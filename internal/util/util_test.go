// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the chrono-tui application.
package util

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile_Basic(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.txt")
	data := []byte("hello, world!")

	err := AtomicWriteFile(path, data, 0644, 0755)
	if err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	// Verify content
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != string(data) {
		t.Errorf("Content mismatch: got %q, want %q", string(content), string(data))
	}
}

func TestAtomicWriteFile_CreatesParentDir(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "subdir", "deep", "test.txt")
	data := []byte("test data")

	err := AtomicWriteFile(path, data, 0644, 0755)
	if err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("File not created: %v", err)
	}
}

func TestAtomicWriteFile_Overwrites(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.txt")

	// Write initial content
	if err := AtomicWriteFile(path, []byte("initial"), 0644, 0755); err != nil {
		t.Fatalf("First write failed: %v", err)
	}

	// Overwrite
	if err := AtomicWriteFile(path, []byte("updated"), 0644, 0755); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	// Verify new content
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != "updated" {
		t.Errorf("Content not updated: got %q", string(content))
	}
}

func TestAtomicWriteFile_PrivateDirPerm(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "newdir", "test.txt")

	err := AtomicWriteFile(path, []byte("test"), 0600, 0700)
	if err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("File not created: %v", err)
	}
}

// =============================================================================
// FIELD FORMATTING TESTS
// =============================================================================

func TestPad2(t *testing.T) {
	testCases := []struct {
		input    int
		expected string
	}{
		{0, "00"},
		{5, "05"},
		{9, "09"},
		{10, "10"},
		{59, "59"},
		{99, "99"},
		{100, "100"},
		{-3, "00"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			result := Pad2(tc.input)
			if result != tc.expected {
				t.Errorf("Pad2(%d) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestPad4(t *testing.T) {
	testCases := []struct {
		input    int
		expected string
	}{
		{0, "0000"},
		{7, "0007"},
		{42, "0042"},
		{999, "0999"},
		{2021, "2021"},
		{9999, "9999"},
		{10000, "10000"},
		{-1, "0000"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			result := Pad4(tc.input)
			if result != tc.expected {
				t.Errorf("Pad4(%d) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestParseDigits(t *testing.T) {
	testCases := []struct {
		input    string
		expected int
		ok       bool
	}{
		{"00", 0, true},
		{"07", 7, true},
		{"12", 12, true},
		{"2021", 2021, true},
		{"", 0, false},
		{" 7", 0, false},
		{"7 ", 0, false},
		{"-7", 0, false},
		{"+7", 0, false},
		{"1a", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result, ok := ParseDigits(tc.input)
			if ok != tc.ok || result != tc.expected {
				t.Errorf("ParseDigits(%q) = (%d, %v), want (%d, %v)",
					tc.input, result, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	testCases := []struct {
		n, lo, hi int
		expected  int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range testCases {
		result := Clamp(tc.n, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d",
				tc.n, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

// =============================================================================
// STRING LAYOUT TESTS
// =============================================================================

func TestTruncateRunes_ASCII(t *testing.T) {
	testCases := []struct {
		input    string
		maxRunes int
		expected string
	}{
		{"hello world", 5, "he..."},
		{"hello", 5, "hello"},
		{"hi", 5, "hi"},
		{"", 5, ""},
		{"hello world", 0, ""},
		{"hello world", 11, "hello world"},
		{"ab", 3, "ab"},
		{"abcd", 3, "abc"}, // When maxRunes <= 3, no ellipsis is added
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := TruncateRunes(tc.input, tc.maxRunes)
			if result != tc.expected {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q",
					tc.input, tc.maxRunes, result, tc.expected)
			}
		})
	}
}

func TestPadWidth(t *testing.T) {
	testCases := []struct {
		input    string
		width    int
		expected string
	}{
		{"ab", 5, "ab   "},
		{"hello", 5, "hello"},
		{"hello world", 5, "hello world"},
		{"", 2, "  "},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := PadWidth(tc.input, tc.width)
			if result != tc.expected {
				t.Errorf("PadWidth(%q, %d) = %q, want %q",
					tc.input, tc.width, result, tc.expected)
			}
		})
	}
}

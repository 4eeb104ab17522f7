// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chrono provides the time and date value types for the picker widgets.
//
// This file contains tests for the 42-cell month grid:
// - Leading/trailing padding alignment for Sunday-first weeks
// - Month navigation in both directions across year boundaries
package chrono

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// =============================================================================
// GRID LAYOUT TESTS
// =============================================================================

// leadingEmpty counts the zero cells before the first day of the month.
func leadingEmpty(g MonthGrid) int {
	for i, c := range g.Cells {
		if c != 0 {
			return i
		}
	}
	return len(g.Cells)
}

func TestNewMonthGrid_SundayStart(t *testing.T) {
	// August 2021 starts on a Sunday: no leading empty cells.
	g := NewMonthGrid(2021, 8)
	require.Equal(t, 0, leadingEmpty(g))
	require.Equal(t, 1, g.Cells[0])
	require.Equal(t, 31, g.Cells[30])
}

func TestNewMonthGrid_SaturdayStart(t *testing.T) {
	// May 2021 starts on a Saturday: six leading empty cells.
	g := NewMonthGrid(2021, 5)
	require.Equal(t, 6, leadingEmpty(g))
	require.Equal(t, 1, g.Cells[6])
}

func TestNewMonthGrid_AlwaysFortyTwoCells(t *testing.T) {
	for month := 1; month <= 12; month++ {
		g := NewMonthGrid(2021, month)
		require.Len(t, g.Cells, GridCells)

		// All days present exactly once, in order, after the padding.
		lead := leadingEmpty(g)
		days := DaysInMonth(2021, month)
		for d := 1; d <= days; d++ {
			require.Equal(t, d, g.Cells[lead+d-1], "month %d day %d", month, d)
		}

		// Trailing cells are all empty.
		for i := lead + days; i < GridCells; i++ {
			require.Zero(t, g.Cells[i], "month %d cell %d", month, i)
		}
	}
}

func TestNewMonthGrid_LeapFebruary(t *testing.T) {
	g := NewMonthGrid(2020, 2)
	lead := leadingEmpty(g)
	require.Equal(t, 29, g.Cells[lead+28])
}

// =============================================================================
// NAVIGATION TESTS
// =============================================================================

func TestMonthGrid_NextMonth(t *testing.T) {
	g := NewMonthGrid(2021, 7).NextMonth()
	require.Equal(t, 2021, g.Year)
	require.Equal(t, 8, g.Month)
}

func TestMonthGrid_NextMonth_YearBoundary(t *testing.T) {
	g := NewMonthGrid(2021, 12).NextMonth()
	require.Equal(t, 2022, g.Year)
	require.Equal(t, 1, g.Month)
}

func TestMonthGrid_PrevMonth(t *testing.T) {
	g := NewMonthGrid(2021, 8).PrevMonth()
	require.Equal(t, 2021, g.Year)
	require.Equal(t, 7, g.Month)
}

func TestMonthGrid_PrevMonth_YearBoundary(t *testing.T) {
	g := NewMonthGrid(2021, 1).PrevMonth()
	require.Equal(t, 2020, g.Year)
	require.Equal(t, 12, g.Month)
}

func TestMonthGrid_RoundTripNavigation(t *testing.T) {
	start := NewMonthGrid(2021, 6)
	back := start.NextMonth().PrevMonth()
	require.Equal(t, start, back)
}

// =============================================================================
// ACCESSOR TESTS
// =============================================================================

func TestMonthGrid_CellAt(t *testing.T) {
	g := NewMonthGrid(2021, 8) // starts Sunday
	require.Equal(t, 1, g.CellAt(0, 0))
	require.Equal(t, 7, g.CellAt(0, 6))
	require.Equal(t, 8, g.CellAt(1, 0))
	require.Zero(t, g.CellAt(5, 6)) // trailing padding
	require.Zero(t, g.CellAt(-1, 0))
	require.Zero(t, g.CellAt(0, 7))
}

func TestMonthGrid_MonthName(t *testing.T) {
	require.Equal(t, "August", NewMonthGrid(2021, 8).MonthName())
	require.Equal(t, "", MonthGrid{Month: 0}.MonthName())
}

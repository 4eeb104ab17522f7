// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chrono provides the time and date value types for the picker widgets.
package chrono

import "time"

// =============================================================================
// MONTH GRID
// =============================================================================

// Grid dimensions: six Sunday-first weeks of seven days, always 42 cells
// so every month renders at the same height.
const (
	GridRows  = 6
	GridCols  = 7
	GridCells = GridRows * GridCols
)

// MonthGrid is the 42-cell calendar layout for one displayed month.
// Cells hold 1-based day numbers; zero cells are the empty padding
// before the 1st and after the last day of the month.
type MonthGrid struct {
	Year  int
	Month int
	Cells [GridCells]int
}

// NewMonthGrid builds the grid for the given year and 1-based month.
// Leading zero cells align day 1 with its weekday column.
func NewMonthGrid(year, month int) MonthGrid {
	g := MonthGrid{Year: year, Month: month}

	lead := Date{Day: 1, Month: month, Year: year}.Weekday()
	days := DaysInMonth(year, month)
	for d := 1; d <= days; d++ {
		g.Cells[lead+d-1] = d
	}
	return g
}

// NextMonth returns the grid for the month containing the first day
// after the displayed month.
func (g MonthGrid) NextMonth() MonthGrid {
	next := time.Date(g.Year, time.Month(g.Month)+1, 1, 0, 0, 0, 0, time.UTC)
	return NewMonthGrid(next.Year(), int(next.Month()))
}

// PrevMonth returns the grid for the month one day before the first of
// the displayed month.
func (g MonthGrid) PrevMonth() MonthGrid {
	prev := time.Date(g.Year, time.Month(g.Month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	return NewMonthGrid(prev.Year(), int(prev.Month()))
}

// Contains reports whether the given day exists in the displayed month.
func (g MonthGrid) Contains(day int) bool {
	return day >= 1 && day <= DaysInMonth(g.Year, g.Month)
}

// CellAt returns the day number at a row/column of the grid, or 0 for
// an empty padding cell or out-of-range coordinates.
func (g MonthGrid) CellAt(row, col int) int {
	if row < 0 || row >= GridRows || col < 0 || col >= GridCols {
		return 0
	}
	return g.Cells[row*GridCols+col]
}

// MonthName returns the English month name for the displayed month.
func (g MonthGrid) MonthName() string {
	if g.Month < 1 || g.Month > 12 {
		return ""
	}
	return time.Month(g.Month).String()
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package datepicker implements the date picker widget.
package datepicker

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chrono-tui/internal/chrono"
	"github.com/jeranaias/chrono-tui/internal/ui/components"
	"github.com/jeranaias/chrono-tui/internal/util"
)

// =============================================================================
// CALENDAR RENDERING
// =============================================================================

// Body layout. Seven three-cell day columns minus the trailing gap give
// the body width; rows are fixed so pointer hit testing can address
// them directly.
const (
	calWidth     = 20
	dayCellWidth = 3

	navRow      = 0
	weekdayRow  = 1
	dayRowFirst = 2
	yearsRow    = dayRowFirst + chrono.GridRows + 1

	yearListHeight = 10
)

// calendarBody renders the month navigation row, the weekday header,
// the 42-cell day grid, and the year-list toggle. Every line is exactly
// calWidth cells wide.
func (m Model) calendarBody() string {
	theme := m.cfg.Theme

	title := m.grid.MonthName() + " " + util.Pad4(m.grid.Year)
	nav := components.IconButton(theme, "<") +
		theme.CalHeader.Width(calWidth-2).Render(title) +
		components.IconButton(theme, ">")

	weekdays := theme.CalWeekday.Render(util.PadWidth("Su Mo Tu We Th Fr Sa", calWidth))

	today := chrono.Today()
	lines := make([]string, 0, yearsRow+1)
	lines = append(lines, nav, weekdays)
	for row := 0; row < chrono.GridRows; row++ {
		lines = append(lines, m.dayRow(row, today))
	}
	lines = append(lines, "")
	lines = append(lines, centerLine(components.Button(theme, "Years", false), calWidth))

	return strings.Join(lines, "\n")
}

// dayRow renders one week of the grid.
func (m Model) dayRow(row int, today chrono.Date) string {
	theme := m.cfg.Theme

	cells := make([]string, chrono.GridCols)
	for col := 0; col < chrono.GridCols; col++ {
		day := m.grid.CellAt(row, col)
		if day == 0 {
			cells[col] = "  "
			continue
		}

		text := strconv.Itoa(day)
		if day < 10 {
			text = " " + text
		}

		date := chrono.Date{Day: day, Month: m.grid.Month, Year: m.grid.Year}
		switch {
		case date == m.tmp:
			cells[col] = theme.CalDayCursor.Render(text)
		case date == today:
			cells[col] = theme.CalDayToday.Render(text)
		default:
			cells[col] = theme.CalDay.Render(text)
		}
	}

	return strings.Join(cells, " ")
}

// =============================================================================
// YEAR LIST RENDERING
// =============================================================================

// yearsBody renders the scrollable year list at the same body size as
// the calendar so the dialog box never changes shape between views.
func (m Model) yearsBody() string {
	return m.years.View()
}

// yearListContent builds one centered line per selectable year.
func (m Model) yearListContent() string {
	theme := m.cfg.Theme

	var b strings.Builder
	for year := m.minYear; year <= m.maxYear; year++ {
		style := theme.YearItem
		if year == m.tmp.Year {
			style = theme.YearSelected
		}
		b.WriteString(style.Width(calWidth).Render(util.Pad4(year)))
		if year < m.maxYear {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// centerLine centers styled content within the given display width.
func centerLine(content string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(content)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for chrono-tui.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chrono-tui/internal/ui/styles"
)

// =============================================================================
// BUTTON RENDER HELPERS
// =============================================================================

// Button renders a labeled action button. Active buttons render with the
// highlighted style so keyboard focus is visible.
func Button(theme *styles.Theme, label string, active bool) string {
	if active {
		return theme.ButtonActive.Render(label)
	}
	return theme.Button.Render(label)
}

// IconButton renders a compact single-glyph button, used for the calendar
// month navigation chevrons.
func IconButton(theme *styles.Theme, glyph string) string {
	return theme.IconButton.Render(glyph)
}

// buttonGap is the spacing between buttons on a row, in cells.
const buttonGap = 2

// ButtonRow joins buttons on one horizontal line with a fixed gap.
func ButtonRow(buttons ...string) string {
	return strings.Join(buttons, strings.Repeat(" ", buttonGap))
}

// ButtonHit resolves a cell offset within a centered button row to the
// index of the button under it, or -1 when the cell misses every button.
// The layout math is CenteredButtonRow's, so rendered buttons and hit
// spans always line up.
func ButtonHit(width, x int, buttons ...string) int {
	pos := (width - lipgloss.Width(ButtonRow(buttons...))) / 2
	if pos < 0 {
		pos = 0
	}
	for i, b := range buttons {
		w := lipgloss.Width(b)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + buttonGap
	}
	return -1
}

// CenteredButtonRow renders a button row centered within width.
func CenteredButtonRow(width int, buttons ...string) string {
	row := ButtonRow(buttons...)
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(row)
}

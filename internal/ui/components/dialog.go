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
// DIALOG COMPONENT - Modal frame with full-screen placement
// =============================================================================

// Dialog assembles a modal dialog box: a title line, a prominent value
// banner, the body content, and a trailing button row.
type Dialog struct {
	Title   string
	Value   string
	Body    string
	Buttons []string
	theme   *styles.Theme
}

// NewDialog creates a dialog with the given theme.
func NewDialog(theme *styles.Theme) *Dialog {
	return &Dialog{theme: theme}
}

// Render produces the framed dialog box.
func (d *Dialog) Render() string {
	inner := lipgloss.Width(d.Body)
	if inner < 20 {
		inner = 20
	}

	parts := make([]string, 0, 4)
	if d.Title != "" {
		parts = append(parts, d.theme.DialogTitle.Width(inner).Render(d.Title))
	}
	if d.Value != "" {
		parts = append(parts, d.theme.DialogValue.Width(inner).Render(d.Value))
	}
	parts = append(parts, d.Body)
	if len(d.Buttons) > 0 {
		parts = append(parts, CenteredButtonRow(inner, d.Buttons...))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return d.theme.DialogBox.Render(content)
}

// OverlayOrigin returns the top-left cell of a box of the given size when
// centered in a terminal of the given size. The same math drives both
// Overlay rendering and mouse hit testing, so the two can never disagree.
func OverlayOrigin(termWidth, termHeight, boxWidth, boxHeight int) (x, y int) {
	x = (termWidth - boxWidth) / 2
	y = (termHeight - boxHeight) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// Overlay centers the rendered box in a full terminal-sized layer. Rows
// outside the box are left blank so the dialog reads as a modal.
func Overlay(box string, termWidth, termHeight int) string {
	lines := strings.Split(box, "\n")
	boxWidth := lipgloss.Width(box)
	boxHeight := len(lines)

	ox, oy := OverlayOrigin(termWidth, termHeight, boxWidth, boxHeight)
	pad := strings.Repeat(" ", ox)

	var b strings.Builder
	row := 0
	for ; row < oy; row++ {
		b.WriteString("\n")
	}
	for _, line := range lines {
		if row >= termHeight {
			break
		}
		b.WriteString(pad)
		b.WriteString(line)
		b.WriteString("\n")
		row++
	}
	for ; row < termHeight-1; row++ {
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

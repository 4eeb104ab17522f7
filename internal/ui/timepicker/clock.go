// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timepicker implements the time picker widget.
package timepicker

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chrono-tui/internal/chrono"
	"github.com/jeranaias/chrono-tui/internal/dial"
	"github.com/jeranaias/chrono-tui/internal/ui/styles"
	"github.com/jeranaias/chrono-tui/internal/util"
)

// =============================================================================
// CLOCK FACE RENDERING
// =============================================================================

// faceBody renders the dialog body: the face tabs, the clock canvas, and
// the AM/PM toggles. Every line is exactly dial.FaceWidth cells wide so
// the canvas position inside the dialog stays fixed.
func (m Model) faceBody() string {
	theme := m.cfg.Theme

	hoursTab := theme.FaceTab.Render("Hours")
	minutesTab := theme.FaceTab.Render("Minutes")
	if m.face == FaceHours {
		hoursTab = theme.FaceTabActive.Render("Hours")
	} else {
		minutesTab = theme.FaceTabActive.Render("Minutes")
	}
	tabs := centerLine(hoursTab+" "+minutesTab, dial.FaceWidth)

	amLabel := theme.FaceTab.Render("AM")
	pmLabel := theme.FaceTab.Render("PM")
	if m.tmp.Period == chrono.AM {
		amLabel = theme.FaceTabActive.Render("AM")
	} else {
		pmLabel = theme.FaceTabActive.Render("PM")
	}
	periods := centerLine(amLabel+" "+pmLabel, dial.FaceWidth)

	lines := make([]string, 0, dial.FaceHeight+4)
	lines = append(lines, tabs, "")
	lines = append(lines, m.renderCanvas()...)
	lines = append(lines, "", periods)

	return strings.Join(lines, "\n")
}

// canvasCell is one styled cell of the face canvas. A nil style renders
// as plain text.
type canvasCell struct {
	ch    rune
	style *lipgloss.Style
}

// renderCanvas paints the clock face onto a FaceWidth x FaceHeight cell
// grid: the dial ring with its labels, the selected stop, the center
// marker, and either the static hand tip or the animated sweep marker.
func (m Model) renderCanvas() []string {
	theme := m.cfg.Theme

	var grid [dial.FaceHeight][dial.FaceWidth]canvasCell
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = canvasCell{ch: ' '}
		}
	}

	count := dial.HourCount
	selected := m.tmp.Hour % 12
	if m.face == FaceMinutes {
		count = dial.MinuteCount
		selected = m.tmp.Minute
	}

	// Ring labels. On the minute face only every fifth stop carries a
	// number; the rest render as dim ring dots.
	for _, pos := range dial.Positions(count) {
		label, style := m.stopLabel(pos.Index, count)
		if pos.Index == selected {
			continue
		}
		place(&grid, pos.Point, label, style)
	}

	// Selected stop paints last among ring marks so neighbors on the
	// crowded minute face cannot cover it.
	selPoint := dial.PointAt(float64(dial.Angle(selected, count)))
	place(&grid, selPoint, selectedText(m.face, selected), &theme.ClockSelected)

	place(&grid, dial.Point{X: dial.CenterX, Y: dial.CenterY}, "+", &theme.ClockCenter)

	if m.animating {
		progress := m.animProgress()
		tip := dial.SweepAt(m.animPath, progress)
		place(&grid, tip, styles.PulseFrameAt(progress), &theme.ClockPulse)
	} else {
		tip := dial.PointAtRadius(float64(dial.Angle(selected, count)), 0.7)
		place(&grid, tip, "*", &theme.ClockHand)
	}

	return flatten(&grid)
}

// stopLabel returns the ring text and style for an unselected stop.
func (m Model) stopLabel(index, count int) (string, *lipgloss.Style) {
	theme := m.cfg.Theme
	if count == dial.HourCount {
		if index == 0 {
			return "12", &theme.ClockLabel
		}
		return strconv.Itoa(index), &theme.ClockLabel
	}
	if index%5 == 0 {
		return util.Pad2(index), &theme.ClockLabel
	}
	return ".", &theme.ClockRing
}

// selectedText returns the highlighted text for the selected stop.
func selectedText(face Face, selected int) string {
	if face == FaceHours {
		if selected == 0 {
			return "12"
		}
		return strconv.Itoa(selected)
	}
	return util.Pad2(selected)
}

// place writes text centered on a canvas point, clipping at the edges.
func place(grid *[dial.FaceHeight][dial.FaceWidth]canvasCell, p dial.Point, text string, style *lipgloss.Style) {
	runes := []rune(text)
	startX := p.X - (len(runes)-1)/2
	if p.Y < 0 || p.Y >= dial.FaceHeight {
		return
	}
	for i, r := range runes {
		x := startX + i
		if x < 0 || x >= dial.FaceWidth {
			continue
		}
		grid[p.Y][x] = canvasCell{ch: r, style: style}
	}
}

// flatten renders the cell grid to lines, batching runs of cells that
// share a style so each line stays a short sequence of styled segments.
func flatten(grid *[dial.FaceHeight][dial.FaceWidth]canvasCell) []string {
	lines := make([]string, dial.FaceHeight)
	for y := range grid {
		var b strings.Builder
		x := 0
		for x < dial.FaceWidth {
			style := grid[y][x].style
			var run strings.Builder
			for x < dial.FaceWidth && grid[y][x].style == style {
				run.WriteRune(grid[y][x].ch)
				x++
			}
			if style == nil {
				b.WriteString(run.String())
			} else {
				b.WriteString(style.Render(run.String()))
			}
		}
		lines[y] = b.String()
	}
	return lines
}

// centerLine centers styled content within the given display width.
func centerLine(content string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(content)
}

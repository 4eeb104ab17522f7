// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timepicker implements the time picker widget: a text field for
// typed "HH:MM AM" input plus a modal clock-face dialog for pointer
// selection, with an animated hand sweep when the face switches from
// hours to minutes.
package timepicker

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chrono-tui/internal/chrono"
	"github.com/jeranaias/chrono-tui/internal/dial"
	"github.com/jeranaias/chrono-tui/internal/ui/components"
	"github.com/jeranaias/chrono-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// TimeChangedMsg is published when a new time value is committed, either
// by confirming the dialog or by typing a fully valid string.
type TimeChangedMsg struct {
	Value chrono.Time
}

// animFrameMsg drives repaints while the hand sweep is playing.
type animFrameMsg struct{ at time.Time }

// animDoneMsg flips the animating flag off after the fixed duration.
// Stale timers from an earlier sweep may still fire; clearing the flag
// twice is harmless, so the timer is never cancelled.
type animDoneMsg struct{ at time.Time }

// =============================================================================
// MODEL
// =============================================================================

// Face identifies which clock face the dialog is showing.
type Face int

const (
	FaceHours Face = iota
	FaceMinutes
)

// Config carries the construction options for a time picker.
type Config struct {
	Theme *styles.Theme
	Label string

	// DefaultPeriod seeds the in-progress time before any value exists.
	DefaultPeriod chrono.Period

	// Lift, when set, wraps every message the picker emits. Hosts that
	// run several pickers use it to tag commits with their own message
	// type before they reach the host Update.
	Lift func(tea.Msg) tea.Msg
}

// Model is the time picker state. The committed value lives here and is
// re-published to the host through TimeChangedMsg on every commit; all
// other fields are transient interaction state.
type Model struct {
	cfg   Config
	field *components.TextField

	open bool
	face Face

	value    chrono.Time
	hasValue bool
	tmp      chrono.Time

	overClock bool
	dragging  bool

	fieldX      int
	fieldY      int
	fieldPlaced bool

	animating bool
	animPath  []dial.Point
	animStart time.Time

	width  int
	height int
}

// New creates a time picker with the given config.
func New(cfg Config) Model {
	field := components.NewTextField(cfg.Theme, cfg.Label, "HH:MM AM")
	field.SetWidth(24)

	return Model{
		cfg:   cfg,
		field: field,
		tmp:   chrono.Time{Hour: 12, Minute: 0, Period: cfg.DefaultPeriod},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Value returns the committed time, if any.
func (m Model) Value() (chrono.Time, bool) {
	return m.value, m.hasValue
}

// SetValue replaces the committed time and syncs the field text.
func (m Model) SetValue(t chrono.Time) Model {
	if !t.Valid() {
		return m
	}
	m.value = t
	m.hasValue = true
	m.field.SetValue(chrono.FormatTime(t))
	m.field.SetError("")
	return m
}

// Focus focuses the inline field.
func (m Model) Focus() (Model, tea.Cmd) {
	return m, m.field.Focus()
}

// Blur removes focus from the inline field.
func (m Model) Blur() Model {
	m.field.Blur()
	return m
}

// Focused reports whether the inline field is focused.
func (m Model) Focused() bool {
	return m.field.Focused()
}

// Open shows the dialog. A valid committed value seeds the in-progress
// time; otherwise the previous in-progress time is retained.
func (m Model) Open() Model {
	m.open = true
	m.face = FaceHours
	m.dragging = false
	m.animating = false
	if m.hasValue && m.value.Valid() {
		m.tmp = m.value
	}
	return m
}

// IsOpen reports whether the dialog is showing.
func (m Model) IsOpen() bool {
	return m.open
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles one event. Events that do not concern the picker pass
// through untouched.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case animFrameMsg:
		if !m.animating {
			return m, nil
		}
		if m.animProgress() >= 1 {
			return m, nil
		}
		return m, tea.Tick(styles.HandFrameInterval, func(t time.Time) tea.Msg {
			return animFrameMsg{at: t}
		})

	case animDoneMsg:
		m.animating = false
		return m, nil

	case tea.KeyMsg:
		if m.open {
			return m.updateDialogKey(msg)
		}
		return m.updateFieldKey(msg)

	case tea.MouseMsg:
		if m.open {
			return m.updateMouse(msg)
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.overField(msg.X, msg.Y) {
			return m.Open(), nil
		}
		return m, nil
	}

	return m, nil
}

// updateFieldKey handles typing in the inline field. A fully valid
// string commits live; anything else keeps the raw text and shows a
// validation message without touching the committed value.
func (m Model) updateFieldKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.field.Focused() {
		return m, nil
	}
	if msg.String() == "enter" {
		return m.Open(), nil
	}

	before := m.field.Value()
	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	text := m.field.Value()
	if text == before {
		return m, cmd
	}

	if t, ok := chrono.ParseTime(text); ok {
		m.tmp = t
		m.value = t
		m.hasValue = true
		m.field.SetError("")
		return m, tea.Batch(cmd, m.emitChanged(t))
	}

	if text == "" {
		m.field.SetError("")
	} else {
		m.field.SetError("Invalid Time Format")
	}
	return m, cmd
}

// updateDialogKey handles keys while the dialog is open.
func (m Model) updateDialogKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.cancel(), nil

	case "enter":
		return m.confirm()

	case "tab":
		if m.face == FaceHours {
			return m.switchFace(FaceMinutes)
		}
		return m.switchFace(FaceHours)

	case "up", "right":
		m.adjust(1)
		return m, nil

	case "down", "left":
		m.adjust(-1)
		return m, nil

	case "a":
		m.tmp.Period = chrono.AM
		return m, nil

	case "p":
		m.tmp.Period = chrono.PM
		return m, nil

	case "n":
		m.tmp = chrono.Now()
		return m, nil
	}

	return m, nil
}

// updateMouse handles pointer events over the open dialog: press snaps
// and starts a drag, motion continues it, release ends it and advances
// hours to minutes when it lands on the clock.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	local := m.faceLocal(msg.X, msg.Y)
	m.overClock = dial.Contains(local)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.overClock {
			m.dragging = true
			m.snap(local)
			return m, nil
		}
		switch m.buttonHit(msg.X, msg.Y) {
		case buttonCancel:
			return m.cancel(), nil
		case buttonOK:
			return m.confirm()
		}
		if !m.inDialog(msg.X, msg.Y) {
			return m.cancel(), nil
		}

	case tea.MouseActionMotion:
		if m.dragging && m.overClock {
			m.snap(local)
		}

	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		if m.overClock && m.face == FaceHours {
			return m.switchFace(FaceMinutes)
		}
	}

	return m, nil
}

// confirm validates the in-progress time and commits it. An invalid
// in-progress value keeps the dialog open with no commit.
func (m Model) confirm() (Model, tea.Cmd) {
	if !m.tmp.Valid() {
		return m, nil
	}
	m.value = m.tmp
	m.hasValue = true
	m.open = false
	m.field.SetValue(chrono.FormatTime(m.tmp))
	m.field.SetError("")
	return m, m.emitChanged(m.tmp)
}

// emitChanged delivers a commit, wrapped by the host's Lift when set.
func (m Model) emitChanged(t chrono.Time) tea.Cmd {
	msg := tea.Msg(TimeChangedMsg{Value: t})
	if m.cfg.Lift != nil {
		msg = m.cfg.Lift(msg)
	}
	return components.Emit(msg)
}

// cancel discards in-dialog edits and closes without a commit.
func (m Model) cancel() Model {
	m.open = false
	m.dragging = false
	m.animating = false
	return m
}

// switchFace starts the animated hand sweep from the active face's
// selected angle to the destination face's selected angle.
func (m Model) switchFace(to Face) (Model, tea.Cmd) {
	from := m.selectedAngle()
	m.face = to
	m.animPath = dial.SweepPath(from, m.selectedAngle())
	m.animStart = time.Now()
	m.animating = true

	return m, tea.Batch(
		tea.Tick(styles.HandFrameInterval, func(t time.Time) tea.Msg {
			return animFrameMsg{at: t}
		}),
		tea.Tick(styles.HandTransition.Duration, func(t time.Time) tea.Msg {
			return animDoneMsg{at: t}
		}),
	)
}

// adjust moves the active face's selection by delta stops, wrapping.
func (m *Model) adjust(delta int) {
	if m.face == FaceHours {
		h := (m.tmp.Hour%12 + delta + 12) % 12
		if h == 0 {
			h = 12
		}
		m.tmp.Hour = h
		return
	}
	m.tmp.Minute = (m.tmp.Minute + delta + 60) % 60
}

// snap resolves a face-local pointer cell to the nearest dial stop and
// applies it to the in-progress time.
func (m *Model) snap(local dial.Point) {
	if m.face == FaceHours {
		pos := dial.Nearest(dial.Positions(dial.HourCount), local)
		hour := pos.Index
		if hour == 0 {
			hour = 12
		}
		m.tmp.Hour = hour
		return
	}
	pos := dial.Nearest(dial.Positions(dial.MinuteCount), local)
	m.tmp.Minute = pos.Index
}

// selectedAngle returns the dial angle of the active face's selection.
func (m Model) selectedAngle() int {
	if m.face == FaceHours {
		return dial.Angle(m.tmp.Hour%12, dial.HourCount)
	}
	return dial.Angle(m.tmp.Minute, dial.MinuteCount)
}

// animProgress returns eased playback progress in [0,1].
func (m Model) animProgress() float64 {
	elapsed := time.Since(m.animStart)
	raw := float64(elapsed) / float64(styles.HandTransition.Duration)
	if raw > 1 {
		raw = 1
	}
	return styles.HandTransition.Easing(raw)
}

// =============================================================================
// GEOMETRY
// =============================================================================

// Offsets of the face canvas inside the dialog box: border and padding
// of the box frame, then title, value, face tabs, and a blank line.
const (
	faceLeft = 3
	faceTop  = 6
)

// faceLocal converts absolute terminal coordinates to face-canvas cells.
// The same overlay placement math drives rendering, so pointer cells and
// rendered cells always line up.
func (m Model) faceLocal(x, y int) dial.Point {
	box := m.dialogView()
	ox, oy := components.OverlayOrigin(m.width, m.height, lipgloss.Width(box), lipgloss.Height(box))
	return dial.Point{X: x - ox - faceLeft, Y: y - oy - faceTop}
}

// inDialog reports whether an absolute cell falls inside the dialog box.
func (m Model) inDialog(x, y int) bool {
	box := m.dialogView()
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	ox, oy := components.OverlayOrigin(m.width, m.height, w, h)
	return x >= ox && x < ox+w && y >= oy && y < oy+h
}

// Button indices in the dialog action row.
const (
	buttonCancel = 0
	buttonOK     = 1
)

// buttonHit resolves an absolute cell to a dialog button index, or -1
// when the cell is off the button row. The row is the last content line
// above the box frame's bottom padding and border.
func (m Model) buttonHit(x, y int) int {
	box := m.dialogView()
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	ox, oy := components.OverlayOrigin(m.width, m.height, w, h)
	if y != oy+h-3 {
		return -1
	}
	return components.ButtonHit(w-6, x-ox-faceLeft, m.dialogButtons()...)
}

// SetFieldOrigin tells the picker where the host renders its inline
// field, in absolute terminal cells, so a press on the field can open
// the dialog. Until the host places the field, presses never open it.
func (m Model) SetFieldOrigin(x, y int) Model {
	m.fieldX = x
	m.fieldY = y
	m.fieldPlaced = true
	return m
}

// overField reports whether an absolute cell falls on the inline field.
func (m Model) overField(x, y int) bool {
	if !m.fieldPlaced {
		return false
	}
	v := m.field.View()
	return x >= m.fieldX && x < m.fieldX+lipgloss.Width(v) &&
		y >= m.fieldY && y < m.fieldY+lipgloss.Height(v)
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the inline text field.
func (m Model) View() string {
	return m.field.View()
}

// Overlay renders the dialog layer sized to the terminal, or an empty
// string while the dialog is closed. The host places this above its
// normal layout.
func (m Model) Overlay() string {
	if !m.open {
		return ""
	}
	return components.Overlay(m.dialogView(), m.width, m.height)
}

// dialogView renders the dialog box itself.
func (m Model) dialogView() string {
	d := components.NewDialog(m.cfg.Theme)
	d.Title = "Select time"
	d.Value = chrono.FormatTime(m.tmp)
	d.Body = m.faceBody()
	d.Buttons = m.dialogButtons()
	return d.Render()
}

// dialogButtons renders the dialog action row, OK highlighted as the
// default action.
func (m Model) dialogButtons() []string {
	return []string{
		components.Button(m.cfg.Theme, "Cancel", false),
		components.Button(m.cfg.Theme, "OK", true),
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package datepicker implements the date picker widget: a text field for
// typed "DD.MM.YYYY" input plus a modal dialog holding a month-grid
// calendar and a scrollable year list bounded by configurable limits.
package datepicker

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jeranaias/chrono-tui/internal/chrono"
	"github.com/jeranaias/chrono-tui/internal/ui/components"
	"github.com/jeranaias/chrono-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// DateChangedMsg is published when a new date value is committed, either
// by confirming the dialog or by typing a fully valid string.
type DateChangedMsg struct {
	Value chrono.Date
}

// scrollYearsMsg asks a specific picker instance to scroll its year list
// so the selected year sits near the top. The ID routes the request past
// any other picker sharing the program loop; a stale or foreign ID makes
// the scroll a silent no-op.
type scrollYearsMsg struct {
	ID string
}

// =============================================================================
// MODEL
// =============================================================================

// DialogView identifies which selector the dialog is showing.
type DialogView int

const (
	ViewCalendar DialogView = iota
	ViewYears
)

// yearListMargin is how many rows above the selected year stay visible
// after the list auto-scrolls.
const yearListMargin = 4

// Config carries the construction options for a date picker.
type Config struct {
	Theme *styles.Theme
	Label string

	// MinYear and MaxYear bound the selectable range. Out-of-range
	// bounds are clamped; a reversed pair falls back to the defaults.
	MinYear int
	MaxYear int

	// Lift, when set, wraps every message the picker emits. Hosts that
	// run several pickers use it to tag commits with their own message
	// type before they reach the host Update.
	Lift func(tea.Msg) tea.Msg
}

// Model is the date picker state.
type Model struct {
	cfg   Config
	field *components.TextField

	open bool
	view DialogView

	value    chrono.Date
	hasValue bool
	tmp      chrono.Date
	grid     chrono.MonthGrid

	years    viewport.Model
	scrollID string

	minYear int
	maxYear int

	fieldX      int
	fieldY      int
	fieldPlaced bool

	width  int
	height int
}

// New creates a date picker with the given config.
func New(cfg Config) Model {
	field := components.NewTextField(cfg.Theme, cfg.Label, "DD.MM.YYYY")
	field.SetWidth(24)

	minYear, maxYear := clampBounds(cfg.MinYear, cfg.MaxYear)

	today := chrono.Today()
	vp := viewport.New(calWidth, yearListHeight)

	return Model{
		cfg:     cfg,
		field:   field,
		tmp:     today,
		grid:    chrono.NewMonthGrid(today.Year, today.Month),
		years:   vp,
		// A per-instance tag routes scroll messages between pickers
		// sharing one program loop.
		scrollID: uuid.NewString(),
		minYear:  minYear,
		maxYear:  maxYear,
	}
}

// clampBounds normalizes a configured year range the same way the
// config layer does: clamp each bound, defaults on a reversed pair.
func clampBounds(minYear, maxYear int) (int, int) {
	if minYear == 0 && maxYear == 0 {
		return chrono.DefaultMinYear, chrono.DefaultMaxYear
	}
	minYear = chrono.ClampYear(minYear)
	maxYear = chrono.ClampYear(maxYear)
	if minYear > maxYear {
		return chrono.DefaultMinYear, chrono.DefaultMaxYear
	}
	return minYear, maxYear
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Value returns the committed date, if any.
func (m Model) Value() (chrono.Date, bool) {
	return m.value, m.hasValue
}

// SetValue replaces the committed date and syncs the field text.
func (m Model) SetValue(d chrono.Date) Model {
	if !d.ValidIn(m.minYear, m.maxYear) {
		return m
	}
	m.value = d
	m.hasValue = true
	m.field.SetValue(chrono.FormatDate(d))
	m.field.SetError("")
	return m
}

// SetYearBounds replaces the selectable year range, used when a config
// reload changes the bounds at runtime.
func (m Model) SetYearBounds(minYear, maxYear int) Model {
	m.minYear, m.maxYear = clampBounds(minYear, maxYear)
	return m
}

// YearBounds returns the selectable year range.
func (m Model) YearBounds() (int, int) {
	return m.minYear, m.maxYear
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

// Open shows the dialog on the calendar view. A valid committed value
// seeds the in-progress date and the displayed month; an invalid one
// leaves both at their previous state.
func (m Model) Open() Model {
	m.open = true
	m.view = ViewCalendar
	if m.hasValue && m.value.ValidIn(m.minYear, m.maxYear) {
		m.tmp = m.value
		m.grid = chrono.NewMonthGrid(m.value.Year, m.value.Month)
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

// Update handles one event.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case scrollYearsMsg:
		if msg.ID == m.scrollID {
			m.scrollToSelectedYear()
		}
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
// validation message.
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

	if d, ok := chrono.ParseDate(text); ok && d.ValidIn(m.minYear, m.maxYear) {
		m.tmp = d
		m.grid = chrono.NewMonthGrid(d.Year, d.Month)
		m.value = d
		m.hasValue = true
		m.field.SetError("")
		return m, tea.Batch(cmd, m.emitChanged(d))
	}

	if text == "" {
		m.field.SetError("")
	} else {
		m.field.SetError("Invalid Date")
	}
	return m, cmd
}

// updateDialogKey handles keys while the dialog is open.
func (m Model) updateDialogKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.view == ViewYears {
		return m.updateYearsKey(msg)
	}

	switch msg.String() {
	case "esc":
		return m.cancel(), nil

	case "enter":
		return m.confirm()

	case "left":
		m.moveDay(-1)
	case "right":
		m.moveDay(1)
	case "up":
		m.moveDay(-7)
	case "down":
		m.moveDay(7)

	case "pgup", "b":
		m.grid = m.grid.PrevMonth()
	case "pgdown", "n":
		m.grid = m.grid.NextMonth()

	case "t":
		today := chrono.Today()
		if today.ValidIn(m.minYear, m.maxYear) {
			m.tmp = today
			m.grid = chrono.NewMonthGrid(today.Year, today.Month)
		}

	case "y":
		return m.openYears()
	}

	return m, nil
}

// updateYearsKey handles keys on the year-list view.
func (m Model) updateYearsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.cancel(), nil

	case "up":
		m.setYear(m.tmp.Year - 1)
		m.scrollToSelectedYear()
	case "down":
		m.setYear(m.tmp.Year + 1)
		m.scrollToSelectedYear()

	case "enter", "y":
		m.view = ViewCalendar
		m.grid = chrono.NewMonthGrid(m.tmp.Year, m.tmp.Month)
	}

	return m, nil
}

// updateMouse handles pointer events over the open dialog.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if !m.inDialog(msg.X, msg.Y) {
		return m.cancel(), nil
	}

	switch m.buttonHit(msg.X, msg.Y) {
	case buttonCancel:
		return m.cancel(), nil
	case buttonOK:
		return m.confirm()
	}

	local := m.bodyLocal(msg.X, msg.Y)
	if m.view == ViewYears {
		return m.clickYears(local)
	}
	return m.clickCalendar(local)
}

// clickCalendar resolves a body-local press on the calendar view.
func (m Model) clickCalendar(p point) (Model, tea.Cmd) {
	switch {
	case p.y == navRow && p.x <= 1:
		m.grid = m.grid.PrevMonth()

	case p.y == navRow && p.x >= calWidth-2:
		m.grid = m.grid.NextMonth()

	case p.y >= dayRowFirst && p.y < dayRowFirst+chrono.GridRows:
		row := p.y - dayRowFirst
		col := p.x / dayCellWidth
		if day := m.grid.CellAt(row, col); day != 0 {
			m.selectDay(day)
		}

	case p.y == yearsRow:
		return m.openYears()
	}

	return m, nil
}

// clickYears resolves a body-local press on the year list: a press on a
// visible year line selects it and returns to the calendar.
func (m Model) clickYears(p point) (Model, tea.Cmd) {
	if p.y < 0 || p.y >= yearListHeight || p.x < 0 || p.x >= calWidth {
		return m, nil
	}
	year := m.minYear + m.years.YOffset + p.y
	if year < m.minYear || year > m.maxYear {
		return m, nil
	}
	m.setYear(year)
	m.view = ViewCalendar
	m.grid = chrono.NewMonthGrid(m.tmp.Year, m.tmp.Month)
	return m, nil
}

// openYears switches to the year list. The scroll itself runs as a
// deferred best-effort effect routed by the instance's scroll id.
func (m Model) openYears() (Model, tea.Cmd) {
	m.view = ViewYears
	m.years.SetContent(m.yearListContent())
	return m, components.Emit(scrollYearsMsg{ID: m.scrollID})
}

// confirm validates the in-progress date and commits it.
func (m Model) confirm() (Model, tea.Cmd) {
	if !m.tmp.ValidIn(m.minYear, m.maxYear) {
		return m, nil
	}
	m.value = m.tmp
	m.hasValue = true
	m.open = false
	m.field.SetValue(chrono.FormatDate(m.tmp))
	m.field.SetError("")
	return m, m.emitChanged(m.tmp)
}

// emitChanged delivers a commit, wrapped by the host's Lift when set.
func (m Model) emitChanged(d chrono.Date) tea.Cmd {
	msg := tea.Msg(DateChangedMsg{Value: d})
	if m.cfg.Lift != nil {
		msg = m.cfg.Lift(msg)
	}
	return components.Emit(msg)
}

// cancel discards in-dialog edits and closes without a commit.
func (m Model) cancel() Model {
	m.open = false
	return m
}

// selectDay sets the in-progress date to a day of the displayed month.
// No commit fires until the dialog is confirmed.
func (m *Model) selectDay(day int) {
	if !m.grid.Contains(day) {
		return
	}
	m.tmp = chrono.Date{Day: day, Month: m.grid.Month, Year: m.grid.Year}
}

// moveDay moves the in-progress day within the displayed month. When the
// in-progress date is not on the displayed month the movement restarts
// from day 1 of that month.
func (m *Model) moveDay(delta int) {
	if m.tmp.Month != m.grid.Month || m.tmp.Year != m.grid.Year {
		m.selectDay(1)
		return
	}
	day := m.tmp.Day + delta
	days := chrono.DaysInMonth(m.grid.Year, m.grid.Month)
	if day < 1 {
		day = 1
	}
	if day > days {
		day = days
	}
	m.selectDay(day)
}

// setYear moves the in-progress year within the configured bounds,
// clamping the day to the target month's length.
func (m *Model) setYear(year int) {
	if year < m.minYear {
		year = m.minYear
	}
	if year > m.maxYear {
		year = m.maxYear
	}
	m.tmp.Year = year
	if days := chrono.DaysInMonth(year, m.tmp.Month); m.tmp.Day > days {
		m.tmp.Day = days
	}
	m.years.SetContent(m.yearListContent())
}

// scrollToSelectedYear positions the year list so the selected year sits
// a few rows below the top. Out-of-range selections floor at offset 0.
func (m *Model) scrollToSelectedYear() {
	offset := m.tmp.Year - m.minYear - yearListMargin
	if offset < 0 {
		offset = 0
	}
	m.years.SetYOffset(offset)
}

// =============================================================================
// GEOMETRY
// =============================================================================

// point is a body-local cell coordinate.
type point struct {
	x int
	y int
}

// Offsets of the dialog body inside the dialog box frame.
const (
	bodyLeft = 3
	bodyTop  = 4
)

// bodyLocal converts absolute terminal coordinates to body-local cells.
func (m Model) bodyLocal(x, y int) point {
	box := m.dialogView()
	ox, oy := components.OverlayOrigin(m.width, m.height, lipgloss.Width(box), lipgloss.Height(box))
	return point{x: x - ox - bodyLeft, y: y - oy - bodyTop}
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
	return components.ButtonHit(w-6, x-ox-bodyLeft, m.dialogButtons()...)
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
// string while the dialog is closed.
func (m Model) Overlay() string {
	if !m.open {
		return ""
	}
	return components.Overlay(m.dialogView(), m.width, m.height)
}

// dialogView renders the dialog box itself.
func (m Model) dialogView() string {
	d := components.NewDialog(m.cfg.Theme)
	d.Title = "Select date"
	d.Value = chrono.FormatDate(m.tmp)
	if m.view == ViewYears {
		d.Body = m.yearsBody()
	} else {
		d.Body = m.calendarBody()
	}
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

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for chrono-tui.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the picker widgets and the
// demo host. It detects the terminal's color capability and adjusts
// accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER / STATUS BAR STYLES
	// ==========================================================================

	Header       lipgloss.Style
	HeaderTitle  lipgloss.Style
	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// TEXT FIELD STYLES
	// ==========================================================================

	FieldLabel       lipgloss.Style
	FieldContainer   lipgloss.Style
	FieldFocused     lipgloss.Style
	FieldPrompt      lipgloss.Style
	FieldText        lipgloss.Style
	FieldPlaceholder lipgloss.Style
	FieldError       lipgloss.Style

	// ==========================================================================
	// DIALOG STYLES
	// ==========================================================================

	DialogBox    lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogValue  lipgloss.Style
	Backdrop     lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	IconButton   lipgloss.Style

	// ==========================================================================
	// CLOCK FACE STYLES
	// ==========================================================================

	ClockRing     lipgloss.Style
	ClockLabel    lipgloss.Style
	ClockSelected lipgloss.Style
	ClockCenter   lipgloss.Style
	ClockHand     lipgloss.Style
	ClockPulse    lipgloss.Style
	FaceTab       lipgloss.Style
	FaceTabActive lipgloss.Style

	// ==========================================================================
	// CALENDAR STYLES
	// ==========================================================================

	CalHeader    lipgloss.Style
	CalWeekday   lipgloss.Style
	CalDay       lipgloss.Style
	CalDayCursor lipgloss.Style
	CalDayChosen lipgloss.Style
	CalDayToday  lipgloss.Style
	CalDayEmpty  lipgloss.Style
	CalNav       lipgloss.Style

	// ==========================================================================
	// YEAR LIST STYLES
	// ==========================================================================

	YearItem     lipgloss.Style
	YearSelected lipgloss.Style

	// ==========================================================================
	// VALUE PANEL STYLES (demo host)
	// ==========================================================================

	ValueLabel lipgloss.Style
	Value      lipgloss.Style
	ValueEmpty lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Text field
	t.FieldLabel = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)

	t.FieldContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.FieldFocused = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(FocusRing).
		Padding(0, 1)

	t.FieldPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.FieldText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.FieldPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.FieldError = lipgloss.NewStyle().
		Foreground(Rose)

	// Dialog
	t.DialogBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Background(Surface).
		Padding(1, 2)

	t.DialogTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple).
		Align(lipgloss.Center)

	t.DialogValue = lipgloss.NewStyle().
		Bold(true).
		Foreground(Amber).
		Align(lipgloss.Center)

	t.Backdrop = lipgloss.NewStyle().
		Foreground(OverlayDim)

	t.Button = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 2)

	t.ButtonActive = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Purple).
		Bold(true).
		Padding(0, 2)

	t.IconButton = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	// Clock face
	t.ClockRing = lipgloss.NewStyle().
		Foreground(DialRing)

	t.ClockLabel = lipgloss.NewStyle().
		Foreground(DialLabel)

	t.ClockSelected = lipgloss.NewStyle().
		Foreground(DialSelectedFg).
		Background(DialSelectedBg).
		Bold(true)

	t.ClockCenter = lipgloss.NewStyle().
		Foreground(DialHand).
		Bold(true)

	t.ClockHand = lipgloss.NewStyle().
		Foreground(DialHand).
		Bold(true)

	t.ClockPulse = lipgloss.NewStyle().
		Foreground(DialPulse).
		Bold(true)

	t.FaceTab = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 1)

	t.FaceTabActive = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Purple).
		Bold(true).
		Padding(0, 1)

	// Calendar
	t.CalHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary).
		Align(lipgloss.Center)

	t.CalWeekday = lipgloss.NewStyle().
		Foreground(TextMuted).
		Bold(true)

	t.CalDay = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.CalDayCursor = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Cyan).
		Bold(true)

	t.CalDayChosen = lipgloss.NewStyle().
		Foreground(DaySelectedFg).
		Background(DaySelectedBg).
		Bold(true)

	t.CalDayToday = lipgloss.NewStyle().
		Foreground(DayTodayFg).
		Bold(true)

	t.CalDayEmpty = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.CalNav = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	// Year list
	t.YearItem = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Align(lipgloss.Center)

	t.YearSelected = lipgloss.NewStyle().
		Foreground(DaySelectedFg).
		Background(DaySelectedBg).
		Bold(true).
		Align(lipgloss.Center)

	// Value panel
	t.ValueLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.Value = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.ValueEmpty = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)
}

// SetSize records the current terminal dimensions on the theme.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

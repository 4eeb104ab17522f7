// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for chrono-tui.
package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chrono-tui/internal/ui/styles"
	"github.com/jeranaias/chrono-tui/internal/util"
)

// =============================================================================
// TEXT FIELD COMPONENT - Labeled input with validation state
// =============================================================================

// TextField is a labeled single-line text input. It tracks a validation
// error message that renders below the input when set.
type TextField struct {
	input   textinput.Model
	label   string
	errMsg  string
	width   int
	focused bool
	theme   *styles.Theme
}

// NewTextField creates a text field with the given label and placeholder.
func NewTextField(theme *styles.Theme, label, placeholder string) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 32
	ti.Width = 16
	ti.Prompt = ""

	ti.TextStyle = theme.FieldText
	ti.PlaceholderStyle = theme.FieldPlaceholder
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.Cyan)

	return &TextField{
		input: ti,
		label: label,
		width: 24,
		theme: theme,
	}
}

// Focus focuses the field.
func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

// Blur removes focus from the field.
func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

// Focused returns whether the field is focused.
func (f *TextField) Focused() bool {
	return f.focused
}

// Value returns the current input text.
func (f *TextField) Value() string {
	return f.input.Value()
}

// SetValue replaces the input text and moves the cursor to the end.
func (f *TextField) SetValue(value string) {
	f.input.SetValue(value)
	f.input.CursorEnd()
}

// SetLabel replaces the field label.
func (f *TextField) SetLabel(label string) {
	f.label = label
}

// Label returns the field label.
func (f *TextField) Label() string {
	return f.label
}

// SetWidth sets the rendered field width.
func (f *TextField) SetWidth(width int) {
	f.width = width
	inputWidth := width - 4
	if inputWidth < 8 {
		inputWidth = 8
	}
	f.input.Width = inputWidth
}

// SetError sets the validation message shown below the input. An empty
// string clears it.
func (f *TextField) SetError(msg string) {
	f.errMsg = msg
}

// Error returns the current validation message.
func (f *TextField) Error() string {
	return f.errMsg
}

// Update forwards messages to the underlying input.
func (f *TextField) Update(msg tea.Msg) (*TextField, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// View renders the label, the bordered input, and any validation message.
func (f *TextField) View() string {
	container := f.theme.FieldContainer
	if f.focused {
		container = f.theme.FieldFocused
	}
	container = container.Width(f.width - 2)

	parts := []string{
		f.theme.FieldLabel.Render(f.label),
		container.Render(f.input.View()),
	}
	if f.errMsg != "" {
		msg := util.TruncateRunes(f.errMsg, f.width)
		parts = append(parts, f.theme.FieldError.Render(msg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

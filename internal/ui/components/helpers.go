// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for chrono-tui.
package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// SHARED HELPER FUNCTIONS
// =============================================================================

// Emit returns a command that delivers msg to the program loop. Used by the
// pickers to publish value-changed messages without blocking the update.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides reusable UI components for the chrono-tui widgets.

This package contains a collection of styled, interactive components built on
top of the Bubble Tea and Lip Gloss libraries. Each component is designed to
be visually polished and consistent with the chrono-tui design language.

# Core Components

TextField (textfield.go) - Labeled single-line text input with validation state.
Dialog (dialog.go) - Modal dialog frame with full-screen backdrop placement.
Buttons (button.go) - Action button and icon button render helpers, plus
row hit testing that mirrors the centered-row layout math.

# Theme Integration

All components accept a *styles.Theme for consistent styling:

	theme := styles.NewTheme()
	field := components.NewTextField(theme, "Time", "HH:MM AM")
	field.SetWidth(30)
	view := field.View()

# Bubble Tea Integration

Interactive components follow the Bubble Tea update pattern:

	field, cmd := field.Update(msg)

# Helper Functions

The package includes shared helpers in helpers.go:
  - Emit() - Fire-and-forget command that delivers a message
  - ButtonRow() - Join buttons on one line with even spacing
*/
package components

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the chrono-tui
picker widgets and demo application.

This package defines the color palette, themed lip gloss styles, and
animation timing used throughout the widgets. All colors use Lip Gloss
AdaptiveColor for automatic light/dark terminal detection.

# Color System (colors.go)

  - Purple - Primary accent: selected dial stops and calendar days
  - Cyan - Field prompts and focus rings
  - Emerald - Confirm actions and the today marker
  - Amber - In-progress dialog values awaiting confirmation
  - Rose - Validation errors

Dial and calendar tokens (DialRing, DialSelectedBg, DaySelectedBg, ...)
style the clock face and month grid specifically.

# Theme (theme.go)

Theme groups every styled element the widgets render: text fields,
dialog frames and buttons, the clock face, the calendar grid, the year
list, and the demo host chrome. Construct one with NewTheme, which
detects terminal capabilities via termenv:

	theme := styles.NewTheme()
	label := theme.FieldLabel.Render("Time")

# Animation Timing (animations.go)

HandTransition fixes the clock-hand sweep at 200ms; HandFrameInterval
sets its repaint rate; PulseFrames drive the marker dot that echoes the
hand tip during the sweep.
*/
package styles

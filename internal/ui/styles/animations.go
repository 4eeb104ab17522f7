// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for chrono-tui.
package styles

import "time"

// =============================================================================
// HAND TRANSITION
// =============================================================================

// TransitionConfig defines a timed animation.
type TransitionConfig struct {
	Duration time.Duration
	Easing   EasingFunc
}

// EasingFunc is a function that maps progress (0-1) to output (0-1).
type EasingFunc func(t float64) float64

// EaseLinear - constant speed
func EaseLinear(t float64) float64 {
	return t
}

// EaseInQuad - accelerating from zero
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad - decelerating to zero
func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}

// EaseInOutQuad - acceleration until halfway, then deceleration
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// HandTransition is the clock-hand sweep shown when the time picker
// switches faces. The sweep path is sampled per degree and played back
// over the full duration; a deferred completion event fires once the
// duration elapses.
var HandTransition = TransitionConfig{
	Duration: 200 * time.Millisecond,
	Easing:   EaseLinear,
}

// HandFrameInterval is the repaint interval while a hand transition is
// playing. ~60fps keeps the sweep smooth without flooding the run loop.
var HandFrameInterval = 16 * time.Millisecond

// =============================================================================
// PULSE ANIMATION
// =============================================================================

// PulseFrames are the marker-dot frames cycled while the hand sweeps,
// echoing the hand tip (ASCII-only for compatibility).
var PulseFrames = []string{"( )", "(.)", "(o)", "(O)", "(o)", "(.)"}

// PulseFrameAt returns the pulse frame for a playback progress in [0,1].
func PulseFrameAt(progress float64) string {
	if progress < 0 {
		progress = 0
	}
	if progress >= 1 {
		progress = 0.999
	}
	return PulseFrames[int(progress*float64(len(PulseFrames)))]
}

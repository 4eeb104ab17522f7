// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for chrono-tui.
package styles

import (
	"testing"
	"time"
)

// =============================================================================
// HAND TRANSITION TESTS
// =============================================================================

func TestHandTransition(t *testing.T) {
	if HandTransition.Duration != 200*time.Millisecond {
		t.Errorf("HandTransition.Duration = %v, want 200ms", HandTransition.Duration)
	}
	if HandTransition.Easing == nil {
		t.Error("HandTransition should have an easing function")
	}
	if HandFrameInterval <= 0 || HandFrameInterval >= HandTransition.Duration {
		t.Errorf("HandFrameInterval = %v should be positive and below the duration", HandFrameInterval)
	}
}

// =============================================================================
// EASING TESTS
// =============================================================================

func TestEasingFunctions(t *testing.T) {
	easings := []struct {
		name string
		fn   EasingFunc
	}{
		{"EaseLinear", EaseLinear},
		{"EaseInQuad", EaseInQuad},
		{"EaseOutQuad", EaseOutQuad},
		{"EaseInOutQuad", EaseInOutQuad},
	}

	for _, e := range easings {
		t.Run(e.name, func(t *testing.T) {
			// All easings must pin the endpoints
			if e.fn(0) != 0 {
				t.Errorf("%s(0) = %v, want 0", e.name, e.fn(0))
			}
			if e.fn(1) != 1 {
				t.Errorf("%s(1) = %v, want 1", e.name, e.fn(1))
			}

			// Monotonically non-decreasing across the range
			prev := 0.0
			for i := 1; i <= 10; i++ {
				v := e.fn(float64(i) / 10)
				if v < prev {
					t.Errorf("%s not monotonic at %d/10", e.name, i)
				}
				prev = v
			}
		})
	}
}

// =============================================================================
// PULSE TESTS
// =============================================================================

func TestPulseFrameAt(t *testing.T) {
	if PulseFrameAt(0) != PulseFrames[0] {
		t.Errorf("PulseFrameAt(0) = %q, want first frame", PulseFrameAt(0))
	}
	if PulseFrameAt(1) != PulseFrames[len(PulseFrames)-1] {
		t.Errorf("PulseFrameAt(1) = %q, want last frame", PulseFrameAt(1))
	}
	// Out-of-range progress clamps instead of panicking
	if PulseFrameAt(-1) != PulseFrames[0] {
		t.Error("negative progress should clamp to first frame")
	}
	if PulseFrameAt(5) != PulseFrames[len(PulseFrames)-1] {
		t.Error("overshoot progress should clamp to last frame")
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dial provides the clock-face geometry for the time picker.
package dial

// =============================================================================
// HAND SWEEP PATHS
// =============================================================================

// SweepPath builds the animation path between two normalized angles in
// degrees [0,360): one point per whole degree, inclusive of both
// endpoints. When the destination angle is greater than the origin the
// sweep runs forward through increasing angles, otherwise backward
// through decreasing angles. The same path positions both the animated
// hand tip and the pulsing marker dot that echoes it.
func SweepPath(from, to int) []Point {
	if from == to {
		return []Point{PointAt(float64(to))}
	}

	step := 1
	if to < from {
		step = -1
	}

	path := make([]Point, 0, abs(to-from)+1)
	for deg := from; deg != to+step; deg += step {
		path = append(path, PointAt(float64(deg)))
	}
	return path
}

// SweepAt returns the path point for a playback progress in [0,1].
// Progress outside the range clamps to the nearest endpoint.
func SweepAt(path []Point, progress float64) Point {
	if len(path) == 0 {
		return Point{X: CenterX, Y: CenterY}
	}
	if progress <= 0 {
		return path[0]
	}
	if progress >= 1 {
		return path[len(path)-1]
	}
	return path[int(progress*float64(len(path)-1))]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dial provides the clock-face geometry for the time picker:
// precomputed dial positions, nearest-position hit testing, and the
// per-degree sweep paths used by the hand transition animation.
//
// Positions live on an ellipse rather than a true circle because a
// terminal cell is roughly twice as tall as it is wide; doubling the
// horizontal radius makes the rendered face look round. Angles follow
// the picker convention of placing index 0 (the "12" / "00" label) at
// the top of the face: position i of n sits at i*(360/n)+270 degrees.
package dial

import "math"

// =============================================================================
// FACE GEOMETRY
// =============================================================================

// Position counts for the two clock faces.
const (
	HourCount   = 12
	MinuteCount = 60
)

// Face canvas dimensions in cells. All positions fall inside
// [0,FaceWidth) x [0,FaceHeight).
const (
	FaceWidth  = 27
	FaceHeight = 13

	CenterX = 13
	CenterY = 6

	// Horizontal radius is doubled to compensate for cell aspect ratio.
	RadiusX = 12
	RadiusY = 6
)

// Point is a cell coordinate on the face canvas.
type Point struct {
	X int
	Y int
}

// Position is one precomputed (index, point) pair on the dial.
type Position struct {
	Index int
	Point Point
}

// Angle returns the normalized angle in degrees [0,360) for position
// index out of count, with index 0 at the top of the face.
func Angle(index, count int) int {
	deg := index*(360/count) + 270
	return ((deg % 360) + 360) % 360
}

// PointAt returns the cell on the dial ellipse at the given angle in
// degrees, measured clockwise with 0 at the right of the face.
func PointAt(deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{
		X: CenterX + int(math.Round(RadiusX*math.Cos(rad))),
		Y: CenterY + int(math.Round(RadiusY*math.Sin(rad))),
	}
}

// PointAtRadius is PointAt with both radii scaled by the given fraction,
// used to place the hand marker between the center and the dial ring.
func PointAtRadius(deg, scale float64) Point {
	rad := deg * math.Pi / 180
	return Point{
		X: CenterX + int(math.Round(RadiusX*scale*math.Cos(rad))),
		Y: CenterY + int(math.Round(RadiusY*scale*math.Sin(rad))),
	}
}

// Positions precomputes the dial positions for a face with the given
// number of evenly spaced stops (12 for hours, 60 for minutes).
func Positions(count int) []Position {
	positions := make([]Position, count)
	for i := 0; i < count; i++ {
		positions[i] = Position{
			Index: i,
			Point: PointAt(float64(Angle(i, count))),
		}
	}
	return positions
}

// =============================================================================
// HIT TESTING
// =============================================================================

// Nearest resolves a pointer cell to the dial position with the minimum
// Euclidean distance. Ties break to the lowest index: the first position
// at the minimum distance wins, so resolution is deterministic and does
// not depend on sort stability.
func Nearest(positions []Position, p Point) Position {
	best := positions[0]
	bestDist := distSq(best.Point, p)
	for _, candidate := range positions[1:] {
		if d := distSq(candidate.Point, p); d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}

// Contains reports whether a cell lies on the face canvas, with a
// one-cell margin so edge positions remain reachable by the pointer.
func Contains(p Point) bool {
	return p.X >= -1 && p.X <= FaceWidth && p.Y >= -1 && p.Y <= FaceHeight
}

func distSq(a, b Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

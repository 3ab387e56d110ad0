// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Box is an axis-aligned bounding box in world units.
// X and Y are the centre; the y axis grows upward.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a box centred on (x, y).
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// MinX returns the left edge.
func (b Box) MinX() float64 { return b.X - b.W/2 }

// MaxX returns the right edge.
func (b Box) MaxX() float64 { return b.X + b.W/2 }

// MinY returns the bottom edge.
func (b Box) MinY() float64 { return b.Y - b.H/2 }

// MaxY returns the top edge.
func (b Box) MaxY() float64 { return b.Y + b.H/2 }

// Intersects reports whether the open interiors of two boxes overlap.
// Touching edges do not count.
func (b Box) Intersects(other Box) bool {
	return b.MinX() < other.MaxX() && b.MaxX() > other.MinX() &&
		b.MinY() < other.MaxY() && b.MaxY() > other.MinY()
}

// Side names the face of the second box that the first box hit.
type Side int

const (
	SideInside Side = iota // Overlap without a clear entry face
	SideLeft               // a hit b's left face (a is left of b)
	SideRight              // a hit b's right face
	SideTop                // a hit b's top face (a is above b)
	SideBottom             // a hit b's bottom face
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideInside:
		return "Inside"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Collide tests a against b and returns the face of b that a entered through.
// When a straddles an edge on both axes, the axis with the shallower
// penetration wins. An axis where a is not straddling exactly one edge of b
// reports SideInside with infinite depth.
func Collide(a, b Box) (Side, bool) {
	if !a.Intersects(b) {
		return SideInside, false
	}

	xSide, xDepth := SideInside, math.Inf(1)
	switch {
	case a.MinX() < b.MinX() && a.MaxX() > b.MinX() && a.MaxX() < b.MaxX():
		xSide, xDepth = SideLeft, b.MinX()-a.MaxX()
	case a.MinX() > b.MinX() && a.MinX() < b.MaxX() && a.MaxX() > b.MaxX():
		xSide, xDepth = SideRight, a.MinX()-b.MaxX()
	}

	ySide, yDepth := SideInside, math.Inf(1)
	switch {
	case a.MinY() < b.MinY() && a.MaxY() > b.MinY() && a.MaxY() < b.MaxY():
		ySide, yDepth = SideBottom, b.MinY()-a.MaxY()
	case a.MinY() > b.MinY() && a.MinY() < b.MaxY() && a.MaxY() > b.MaxY():
		ySide, yDepth = SideTop, a.MinY()-b.MaxY()
	}

	if math.Abs(yDepth) < math.Abs(xDepth) {
		return ySide, true
	}
	return xSide, true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

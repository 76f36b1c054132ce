// Package core provides fundamental types and utilities for the flap platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Box is an axis-aligned bounding box in playfield coordinates,
// described by its center and half extents.
type Box struct {
	X, Y         float64 // Center
	HalfW, HalfH float64 // Half extents, never negative
}

// NewBox creates a box centered at (x, y) with the given half extents.
func NewBox(x, y, halfW, halfH float64) Box {
	return Box{X: x, Y: y, HalfW: halfW, HalfH: halfH}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 {
	return b.X - b.HalfW
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.HalfW
}

// Bottom returns the y-coordinate of the bottom edge (y grows upward).
func (b Box) Bottom() float64 {
	return b.Y - b.HalfH
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Y + b.HalfH
}

// Overlaps returns true if this box and other share a region of positive area.
// Boxes whose edges only touch do not overlap.
func (b Box) Overlaps(other Box) bool {
	return b.Left() < other.Right() &&
		b.Right() > other.Left() &&
		b.Bottom() < other.Top() &&
		b.Top() > other.Bottom()
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

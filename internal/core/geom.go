// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea or ebiten)
// to keep game logic pure and testable.
package core

// Box represents an axis-aligned bounding box used for collision detection.
// Coordinates are logical viewport units, y grows downward.
type Box struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// BoxAround creates a box centered at (cx, cy) with the given half extents.
func BoxAround(cx, cy, halfW, halfH float64) Box {
	return Box{X: cx - halfW, Y: cy - halfH, W: 2 * halfW, H: 2 * halfH}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 {
	return b.X
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Intersects returns true if this box overlaps with another.
// Edges that merely touch do not count as an overlap.
func (b Box) Intersects(other Box) bool {
	return b.Right() > other.Left() &&
		b.Left() < other.Right() &&
		b.Bottom() > other.Top() &&
		b.Top() < other.Bottom()
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Package page models the rendered document the dispatcher hit-tests
// against: a node tree with viewport-space geometry and shadow roots.
// It is the in-process stand-in for the DOM collaborator; hit testing is
// shadow-mode agnostic while script-visible introspection is not.
package page

import "math"

// Rect is an axis-aligned rectangle in viewport coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether the point lies inside the rectangle. Left and
// top edges are inclusive, right and bottom exclusive, matching painting
// coverage.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersect returns the overlapping region and whether it is non-empty.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	x1 := math.Max(r.X, o.X)
	y1 := math.Max(r.Y, o.Y)
	x2 := math.Min(r.X+r.Width, o.X+o.Width)
	y2 := math.Min(r.Y+r.Height, o.Y+o.Height)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}, false
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}, true
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Viewport is the visible page area. Coordinates outside it are
// out of bounds for pointer moves.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect returns the viewport as a rectangle anchored at the origin.
func (v Viewport) Rect() Rect {
	return Rect{Width: v.Width, Height: v.Height}
}

// InBounds reports whether the point lies inside the viewport. The exact
// boundary is considered in bounds.
func (v Viewport) InBounds(x, y float64) bool {
	return x >= 0 && y >= 0 && x <= v.Width && y <= v.Height
}

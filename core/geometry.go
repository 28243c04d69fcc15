// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/geometry.go
// Summary: Pixel-space geometry primitives shared by the layout and
// scroll engines. All coordinates are float64 pixels.

package core

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. X/Y is the top-left corner.
type Rect struct {
	X, Y, Width, Height float64
}

// NewRect builds a rectangle from a corner and a size.
func NewRect(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Position returns the top-left corner.
func (r Rect) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle extent.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the x coordinate just past the rectangle.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate just past the rectangle.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Contains reports whether p lies inside r. The right and bottom edges
// are exclusive, matching the half-open convention used throughout.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersect returns the overlap of two rectangles, or an empty Rect.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Shrink insets the rectangle by p on each side. Width and height are
// clamped at zero so a padding larger than the rect yields an empty one.
func (r Rect) Shrink(p Padding) Rect {
	w := r.Width - p.Left - p.Right
	h := r.Height - p.Top - p.Bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + p.Left, Y: r.Y + p.Top, Width: w, Height: h}
}

// Padding is a per-side inset in pixels.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// Horizontal returns left+right.
func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

// Vertical returns top+bottom.
func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

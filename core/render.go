// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/render.go
// Summary: Render and text-shaping capability interfaces. Widgets draw
// through these so any shell that can fill rectangles and place shaped
// text can host them.

package core

// TextRun is an opaque pre-shaped piece of text. Shells produce runs and
// later consume them in DrawText; widgets only carry them around.
type TextRun interface {
	// Width is the advance width of the run in pixels.
	Width() float64
}

// CellMetrics are the fixed cell dimensions of the shaped font.
type CellMetrics struct {
	// ByteWidth is the width of a two-digit hex byte cell.
	ByteWidth float64
	// CharWidth is the width of a single character cell.
	CharWidth float64
	// LineHeight is the height of one row.
	LineHeight float64
}

// TextShaper shapes and caches the small fixed vocabulary the viewer
// draws: 256 byte values, 256 character glyphs and 16 hex digits.
type TextShaper interface {
	Metrics() CellMetrics
	// Byte returns the "%02X" run for v.
	Byte(v byte) TextRun
	// Char returns the printable glyph for v, or the placeholder dot.
	Char(v byte) TextRun
	// HexDigit returns the run for a single digit, d in [0,16).
	HexDigit(d byte) TextRun
}

// Renderer is the drawing surface handed to Draw.
type Renderer interface {
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, c Color, width float64)
	// DrawText places a shaped run with its top-left at p, clipped to clip.
	DrawText(run TextRun, p Point, c Color, clip Rect)
	// Layer runs fn with drawing clipped to bounds.
	Layer(bounds Rect, fn func(Renderer))
}

// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/viewport.go
// Summary: Single-axis scroll model. Offsets count discrete steps; the
// content extent is measured in pixels. All derived values are computed
// with integer arithmetic where the result is an offset.

package scroll

import "math"

// Viewport describes the scrollable extent of one axis.
//
// Size is the total number of steps in the document along this axis.
// StepSize is the pixel size of one step (a cell edge). ContentSize is
// the pixel extent currently available to show content.
type Viewport struct {
	Offset      int64
	Size        int64
	StepSize    float64
	ContentSize float64
}

// StepsFloor is the number of whole steps that fit in the content area.
func (v Viewport) StepsFloor() int64 {
	if v.StepSize <= 0 {
		return 0
	}
	return int64(math.Floor(v.ContentSize / v.StepSize))
}

// StepsCeil is the number of steps that are at least partially visible.
func (v Viewport) StepsCeil() int64 {
	if v.StepSize <= 0 {
		return 0
	}
	return int64(math.Ceil(v.ContentSize / v.StepSize))
}

// VirtualMaxOffset is the largest offset that still shows a full window
// of content. Never negative.
func (v Viewport) VirtualMaxOffset() int64 {
	m := v.Size - v.StepsFloor()
	if m < 0 {
		return 0
	}
	return m
}

// Fitted clamps Offset into [0, VirtualMaxOffset].
func (v Viewport) Fitted() int64 {
	o := v.Offset
	if o < 0 {
		return 0
	}
	if m := v.VirtualMaxOffset(); o > m {
		return m
	}
	return o
}

// Ratio is the visible fraction of the axis, capped at 1. A degenerate
// axis (no steps, no content) counts as fully visible.
func (v Viewport) Ratio() float64 {
	total := float64(v.Size) * v.StepSize
	if total <= 0 {
		return 1
	}
	r := v.ContentSize / total
	if r > 1 {
		return 1
	}
	return r
}

// FullyVisible reports whether no scrolling is possible on this axis.
func (v Viewport) FullyVisible() bool {
	return v.VirtualMaxOffset() == 0
}

// VirtualSize is the pixel extent of the whole document on this axis.
func (v Viewport) VirtualSize() float64 {
	return float64(v.Size) * v.StepSize
}

// Add returns the viewport scrolled forward by steps, reclamped.
func (v Viewport) Add(steps int64) Viewport {
	v.Offset = v.Fitted() + steps
	v.Offset = v.Fitted()
	return v
}

// Sub returns the viewport scrolled backward by steps, reclamped.
func (v Viewport) Sub(steps int64) Viewport {
	return v.Add(-steps)
}

// WithOffset returns the viewport at the given offset, reclamped.
func (v Viewport) WithOffset(offset int64) Viewport {
	v.Offset = offset
	v.Offset = v.Fitted()
	return v
}

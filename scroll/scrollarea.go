// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/scrollarea.go
// Summary: Coordinates a horizontal and a vertical scrollbar over one
// content area and converts wheel input into step deltas.

package scroll

import (
	"math"
	"runtime"
	"time"

	"github.com/framegrace/hexview/core"
)

// WheelAxisSwap controls whether shift+wheel scrolls the other axis.
type WheelAxisSwap int

const (
	// SwapAuto swaps on shift except on platforms whose toolkit already
	// delivers shift+wheel swapped (macOS).
	SwapAuto WheelAxisSwap = iota
	SwapAlways
	SwapNever
)

func (w WheelAxisSwap) active(mods core.Modifiers) bool {
	switch w {
	case SwapAlways:
		return mods.Shift()
	case SwapNever:
		return false
	default:
		return mods.Shift() && runtime.GOOS != "darwin"
	}
}

// AreaResultKind names the outcome of one Area.Update call.
type AreaResultKind int

const (
	AreaNone AreaResultKind = iota
	// AreaWheel: wheel input changed at least one offset. X and Y carry
	// the new fitted offsets for both axes.
	AreaWheel
	// AreaHorizontal / AreaVertical: the named bar produced Bar.
	AreaHorizontal
	AreaVertical
)

// AreaResult is the outcome of feeding one event to an Area.
type AreaResult struct {
	Kind AreaResultKind
	X, Y int64
	Bar  Result
}

// Area owns the two scrollbars of a scrollable region and the modifier
// state needed to interpret wheel events.
type Area struct {
	h, v      *Bar
	hs, vs    State
	modifiers core.Modifiers

	// Thickness is the bar strip size in pixels.
	Thickness float64
	// Swap selects the shift+wheel axis swap policy.
	Swap WheelAxisSwap
}

// NewArea returns an area with the given bar thickness.
func NewArea(thickness float64) *Area {
	return &Area{
		h:         NewHorizontal(),
		v:         NewVertical(),
		Thickness: thickness,
	}
}

// Modifiers returns the most recently observed modifier set.
func (a *Area) Modifiers() core.Modifiers {
	return a.modifiers
}

// Dragging reports whether either bar has the pointer captured.
func (a *Area) Dragging() bool {
	return a.hs.Pressed() || a.vs.Pressed()
}

// HorizontalBounds is the strip owned by the horizontal bar: the bottom
// edge of bounds, shortened so it never underlaps the vertical bar.
func (a *Area) HorizontalBounds(bounds core.Rect) core.Rect {
	w := bounds.Width - a.Thickness
	if w < 0 {
		w = 0
	}
	return core.Rect{
		X:      bounds.X,
		Y:      bounds.Bottom() - a.Thickness,
		Width:  w,
		Height: a.Thickness,
	}
}

// VerticalBounds is the strip owned by the vertical bar: the right edge
// of bounds at full height.
func (a *Area) VerticalBounds(bounds core.Rect) core.Rect {
	return core.Rect{
		X:      bounds.Right() - a.Thickness,
		Y:      bounds.Y,
		Width:  a.Thickness,
		Height: bounds.Height,
	}
}

// wheelSteps converts one axis of wheel delta into a signed step count.
// Wheel deltas are positive toward the document start, so the sign is
// inverted. Pixel deltas always move at least one step.
func wheelSteps(kind core.WheelDeltaKind, delta, stepSize float64) int64 {
	if delta == 0 {
		return 0
	}
	switch kind {
	case core.WheelPixels:
		if stepSize <= 0 {
			return 0
		}
		steps := int64(math.Abs(delta) / stepSize)
		if steps < 1 {
			steps = 1
		}
		if delta > 0 {
			return -steps
		}
		return steps
	default:
		return -int64(delta)
	}
}

// Update feeds one event to the area. hvp and vvp are the current axis
// viewports; the result never mutates them.
func (a *Area) Update(ev core.Event, bounds core.Rect, hvp, vvp Viewport, now time.Time) AreaResult {
	if m, ok := ev.(core.ModifiersChanged); ok {
		a.modifiers = m.Modifiers
		return AreaResult{}
	}

	if w, ok := ev.(core.Wheel); ok {
		if !bounds.Contains(w.Position) {
			return AreaResult{}
		}
		// The swap applies to line deltas only, before step conversion.
		// Pixel deltas stay on their own axis.
		x, y := w.X, w.Y
		if w.Kind == core.WheelLines && a.Swap.active(a.modifiers) {
			x, y = y, x
		}
		dx := wheelSteps(w.Kind, x, hvp.StepSize)
		dy := wheelSteps(w.Kind, y, vvp.StepSize)
		nh := hvp.Add(dx)
		nv := vvp.Add(dy)
		if nh.Offset != hvp.Fitted() || nv.Offset != vvp.Fitted() {
			return AreaResult{Kind: AreaWheel, X: nh.Offset, Y: nv.Offset}
		}
		return AreaResult{}
	}

	if r := a.h.Update(ev, a.HorizontalBounds(bounds), hvp, &a.hs, now); r.Kind != ResultNone {
		return AreaResult{Kind: AreaHorizontal, Bar: r}
	}
	if r := a.v.Update(ev, a.VerticalBounds(bounds), vvp, &a.vs, now); r.Kind != ResultNone {
		return AreaResult{Kind: AreaVertical, Bar: r}
	}
	return AreaResult{}
}

// Draw paints both bars.
func (a *Area) Draw(r core.Renderer, bounds core.Rect, hvp, vvp Viewport, cat Catalog) {
	hb := a.HorizontalBounds(bounds)
	vb := a.VerticalBounds(bounds)
	a.h.Draw(r, hb, hvp, &a.hs, cat.ScrollbarStyle(a.h.CurrentStatus(hb, hvp, &a.hs)))
	a.v.Draw(r, vb, vvp, &a.vs, cat.ScrollbarStyle(a.v.CurrentStatus(vb, vvp, &a.vs)))
}

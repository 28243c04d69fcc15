// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/scrollbar.go
// Summary: Per-axis scrollbar engine. The engine is stateless geometry
// plus an Update step; the mutable part (grab region, click chain, last
// pointer position) lives in State so a widget can embed two bars.

package scroll

import (
	"time"

	"github.com/framegrace/hexview/core"
)

// MinThumbLength is the smallest thumb the engine will lay out, in pixels.
const MinThumbLength = 10.0

// Orientation selects the scroll axis of a Bar.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// RegionKind names the part of the bar under the pointer.
type RegionKind int

const (
	RegionNone RegionKind = iota
	RegionThumb
	RegionTrackBefore
	RegionTrackAfter
)

// Region is a classified pointer position. For the thumb, Offset is the
// grab point relative to the thumb start; for track regions it is the
// pixel distance from the track start. Both are measured along the
// scroll axis only.
type Region struct {
	Kind   RegionKind
	Offset float64
}

// TrackSide says on which side of the thumb a track press landed.
type TrackSide int

const (
	SideBefore TrackSide = iota
	SideAfter
)

// ResultKind names the outcome of one Update call.
type ResultKind int

const (
	ResultNone ResultKind = iota
	// ThumbGrabbed: the thumb was pressed. Not a viewport change yet.
	ThumbGrabbed
	// ThumbDragged: the pointer moved with the thumb grabbed and the
	// mapped offset changed. Offset carries the new value.
	ThumbDragged
	// TrackClicked: the track was pressed. Offset is the virtual offset
	// the click position maps to; Click and Side describe the press.
	TrackClicked
	// TrackHeld: the track is still pressed. Same payload as
	// TrackClicked, recomputed from the current pointer position. The
	// consumer throttles these with its own timer.
	TrackHeld
	// AppearanceChanged: only the visual status changed; repaint.
	AppearanceChanged
)

// Result is the outcome of feeding one event to a Bar.
type Result struct {
	Kind   ResultKind
	Offset int64
	Click  core.ClickKind
	Side   TrackSide
}

// Status is the visual state of a bar, used only for styling.
type Status int

const (
	StatusActive Status = iota
	StatusHovered
	StatusDragged
	StatusDisabled
)

// State is the mutable part of a scrollbar. The zero value is ready.
type State struct {
	lastRegion  Region
	lastClick   *core.Click
	cursor      core.Point
	cursorKnown bool
	status      Status
}

// Dragging reports whether the thumb is currently grabbed.
func (s *State) Dragging() bool {
	return s.lastRegion.Kind == RegionThumb
}

// Pressed reports whether any part of the bar is currently pressed.
func (s *State) Pressed() bool {
	return s.lastRegion.Kind != RegionNone
}

// Status returns the visual status as of the last Update.
func (s *State) Status() Status {
	return s.status
}

// Bar is a scrollbar engine for one orientation.
type Bar struct {
	orientation Orientation
}

// NewHorizontal returns a bar that scrolls along x.
func NewHorizontal() *Bar {
	return &Bar{orientation: Horizontal}
}

// NewVertical returns a bar that scrolls along y.
func NewVertical() *Bar {
	return &Bar{orientation: Vertical}
}

// Orientation returns the scroll axis of the bar.
func (b *Bar) Orientation() Orientation {
	return b.orientation
}

func (b *Bar) along(p core.Point) float64 {
	if b.orientation == Horizontal {
		return p.X
	}
	return p.Y
}

func (b *Bar) length(r core.Rect) float64 {
	if b.orientation == Horizontal {
		return r.Width
	}
	return r.Height
}

func (b *Bar) start(r core.Rect) float64 {
	if b.orientation == Horizontal {
		return r.X
	}
	return r.Y
}

func (b *Bar) segment(track core.Rect, offset, length float64) core.Rect {
	if b.orientation == Horizontal {
		return core.Rect{X: track.X + offset, Y: track.Y, Width: length, Height: track.Height}
	}
	return core.Rect{X: track.X, Y: track.Y + offset, Width: track.Width, Height: length}
}

// Layout computes the track and thumb rectangles inside bounds. ok is
// false when bounds cannot hold a bar at all.
func (b *Bar) Layout(bounds core.Rect, vp Viewport) (track, thumb core.Rect, ok bool) {
	if bounds.Empty() {
		return bounds, core.Rect{}, false
	}
	track = bounds
	trackLen := b.length(track)
	thumbLen := trackLen * vp.Ratio()
	if thumbLen < MinThumbLength {
		thumbLen = MinThumbLength
	}
	if thumbLen > trackLen {
		thumbLen = trackLen
	}
	visualMax := trackLen - thumbLen
	var visual float64
	if m := vp.VirtualMaxOffset(); m > 0 {
		visual = visualMax * float64(vp.Fitted()) / float64(m)
	}
	return track, b.segment(track, visual, thumbLen), true
}

// region classifies a pointer along the scroll axis only; the cross axis
// is irrelevant so held track repeats keep working when the pointer
// drifts off the strip.
func (b *Bar) region(p core.Point, track, thumb core.Rect) Region {
	c := b.along(p)
	switch {
	case c < b.start(thumb):
		return Region{Kind: RegionTrackBefore, Offset: c - b.start(track)}
	case c < b.start(thumb)+b.length(thumb):
		return Region{Kind: RegionThumb, Offset: c - b.start(thumb)}
	default:
		return Region{Kind: RegionTrackAfter, Offset: c - b.start(track)}
	}
}

func (b *Bar) maxVisualRange(track, thumb core.Rect) float64 {
	r := b.length(track) - b.length(thumb)
	if r < 0 {
		return 0
	}
	return r
}

// virtualFromVisual maps a visual track offset to a viewport offset.
// Integer arithmetic avoids float rounding drift across the mapping.
func (b *Bar) virtualFromVisual(visual float64, track, thumb core.Rect, vp Viewport) int64 {
	scrollMax := vp.VirtualMaxOffset()
	rng := int64(b.maxVisualRange(track, thumb))
	if rng < 1 {
		rng = 1
	}
	v := int64(visual)
	if v < 0 {
		v = 0
	}
	offset := scrollMax * v / rng
	if offset > scrollMax {
		return scrollMax
	}
	return offset
}

func (b *Bar) thumbOffsetFromGrab(p core.Point, track, thumb core.Rect, grab float64) float64 {
	visual := b.along(p) - b.start(track) - grab
	if visual < 0 {
		return 0
	}
	if m := b.maxVisualRange(track, thumb); visual > m {
		return m
	}
	return visual
}

func (b *Bar) trackClickOffset(p core.Point, track core.Rect) float64 {
	visual := b.along(p) - b.start(track)
	if visual < 0 {
		return 0
	}
	if m := b.length(track) - 1; visual > m {
		return m
	}
	return visual
}

func normalizeTouch(ev core.Event) core.Event {
	t, ok := ev.(core.Touch)
	if !ok {
		return ev
	}
	switch t.Phase {
	case core.TouchPressed:
		return core.PointerPressed{Position: t.Position, Button: core.ButtonLeft}
	case core.TouchMoved:
		return core.PointerMoved{Position: t.Position}
	default:
		return core.PointerReleased{Position: t.Position, Button: core.ButtonLeft}
	}
}

// Update feeds one event to the bar. bounds is the strip the bar owns;
// vp is the current axis viewport. now timestamps clicks.
func (b *Bar) Update(ev core.Event, bounds core.Rect, vp Viewport, st *State, now time.Time) Result {
	ev = normalizeTouch(ev)

	switch ev := ev.(type) {
	case core.PointerReleased:
		if ev.Button == core.ButtonLeft {
			st.lastRegion = Region{}
		}
		st.cursor = ev.Position
		st.cursorKnown = true
	case core.PointerPressed:
		st.cursor = ev.Position
		st.cursorKnown = true
	case core.PointerMoved:
		st.cursor = ev.Position
		st.cursorKnown = true
	}

	result := b.step(ev, bounds, vp, st, now)

	status := b.deriveStatus(bounds, vp, st)
	if status != st.status && result.Kind == ResultNone {
		result = Result{Kind: AppearanceChanged}
	}
	st.status = status
	return result
}

func (b *Bar) step(ev core.Event, bounds core.Rect, vp Viewport, st *State, now time.Time) Result {
	if vp.FullyVisible() || !st.cursorKnown {
		return Result{}
	}
	track, thumb, ok := b.Layout(bounds, vp)
	if !ok {
		return Result{}
	}
	hovered := track.Contains(st.cursor) || thumb.Contains(st.cursor)

	if p, isPress := ev.(core.PointerPressed); isPress && p.Button == core.ButtonLeft && hovered {
		region := b.region(p.Position, track, thumb)
		st.lastRegion = region
		click := core.NewClick(p.Position, now, st.lastClick)
		st.lastClick = &click

		switch region.Kind {
		case RegionThumb:
			return Result{Kind: ThumbGrabbed, Click: click.Kind}
		case RegionTrackBefore:
			return Result{
				Kind:   TrackClicked,
				Click:  click.Kind,
				Side:   SideBefore,
				Offset: b.virtualFromVisual(region.Offset, track, thumb, vp),
			}
		default:
			return Result{
				Kind:   TrackClicked,
				Click:  click.Kind,
				Side:   SideAfter,
				Offset: b.virtualFromVisual(region.Offset, track, thumb, vp),
			}
		}
	}

	if st.lastRegion.Kind == RegionNone {
		return Result{}
	}

	region := b.region(st.cursor, track, thumb)

	held := func(side TrackSide) Result {
		visual := b.trackClickOffset(st.cursor, track)
		kind := core.ClickSingle
		if st.lastClick != nil {
			kind = st.lastClick.Kind
		}
		return Result{
			Kind:   TrackHeld,
			Click:  kind,
			Side:   side,
			Offset: b.virtualFromVisual(visual, track, thumb, vp),
		}
	}

	switch st.lastRegion.Kind {
	case RegionThumb:
		if _, moved := ev.(core.PointerMoved); moved {
			visual := b.thumbOffsetFromGrab(st.cursor, track, thumb, st.lastRegion.Offset)
			offset := b.virtualFromVisual(visual, track, thumb, vp)
			if offset != vp.Offset {
				return Result{Kind: ThumbDragged, Offset: offset}
			}
		}
	case RegionTrackBefore:
		if region.Kind == RegionTrackBefore {
			return held(SideBefore)
		}
	case RegionTrackAfter:
		if region.Kind == RegionTrackAfter {
			return held(SideAfter)
		}
	}
	return Result{}
}

// CurrentStatus derives the style status without mutating state.
func (b *Bar) CurrentStatus(bounds core.Rect, vp Viewport, st *State) Status {
	return b.deriveStatus(bounds, vp, st)
}

func (b *Bar) deriveStatus(bounds core.Rect, vp Viewport, st *State) Status {
	if vp.FullyVisible() {
		return StatusDisabled
	}
	switch {
	case st.Pressed():
		return StatusDragged
	case st.cursorKnown:
		track, thumb, ok := b.Layout(bounds, vp)
		if ok && (track.Contains(st.cursor) || thumb.Contains(st.cursor)) {
			return StatusHovered
		}
	}
	return StatusActive
}

// Style are the resolved colors for drawing one bar.
type Style struct {
	Track       core.Color
	TrackBorder core.Color
	Thumb       core.Color
	ThumbBorder core.Color
}

// Catalog resolves bar styles per status. Themes implement it.
type Catalog interface {
	ScrollbarStyle(Status) Style
}

// Draw paints the bar into bounds with the given style.
func (b *Bar) Draw(r core.Renderer, bounds core.Rect, vp Viewport, st *State, style Style) {
	track, thumb, ok := b.Layout(bounds, vp)
	if !ok {
		return
	}
	r.FillRect(track, style.Track)
	if !style.TrackBorder.Transparent() {
		r.StrokeRect(track, style.TrackBorder, 1)
	}
	if vp.FullyVisible() {
		return
	}
	r.FillRect(thumb, style.Thumb)
	if !style.ThumbBorder.Transparent() {
		r.StrokeRect(thumb, style.ThumbBorder, 1)
	}
}

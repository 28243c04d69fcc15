// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hexview/viewer.go
// Summary: The hex viewer widget: a virtualized, scrollable view of
// binary data with a cursor, selections and per-cell styling. All sizes
// are handled through the viewport, so sources of virtually any size
// can be displayed.

package hexview

import (
	"fmt"
	"math"
	"time"

	"github.com/framegrace/hexview/core"
	"github.com/framegrace/hexview/scroll"
)

const (
	defaultVirtualColumns = 32
	scrollbarThickness    = 10.0
	trackRepeatInterval   = 100 * time.Millisecond
)

type optI64 struct {
	v  int64
	ok bool
}

type scrollOffset struct {
	x, y int64
}

// Viewer is a widget for viewing and interacting with binary data of
// virtually any size. It renders through a core.Renderer, shapes text
// through a core.TextShaper and reports state changes as Intents; it is
// agnostic of the shell hosting it.
type Viewer struct {
	content *Content
	shaper  core.TextShaper

	cursor         int64
	virtualColumns int64
	horizontalStep Step
	padding        PaddingSettings
	hNavigation    Navigation
	vNavigation    Navigation
	styler         *ContentStyler

	area *scroll.Area

	focused  bool
	dragging bool
	// startIndex anchors a current or potential selection. It survives
	// button release on purpose: a later shift interaction continues
	// from it.
	startIndex *Index

	hoveredColumn optI64
	hoveredRow    optI64

	lastReportedViewport   Viewport
	lastReportedViewportID uint64
	hasReportedViewport    bool
	lastReportedSelection  *Selection

	trackTimer *core.Timer
}

// New creates a viewer over content, shaping text with shaper.
func New(content *Content, shaper core.TextShaper) *Viewer {
	return &Viewer{
		content:        content,
		shaper:         shaper,
		virtualColumns: defaultVirtualColumns,
		padding:        CompactPadding(),
		hNavigation:    Lazy(),
		vNavigation:    Lazy(),
		area:           scroll.NewArea(scrollbarThickness),
	}
}

// SetCursor places the cursor at an absolute offset into the content.
func (v *Viewer) SetCursor(offset uint64) {
	v.cursor = int64(offset)
}

// Cursor returns the absolute cursor offset.
func (v *Viewer) Cursor() uint64 {
	return uint64(v.cursor)
}

// SetVirtualColumns sets the grid width. If this makes the content too
// wide a horizontal scrollbar appears.
func (v *Viewer) SetVirtualColumns(columns uint64) {
	if columns < 1 {
		columns = 1
	}
	v.virtualColumns = int64(columns)
}

// SetHorizontalStep controls whether horizontal scrolling moves per
// column or per pixel.
func (v *Viewer) SetHorizontalStep(step Step) {
	v.horizontalStep = step
}

// SetPadding sets the padding settings.
func (v *Viewer) SetPadding(settings PaddingSettings) {
	v.padding = settings
}

// SetHorizontalNavigation controls how implicit horizontal scrolls, such
// as the viewport following the cursor, behave.
func (v *Viewer) SetHorizontalNavigation(n Navigation) {
	v.hNavigation = n
}

// SetVerticalNavigation controls how implicit vertical scrolls behave.
func (v *Viewer) SetVerticalNavigation(n Navigation) {
	v.vNavigation = n
}

// SetWheelAxisSwap sets the shift+wheel axis swap policy.
func (v *Viewer) SetWheelAxisSwap(policy scroll.WheelAxisSwap) {
	v.area.Swap = policy
}

// SetStyler sets the ContentStyler used to color bytes and chars. nil
// disables per-cell styling.
func (v *Viewer) SetStyler(s *ContentStyler) {
	v.styler = s
}

// Focused reports whether the viewer accepts keyboard input.
func (v *Viewer) Focused() bool {
	return v.focused
}

func (v *Viewer) cursorCanDecrease() bool {
	return v.cursor > 0
}

func (v *Viewer) cursorCanIncrease() bool {
	return v.cursor+1 < v.content.sourceSize
}

func (v *Viewer) moveCursorLeft() (int64, bool) {
	return v.cursor - 1, v.cursorCanDecrease()
}

func (v *Viewer) moveCursorRight() (int64, bool) {
	return v.cursor + 1, v.cursorCanIncrease()
}

func (v *Viewer) moveCursorUp() (int64, bool) {
	return max(v.cursor-v.virtualColumns, 0), v.cursorCanDecrease()
}

func (v *Viewer) moveCursorDown() (int64, bool) {
	return min(v.cursor+v.virtualColumns, max(v.content.sourceSize, 1)-1),
		v.cursorCanIncrease()
}

func (v *Viewer) moveCursorPageUp(pageSize int64) (int64, bool) {
	return max(v.cursor-pageSize*v.virtualColumns, 0), v.cursorCanDecrease()
}

func (v *Viewer) moveCursorPageDown(pageSize int64) (int64, bool) {
	return min(v.cursor+pageSize*v.virtualColumns, max(v.content.sourceSize, 1)-1),
		v.cursorCanIncrease()
}

func (v *Viewer) moveCursorTop() (int64, bool) {
	return 0, v.cursorCanDecrease()
}

func (v *Viewer) moveCursorBottom() (int64, bool) {
	return max(v.content.sourceSize-1, 0), v.cursorCanIncrease()
}

func (v *Viewer) createLayout(metrics core.CellMetrics, bounds core.Rect, shiftX float64) layout {
	padding := resolvePadding(v.padding, metrics)
	dim := newLayoutDimensions(
		padding,
		v.virtualColumns,
		metrics,
		v.area.Thickness,
		v.area.Thickness,
		v.content.sourceSize,
		bounds.Size(),
	)
	return newLayout(dim, padding, v.content.sourceSize, v.virtualColumns, metrics, shiftX, bounds)
}

// xViewport builds the horizontal axis model. With cell stepping the
// axis counts columns; with pixel stepping it counts pixels of the
// unpadded byte area and the offset folds the sub-cell shift back in.
func (v *Viewer) xViewport(l *layout) scroll.Viewport {
	if v.horizontalStep == StepPixel {
		return scroll.Viewport{
			Offset: int64(math.Round(
				float64(v.content.viewport.X)*l.byteCellWidth + l.byteShift)),
			Size:        int64(math.Ceil(l.dim.byteAreaWidth - l.padding.byteAreaPadding().Horizontal())),
			StepSize:    1,
			ContentSize: math.Ceil(l.byteAreaContent().Width),
		}
	}
	return scroll.Viewport{
		Offset:      v.content.viewport.X,
		Size:        v.virtualColumns,
		StepSize:    l.byteCellWidth,
		ContentSize: math.Ceil(l.byteAreaContent().Width),
	}
}

func (v *Viewer) yViewport(l *layout) scroll.Viewport {
	return scroll.Viewport{
		Offset:      v.content.viewport.Y,
		Size:        l.virtualRowsCeil(),
		StepSize:    l.rowHeight(),
		ContentSize: math.Ceil(l.byteAreaContent().Height),
	}
}

// viewportOffsetX translates a horizontal scroll offset back into a
// column and sub-cell shift. Switching from pixel to cell stepping
// silently drops the shift and aligns the first visible byte to the
// grid.
func (v *Viewer) viewportOffsetX(so scrollOffset, l *layout) (int64, float64) {
	if v.horizontalStep == StepPixel {
		x := int64(float64(so.x) / l.byteCellWidth)
		shift := math.Mod(float64(so.x), l.byteCellWidth) / l.byteCellWidth
		return x, shift
	}
	return so.x, 0
}

func (v *Viewer) createViewport(l *layout, x, y int64, shiftX float64) Viewport {
	columns := max(min(v.virtualColumns-x, l.viewportColumnCountCeil()+1), 1)
	rows := max(min(l.virtualRowsCeil()-y, l.viewportRowCountCeil()), 0)

	return Viewport{
		X:              x,
		Y:              y,
		Columns:        columns,
		Rows:           rows,
		ShiftX:         shiftX,
		VirtualColumns: v.virtualColumns,
	}
}

func (v *Viewer) viewportFromScrollOffset(l *layout, so scrollOffset) Viewport {
	x, shiftX := v.viewportOffsetX(so, l)
	vp := v.createViewport(l, x, so.y, shiftX)
	return vp
}

// cellToAbsolute maps a viewport cell to an absolute index, clamping
// positions past the end of the source.
func (v *Viewer) cellToAbsolute(cell Cell) Index {
	offset := (v.content.viewport.Y+cell.Row)*v.virtualColumns +
		v.content.viewport.X + cell.Col

	if offset < v.content.sourceSize {
		return Index{Offset: offset, Side: cell.Side}
	}
	return Index{Offset: max(v.content.sourceSize-1, 1), Side: SideRight}
}

func (v *Viewer) index(l *layout, loc Location) (Index, bool) {
	cell, ok := loc.approximateCell(v.virtualColumns, l.viewportRowCountCeil())
	if !ok {
		return Index{}, false
	}
	return v.cellToAbsolute(cell), true
}

func (v *Viewer) rowFullyInViewport(row int64, l *layout) bool {
	vp := v.content.viewport
	yEnd := vp.Y + min(vp.Rows, l.viewportRowCountFloor())
	return row >= vp.Y && row < yEnd
}

func (v *Viewer) columnFullyInViewport(col int64, l *layout) bool {
	vp := v.content.viewport
	xEnd := vp.X + min(vp.Columns, l.viewportColumnCountFloor())
	return col >= vp.X && col < xEnd && !(col == vp.X && vp.ShiftX > 0)
}

// scrollViewport computes the viewport that brings the target offset
// into view under the given per-axis policies. Returns false when the
// viewport would not change.
func (v *Viewer) scrollViewport(target int64, l *layout, h, vert scrollMode) (Viewport, bool) {
	targetColumn := target % v.virtualColumns
	targetRow := target / v.virtualColumns

	vp := v.content.viewport
	var shiftX float64

	var column int64
	if h.kind == NavigationLazy {
		if v.columnFullyInViewport(targetColumn, l) {
			shiftX = vp.ShiftX
			column = vp.X
		} else if h.lazy == lazyStart {
			column = targetColumn
		} else {
			column = targetColumn - l.viewportColumnCountFloor() + 1
		}
	} else {
		switch h.alignment {
		case AlignStart:
			column = targetColumn
		case AlignCenter:
			column = targetColumn - (l.viewportColumnCountFloor()+1)/2
		default:
			column = targetColumn - l.viewportColumnCountFloor() + 1
		}
	}
	column = max(min(column, l.maxViewportX()), 0)

	var row int64
	if vert.kind == NavigationLazy {
		if v.rowFullyInViewport(targetRow, l) {
			row = vp.Y
		} else if vert.lazy == lazyStart {
			row = targetRow
		} else {
			row = targetRow - l.viewportRowCountFloor() + 1
		}
	} else {
		switch vert.alignment {
		case AlignStart:
			row = targetRow
		case AlignCenter:
			row = targetRow - (l.viewportRowCountFloor()+1)/2
		default:
			row = targetRow - l.viewportRowCountFloor() + 1
		}
	}
	row = max(min(row, l.maxViewportY()), 0)

	if column == vp.X && shiftX == vp.ShiftX && row == vp.Y {
		return Viewport{}, false
	}
	return v.createViewport(l, column, row, shiftX), true
}

func (v *Viewer) startIndexOrSet() Index {
	if v.startIndex != nil {
		return *v.startIndex
	}
	idx := Index{Offset: v.cursor, Side: SideNone}
	v.startIndex = &idx
	return idx
}

func selectionsEqual(a, b *Selection) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (v *Viewer) publishSelection(sel *Selection, intents *[]Intent) {
	if !selectionsEqual(v.lastReportedSelection, sel) {
		*intents = append(*intents, SelectionChanged{Selection: sel}, Redraw{})
		v.lastReportedSelection = sel
	}
}

func (v *Viewer) publishCursorMoved(cursor int64, intents *[]Intent) {
	*intents = append(*intents, CursorMoved{Offset: uint64(cursor)}, Redraw{})
}

func (v *Viewer) publishScrolled(vp Viewport, intents *[]Intent) {
	if vp != v.content.viewport && !v.alreadyReported(vp) {
		*intents = append(*intents, Scrolled{Viewport: vp}, Redraw{})
		v.recordReported(vp)
	}
}

func (v *Viewer) alreadyReported(vp Viewport) bool {
	return v.hasReportedViewport &&
		v.lastReportedViewport == vp &&
		v.lastReportedViewportID == v.content.id
}

func (v *Viewer) recordReported(vp Viewport) {
	v.lastReportedViewport = vp
	v.lastReportedViewportID = v.content.id
	v.hasReportedViewport = true
}

// checkState recomputes the layout and reports a resized logical
// viewport when the fitted scroll state no longer matches the content's
// viewport. Update may be called several times between two Content
// updates, hence the dedup.
func (v *Viewer) checkState(metrics core.CellMetrics, bounds core.Rect, intents *[]Intent) layout {
	var shiftX float64
	if v.horizontalStep == StepPixel {
		shiftX = v.content.viewport.ShiftX
	}

	l := v.createLayout(metrics, bounds, shiftX)

	so := scrollOffset{
		x: v.xViewport(&l).Fitted(),
		y: v.yViewport(&l).Fitted(),
	}
	vp := v.viewportFromScrollOffset(&l, so)

	if vp != v.content.viewport && !v.alreadyReported(vp) {
		*intents = append(*intents, ViewportResized{Viewport: vp}, Redraw{})
		v.recordReported(vp)
	}
	return l
}

// handleScrollResult turns a scroll area result into a new scroll offset
// and/or redraw intents. Track holds repeat on a deadline timer; the
// repeat stops once the viewport has caught up with the press position.
func (v *Viewer) handleScrollResult(
	result scroll.AreaResult,
	l *layout,
	xvp, yvp scroll.Viewport,
	now time.Time,
	intents *[]Intent,
) (scrollOffset, bool) {
	horizontalTrack := func(kind core.ClickKind, side scroll.TrackSide, offset int64) int64 {
		if kind == core.ClickDouble {
			return offset
		}
		page := xvp.StepsFloor()
		if side == scroll.SideBefore {
			return xvp.Sub(page).Offset
		}
		return xvp.Add(page).Offset
	}

	verticalTrack := func(kind core.ClickKind, side scroll.TrackSide, offset int64) int64 {
		if kind == core.ClickDouble {
			return offset
		}
		page := l.viewportRowCountFloor()
		if side == scroll.SideBefore {
			return max(yvp.Offset-page, 0)
		}
		return min(yvp.Offset+page, yvp.VirtualMaxOffset())
	}

	trackHeld := func(side scroll.TrackSide, offset int64, vp scroll.Viewport, f func() scrollOffset) (scrollOffset, bool) {
		if v.trackTimer == nil {
			return scrollOffset{}, false
		}
		if side == scroll.SideBefore && offset < vp.Offset ||
			side == scroll.SideAfter && offset > vp.Offset {
			fired := v.trackTimer.Test(now)
			*intents = append(*intents, RedrawAt{At: v.trackTimer.Target()})
			if fired {
				return f(), true
			}
		}
		return scrollOffset{}, false
	}

	switch result.Kind {
	case scroll.AreaWheel:
		*intents = append(*intents, Redraw{})
		return scrollOffset{x: result.X, y: result.Y}, true

	case scroll.AreaHorizontal:
		r := result.Bar
		switch r.Kind {
		case scroll.ThumbDragged:
			*intents = append(*intents, Redraw{})
			return scrollOffset{x: r.Offset, y: yvp.Offset}, true
		case scroll.TrackClicked:
			*intents = append(*intents, Redraw{})
			t := core.NewTimer(now, trackRepeatInterval)
			v.trackTimer = &t
			return scrollOffset{x: horizontalTrack(r.Click, r.Side, r.Offset), y: yvp.Offset}, true
		case scroll.TrackHeld:
			return trackHeld(r.Side, r.Offset, xvp, func() scrollOffset {
				return scrollOffset{x: horizontalTrack(r.Click, r.Side, r.Offset), y: yvp.Offset}
			})
		case scroll.ThumbGrabbed, scroll.AppearanceChanged:
			*intents = append(*intents, Redraw{})
		}

	case scroll.AreaVertical:
		r := result.Bar
		switch r.Kind {
		case scroll.ThumbDragged:
			*intents = append(*intents, Redraw{})
			return scrollOffset{x: xvp.Offset, y: r.Offset}, true
		case scroll.TrackClicked:
			*intents = append(*intents, Redraw{})
			t := core.NewTimer(now, trackRepeatInterval)
			v.trackTimer = &t
			return scrollOffset{x: xvp.Offset, y: verticalTrack(r.Click, r.Side, r.Offset)}, true
		case scroll.TrackHeld:
			return trackHeld(r.Side, r.Offset, yvp, func() scrollOffset {
				return scrollOffset{x: xvp.Offset, y: verticalTrack(r.Click, r.Side, r.Offset)}
			})
		case scroll.ThumbGrabbed, scroll.AppearanceChanged:
			*intents = append(*intents, Redraw{})
		}
	}
	return scrollOffset{}, false
}

// Update feeds one event to the viewer and returns the intents it
// produced. bounds is the rectangle the widget occupies; now timestamps
// clicks and repeat timers.
func (v *Viewer) Update(ev core.Event, bounds core.Rect, now time.Time) []Intent {
	var intents []Intent

	metrics := v.shaper.Metrics()
	l := v.checkState(metrics, bounds, &intents)

	xvp := v.xViewport(&l)
	yvp := v.yViewport(&l)

	result := v.area.Update(ev, l.scrollAreaBounds(), xvp, yvp, now)
	if so, ok := v.handleScrollResult(result, &l, xvp, yvp, now, &intents); ok {
		v.publishScrolled(v.viewportFromScrollOffset(&l, so), &intents)
		return intents
	}

	// The event wasn't handled by the scroll area; do our own processing.
	switch ev := ev.(type) {
	case core.PointerPressed:
		if ev.Button != core.ButtonLeft {
			break
		}
		if !bounds.Contains(ev.Position) {
			// Focus is lost on a press anywhere outside the widget.
			v.focused = false
			break
		}
		v.focused = true

		loc := l.pointerLocation(ev.Position)
		idx, ok := v.index(&l, loc)
		if !ok {
			break
		}
		if v.area.Modifiers().Shift() {
			// Continue a previously created selection from its start.
			start := v.startIndexOrSet()
			v.publishSelection(makeSelection(start, idx, idx.Offset), &intents)
		} else {
			if idx.Offset != v.cursor {
				v.publishCursorMoved(idx.Offset, &intents)
			}
			v.cursor = idx.Offset

			// Start a drag interaction, even though the user may not
			// intend to drag. We'll cancel the drag later in that case.
			v.startIndex = &idx
		}
		v.dragging = true

	case core.PointerReleased:
		if ev.Button != core.ButtonLeft {
			break
		}
		// startIndex is kept on purpose: if a selection was dragged we
		// preserve where it started so SHIFT can continue it. A plain
		// click keeps the clicked side for the same reason.
		v.dragging = false

	case core.PointerMoved:
		if !bounds.Contains(ev.Position) {
			break
		}
		loc := l.pointerLocation(ev.Position)

		if v.dragging && v.startIndex != nil {
			if idx, ok := v.index(&l, loc); ok {
				v.publishSelection(makeSelection(*v.startIndex, idx, idx.Offset), &intents)
			}
		}

		column, okCol := loc.column()
		hovered := optI64{v: column, ok: okCol}
		if hovered != v.hoveredColumn {
			v.hoveredColumn = hovered
			intents = append(intents, Redraw{})
		}

		row, okRow := loc.row()
		hoveredRow := optI64{v: row, ok: okRow}
		if hoveredRow != v.hoveredRow {
			v.hoveredRow = hoveredRow
			intents = append(intents, Redraw{})
		}

	case core.KeyPressed:
		if !v.focused {
			break
		}
		return v.updateKey(ev, &l, intents)

	case core.Touch:
		intents = append(intents, v.Update(touchToPointer(ev), bounds, now)...)
	}

	return intents
}

func touchToPointer(t core.Touch) core.Event {
	switch t.Phase {
	case core.TouchPressed:
		return core.PointerPressed{Position: t.Position, Button: core.ButtonLeft}
	case core.TouchMoved:
		return core.PointerMoved{Position: t.Position}
	default:
		return core.PointerReleased{Position: t.Position, Button: core.ButtonLeft}
	}
}

func (v *Viewer) updateKey(ev core.KeyPressed, l *layout, intents []Intent) []Intent {
	var newCursor int64
	var can bool

	switch ev.Key {
	case core.KeyLeft:
		newCursor, can = v.moveCursorLeft()
	case core.KeyRight:
		newCursor, can = v.moveCursorRight()
	case core.KeyUp:
		newCursor, can = v.moveCursorUp()
	case core.KeyDown:
		newCursor, can = v.moveCursorDown()
	case core.KeyPageUp:
		newCursor, can = v.moveCursorPageUp(l.viewportRowCountFloor())
	case core.KeyPageDown:
		newCursor, can = v.moveCursorPageDown(l.viewportRowCountFloor())
	case core.KeyHome:
		newCursor, can = v.moveCursorTop()
	case core.KeyEnd:
		newCursor, can = v.moveCursorBottom()
	case core.KeyEscape:
		// Escape cancels the selection without moving the cursor.
		v.startIndex = nil
		v.publishSelection(nil, &intents)
		return intents
	default:
		return intents
	}

	if ev.Modifiers.Shift() {
		if can {
			start := v.startIndexOrSet()
			newIndex := Index{Offset: newCursor, Side: SideNone}
			v.publishSelection(makeSelection(start, newIndex, newCursor), &intents)
			v.cursor = newCursor
		}
	} else if can {
		v.startIndex = nil
		v.publishCursorMoved(newCursor, &intents)
		v.cursor = newCursor
	} else {
		// The cursor is already at the start or end of the document and
		// a movement key was pressed without shift.
		v.startIndex = nil
		v.publishSelection(nil, &intents)
	}

	getScroll := func(n Navigation) scrollMode {
		if n.Kind == NavigationLazy {
			lazy := lazyEnd
			switch ev.Key {
			case core.KeyLeft, core.KeyUp, core.KeyPageUp:
				lazy = lazyStart
			}
			return scrollMode{kind: NavigationLazy, lazy: lazy}
		}
		return scrollMode{kind: NavigationAligned, alignment: n.Alignment}
	}

	if vp, changed := v.scrollViewport(
		v.cursor, l, getScroll(v.hNavigation), getScroll(v.vNavigation),
	); changed {
		v.publishScrolled(vp, &intents)
	}
	return intents
}

// Draw paints the viewer into bounds.
func (v *Viewer) Draw(r core.Renderer, cat Catalog, bounds core.Rect) {
	metrics := v.shaper.Metrics()
	l := v.createLayout(metrics, bounds, v.content.viewport.ShiftX)
	style := cat.ViewerStyle(StatusActive)

	xvp := v.xViewport(&l)
	yvp := v.yViewport(&l)

	// Background of all headers and the address area.
	r.FillRect(l.headersBackground(), style.HeaderBackground)
	r.FillRect(l.addressArea, style.HeaderBackground)

	// Byte area header.
	r.Layer(l.byteAreaHeader, func(r core.Renderer) {
		if v.hoveredColumn.ok {
			r.FillRect(l.byteHeaderCell(v.hoveredColumn.v), style.HeaderHover)
		}
		for col := int64(0); col < v.content.viewport.Columns; col++ {
			colVal := (v.content.viewport.X + col) % 256

			var run core.TextRun
			if colVal < 0x10 {
				run = v.shaper.HexDigit(byte(colVal))
			} else {
				run = v.shaper.Byte(byte(colVal))
			}
			r.DrawText(run, l.byteHeaderTextPosition(col, colVal), style.HeaderText, l.byteAreaHeader)
		}
	})

	// Char area header. There is only space for one char per column, so
	// just the last hex digit is drawn.
	r.Layer(l.charAreaHeader, func(r core.Renderer) {
		if v.hoveredColumn.ok {
			r.FillRect(l.charHeaderCell(v.hoveredColumn.v), style.HeaderHover)
		}
		for col := int64(0); col < v.content.viewport.Columns; col++ {
			colVal := (v.content.viewport.X + col) % 16
			r.DrawText(v.shaper.HexDigit(byte(colVal)), l.charHeaderTextPosition(col), style.HeaderText, l.charAreaHeader)
		}
	})

	// Address area.
	r.Layer(l.addressArea, func(r core.Renderer) {
		if v.hoveredRow.ok && yvp.Offset+v.hoveredRow.v < yvp.Size {
			r.FillRect(l.addressAreaCell(v.hoveredRow.v), style.HeaderHover)
		}
		firstAddress := v.content.viewport.Y * v.virtualColumns
		fill := len(fmt.Sprintf("%d", v.content.sourceSize))
		contentBounds := l.addressAreaContent()

		for row := int64(0); row < v.content.viewport.Rows; row++ {
			address := firstAddress + row*v.virtualColumns
			addressStr := fmt.Sprintf("%0*X", fill, address)

			for i := 0; i < len(addressStr); i++ {
				r.DrawText(
					v.shaper.Char(addressStr[i]),
					l.addressAreaDigitPosition(int64(i), row),
					style.HeaderText,
					contentBounds,
				)
			}
		}
	})

	drawContent := func(
		area, contentBounds core.Rect,
		cell func(col, row int64) core.Rect,
		textPosition func(col, row int64) core.Point,
		run func(byte) core.TextRun,
	) {
		r.FillRect(area, style.Background)

		r.Layer(contentBounds, func(r core.Renderer) {
			v.content.Each(func(item Item) bool {
				if v.styler != nil {
					if bg := v.styler.backgroundColor(int(item.ViewportOffset)); bg != nil {
						r.FillRect(cell(item.Column, item.Row), *bg)
					}
				}
				color := style.Text
				if v.styler != nil {
					if tc := v.styler.textColor(int(item.ViewportOffset)); tc != nil {
						color = *tc
					}
				}
				r.DrawText(run(item.Value), textPosition(item.Column, item.Row), color, contentBounds)
				return true
			})

			// The cursor.
			if v.cursor >= 0 {
				if col, row, ok := v.content.viewport.Contains(uint64(v.cursor)); ok {
					r.StrokeRect(cell(col, row), style.Text, 1)
				}
			}
		})
	}

	if v.content.viewport.VirtualColumns != 0 {
		drawContent(l.byteArea, l.byteAreaContent(), l.byteCell, l.byteTextPosition, v.shaper.Byte)
		drawContent(l.charArea, l.charAreaContent(), l.charCell, l.charTextPosition, v.shaper.Char)
	}

	// The scrollbars sit next to the content rather than hovering over
	// it, and are drawn last.
	v.area.Draw(r, l.scrollAreaBounds(), xvp, yvp, cat)

	r.StrokeRect(bounds, style.Border, 1)
}

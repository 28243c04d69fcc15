package hexview

import (
	"math"
	"testing"

	"github.com/framegrace/hexview/core"
)

// testMetrics gives round numbers: compact paddings resolve to
// header 6/6, content 6/6, address 12/12, byte area 6/6, char area 5/11,
// data vertical 4, byte cell 6, char cell 1. Byte cells are 32px wide,
// char cells 12px, rows 28px tall.
var testMetrics = core.CellMetrics{ByteWidth: 20, CharWidth: 10, LineHeight: 20}

// testLayout builds a layout for 16 columns over a 1000 byte source in
// bounds that fit exactly: no width division, 8 full rows.
func testLayout(t *testing.T, bounds core.Rect) layout {
	t.Helper()
	padding := resolvePadding(CompactPadding(), testMetrics)
	dim := newLayoutDimensions(padding, 16, testMetrics, 10, 10, 1000, bounds.Size())
	return newLayout(dim, padding, 1000, 16, testMetrics, 0, bounds)
}

var exactBounds = core.Rect{Width: 806, Height: 278}

func TestLayoutAreas(t *testing.T) {
	l := testLayout(t, exactBounds)

	want := []struct {
		name string
		got  core.Rect
		rect core.Rect
	}{
		{"topLeft", l.topLeft, core.Rect{X: 0, Y: 0, Width: 64, Height: 32}},
		{"byteAreaHeader", l.byteAreaHeader, core.Rect{X: 64, Y: 0, Width: 524, Height: 32}},
		{"charAreaHeader", l.charAreaHeader, core.Rect{X: 588, Y: 0, Width: 208, Height: 32}},
		{"topRight", l.topRight, core.Rect{X: 796, Y: 0, Width: 10, Height: 32}},
		{"addressArea", l.addressArea, core.Rect{X: 0, Y: 32, Width: 64, Height: 236}},
		{"byteArea", l.byteArea, core.Rect{X: 64, Y: 32, Width: 524, Height: 236}},
		{"charArea", l.charArea, core.Rect{X: 588, Y: 32, Width: 208, Height: 236}},
	}
	for _, tt := range want {
		if tt.got != tt.rect {
			t.Errorf("%s = %+v, want %+v", tt.name, tt.got, tt.rect)
		}
	}

	if got := l.scrollAreaBounds(); got != (core.Rect{X: 0, Y: 32, Width: 806, Height: 246}) {
		t.Errorf("scrollAreaBounds = %+v", got)
	}
}

func TestLayoutCapacity(t *testing.T) {
	l := testLayout(t, exactBounds)

	// 512px of content at 32px per cell: exactly 16 columns. The floor
	// count snaps to the virtual count instead of losing a column to
	// float noise.
	if got := l.viewportColumnCountFloor(); got != 16 {
		t.Errorf("column floor = %d", got)
	}
	if got := l.viewportColumnCountCeil(); got != 16 {
		t.Errorf("column ceil = %d", got)
	}
	if got := l.viewportRowCountFloor(); got != 8 {
		t.Errorf("row floor = %d", got)
	}
	if got := l.virtualRowsCeil(); got != 63 {
		t.Errorf("virtual rows = %d", got)
	}
	if got := l.maxViewportX(); got != 0 {
		t.Errorf("max viewport x = %d", got)
	}
	if got := l.maxViewportY(); got != 55 {
		t.Errorf("max viewport y = %d", got)
	}
}

func TestLayoutWidthDivision(t *testing.T) {
	// 200px narrower than natural: the shortfall is split between byte
	// and char area, address area and scrollbar keep their size.
	bounds := core.Rect{Width: 606, Height: 278}
	l := testLayout(t, bounds)

	if l.addressArea.Width != 64 {
		t.Errorf("addressArea.Width = %v", l.addressArea.Width)
	}
	total := l.byteArea.Width + l.charArea.Width
	if math.Abs(total-532) > 1e-9 {
		t.Errorf("content widths sum to %v, want 532", total)
	}
	if l.byteArea.Width >= 524 || l.charArea.Width >= 208 {
		t.Errorf("areas did not shrink: byte %v char %v", l.byteArea.Width, l.charArea.Width)
	}
	// The wider area absorbs the larger share.
	if l.byteArea.Width <= l.charArea.Width {
		t.Errorf("byte area %v not wider than char area %v", l.byteArea.Width, l.charArea.Width)
	}

	if got := l.maxViewportX(); got != 5 {
		t.Errorf("max viewport x = %d", got)
	}
}

func TestLayoutCells(t *testing.T) {
	l := testLayout(t, exactBounds)

	if got := l.byteCell(0, 0); got != (core.Rect{X: 70, Y: 38, Width: 32, Height: 28}) {
		t.Errorf("byteCell(0,0) = %+v", got)
	}
	if got := l.byteCell(2, 1); got != (core.Rect{X: 134, Y: 66, Width: 32, Height: 28}) {
		t.Errorf("byteCell(2,1) = %+v", got)
	}
	if got := l.charCell(0, 0); got != (core.Rect{X: 593, Y: 38, Width: 12, Height: 28}) {
		t.Errorf("charCell(0,0) = %+v", got)
	}
	if got := l.byteHeaderCell(0); got != (core.Rect{X: 70, Y: 0, Width: 32, Height: 32}) {
		t.Errorf("byteHeaderCell(0) = %+v", got)
	}
	if got := l.addressAreaCell(1); got != (core.Rect{X: 0, Y: 66, Width: 64, Height: 28}) {
		t.Errorf("addressAreaCell(1) = %+v", got)
	}

	// Single-digit header values are nudged toward the cell center.
	wide := l.byteHeaderTextPosition(0, 0x1A)
	narrow := l.byteHeaderTextPosition(0, 0x05)
	if narrow.X-wide.X != testMetrics.ByteWidth*0.25 {
		t.Errorf("header nudge = %v", narrow.X-wide.X)
	}
}

func TestLayoutShift(t *testing.T) {
	padding := resolvePadding(CompactPadding(), testMetrics)
	dim := newLayoutDimensions(padding, 16, testMetrics, 10, 10, 1000, exactBounds.Size())
	l := newLayout(dim, padding, 1000, 16, testMetrics, 0.5, exactBounds)

	// Half a cell of shift moves byte cells 16px and char cells 6px left.
	if got := l.byteCell(0, 0).X; got != 70-16 {
		t.Errorf("shifted byteCell x = %v", got)
	}
	if got := l.charCell(0, 0).X; got != 593-6 {
		t.Errorf("shifted charCell x = %v", got)
	}
}

func TestPointerLocation(t *testing.T) {
	l := testLayout(t, exactBounds)

	tests := []struct {
		name string
		p    core.Point
		want Location
	}{
		{"byte header", core.Point{X: 100, Y: 10}, Location{Kind: LocationByteHeader}},
		{"char header", core.Point{X: 600, Y: 10}, Location{Kind: LocationCharHeader}},
		{"address area", core.Point{X: 30, Y: 100}, Location{Kind: LocationAddressArea}},
		{"outside", core.Point{X: 800, Y: 270}, Location{Kind: LocationOther}},
		{
			"byte cell left half",
			core.Point{X: 140, Y: 70},
			Location{Kind: LocationByteArea, Data: DataLocation{
				Kind: DataCell, Cell: Cell{Col: 2, Row: 1, Side: SideLeft},
			}},
		},
		{
			"byte cell right half",
			core.Point{X: 152, Y: 70},
			Location{Kind: LocationByteArea, Data: DataLocation{
				Kind: DataCell, Cell: Cell{Col: 2, Row: 1, Side: SideRight},
			}},
		},
		{
			"byte area left padding",
			core.Point{X: 66, Y: 70},
			Location{Kind: LocationByteArea, Data: DataLocation{
				Kind: DataPaddingLeft, Cell: Cell{Row: 1},
			}},
		},
		{
			"byte area bottom padding",
			core.Point{X: 140, Y: 264},
			Location{Kind: LocationByteArea, Data: DataLocation{
				Kind: DataPaddingBottom, Cell: Cell{Col: 2},
			}},
		},
		{
			"char cell",
			core.Point{X: 596, Y: 70},
			Location{Kind: LocationCharArea, Data: DataLocation{
				Kind: DataCell, Cell: Cell{Col: 0, Row: 1, Side: SideLeft},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.pointerLocation(tt.p); got != tt.want {
				t.Errorf("pointerLocation(%+v) = %+v, want %+v", tt.p, got, tt.want)
			}
		})
	}
}

func TestApproximateCell(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		cell Cell
		ok   bool
	}{
		{
			"cell passes through",
			Location{Kind: LocationByteArea, Data: DataLocation{
				Kind: DataCell, Cell: Cell{Col: 3, Row: 2, Side: SideRight},
			}},
			Cell{Col: 3, Row: 2, Side: SideRight}, true,
		},
		{
			"left padding snaps to first column",
			Location{Kind: LocationByteArea, Data: DataLocation{
				Kind: DataPaddingLeft, Cell: Cell{Row: 4},
			}},
			Cell{Col: 0, Row: 4, Side: SideLeft}, true,
		},
		{
			"right padding snaps to last column",
			Location{Kind: LocationCharArea, Data: DataLocation{
				Kind: DataPaddingRight, Cell: Cell{Row: 4},
			}},
			Cell{Col: 15, Row: 4, Side: SideRight}, true,
		},
		{
			"top padding snaps to the first cell",
			Location{Kind: LocationByteArea, Data: DataLocation{
				Kind: DataPaddingTop, Cell: Cell{Col: 9},
			}},
			Cell{Col: 0, Row: 0, Side: SideLeft}, true,
		},
		{
			"bottom padding snaps past the last row",
			Location{Kind: LocationByteArea, Data: DataLocation{
				Kind: DataPaddingBottom, Cell: Cell{Col: 9},
			}},
			Cell{Col: 0, Row: 8, Side: SideRight}, true,
		},
		{
			"header has no cell",
			Location{Kind: LocationByteHeader},
			Cell{}, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell, ok := tt.loc.approximateCell(16, 8)
			if ok != tt.ok || cell != tt.cell {
				t.Errorf("approximateCell = (%+v, %v), want (%+v, %v)", cell, ok, tt.cell, tt.ok)
			}
		})
	}
}

func TestCellRectLocationRoundTrip(t *testing.T) {
	l := testLayout(t, exactBounds)

	// Classifying the center of any visible cell's rectangle recovers
	// the cell. Centers land in the right half.
	for col := int64(0); col < 16; col++ {
		for row := int64(0); row < 8; row++ {
			rect := l.byteCell(col, row)
			center := core.Point{X: rect.X + rect.Width/2, Y: rect.Y + rect.Height/2}

			loc := l.pointerLocation(center)
			if loc.Kind != LocationByteArea || loc.Data.Kind != DataCell {
				t.Fatalf("cell (%d,%d): location %+v", col, row, loc)
			}
			if got := loc.Data.Cell; got.Col != col || got.Row != row || got.Side != SideRight {
				t.Errorf("cell (%d,%d) round-tripped to %+v", col, row, got)
			}

			rect = l.charCell(col, row)
			center = core.Point{X: rect.X + rect.Width/2, Y: rect.Y + rect.Height/2}
			loc = l.pointerLocation(center)
			if loc.Kind != LocationCharArea || loc.Data.Cell.Col != col || loc.Data.Cell.Row != row {
				t.Errorf("char cell (%d,%d) round-tripped to %+v", col, row, loc)
			}
		}
	}
}

func TestAddressWidthUsesDecimalDigits(t *testing.T) {
	padding := resolvePadding(CompactPadding(), testMetrics)

	// 1000 has four decimal digits, 0xFFFF would have four hex ones; the
	// address column is sized for the decimal count.
	dim := newLayoutDimensions(padding, 16, testMetrics, 10, 10, 99999, exactBounds.Size())
	if dim.addressWidth != 5*testMetrics.CharWidth+24 {
		t.Errorf("addressWidth = %v", dim.addressWidth)
	}
}

// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hexview/layout.go
// Summary: The layout engine. Computes the rectangles of all areas from
// the paddings, font metrics and widget bounds, maps grid cells to pixel
// rectangles, and classifies pointer positions into logical locations.

package hexview

import (
	"math"
	"strconv"

	"github.com/framegrace/hexview/core"
)

// Step controls whether horizontal scroll movement is per column or per
// pixel.
type Step int

const (
	StepCell Step = iota
	StepPixel
)

// layoutDimensions are the unclamped natural sizes of the areas.
type layoutDimensions struct {
	headerHeight    float64
	contentHeight   float64
	addressWidth    float64
	byteAreaWidth   float64
	charAreaWidth   float64
	hScrollbarSize  float64
	vScrollbarSize  float64
}

func newLayoutDimensions(
	p hexPadding,
	columns int64,
	metrics core.CellMetrics,
	hScrollbarSize, vScrollbarSize float64,
	sourceSize int64,
	bounds core.Size,
) layoutDimensions {
	headerHeight := metrics.LineHeight + p.headerTop + p.headerBottom

	contentHeight := bounds.Height - hScrollbarSize
	if contentHeight < 0 {
		contentHeight = 0
	}

	addressChars := float64(len(strconv.FormatInt(sourceSize, 10)))
	addressWidth := addressChars*metrics.CharWidth + p.addressAreaLeft + p.addressAreaRight

	byteAreaWidth := float64(columns)*(metrics.ByteWidth+2*p.byteHorizontal) +
		p.byteAreaLeft + p.byteAreaRight

	charAreaWidth := float64(columns)*(metrics.CharWidth+2*p.charHorizontal) +
		p.charAreaLeft + p.charAreaRight

	return layoutDimensions{
		headerHeight:   headerHeight,
		contentHeight:  contentHeight,
		addressWidth:   addressWidth,
		byteAreaWidth:  byteAreaWidth,
		charAreaWidth:  charAreaWidth,
		hScrollbarSize: hScrollbarSize,
		vScrollbarSize: vScrollbarSize,
	}
}

func (d layoutDimensions) width() float64 {
	return d.addressWidth + d.byteAreaWidth + d.charAreaWidth + d.vScrollbarSize
}

func (d layoutDimensions) contentWidth() float64 {
	return d.byteAreaWidth + d.charAreaWidth
}

func (d layoutDimensions) boundedHeaderHeight(bounds core.Size) float64 {
	return math.Min(d.headerHeight, bounds.Height)
}

func (d layoutDimensions) boundedContentHeight(bounds core.Size) float64 {
	return math.Max(0, math.Min(d.contentHeight, bounds.Height-d.headerHeight-d.hScrollbarSize))
}

func (d layoutDimensions) boundedAddressWidth(bounds core.Size) float64 {
	return math.Min(d.addressWidth, bounds.Width)
}

func (d layoutDimensions) boundedContentWidth(bounds core.Size) float64 {
	return math.Max(0, math.Min(d.contentWidth(), bounds.Width-d.addressWidth-d.vScrollbarSize))
}

// layout holds the resolved rectangles of one frame. Everything in it is
// in absolute pixels.
type layout struct {
	dim            layoutDimensions
	padding        hexPadding
	sourceSize     int64
	virtualColumns int64
	metrics        core.CellMetrics

	byteCellWidth float64
	charCellWidth float64
	byteShift     float64
	charShift     float64

	topLeft        core.Rect
	byteAreaHeader core.Rect
	charAreaHeader core.Rect
	topRight       core.Rect
	addressArea    core.Rect
	byteArea       core.Rect
	charArea       core.Rect
}

func newLayout(
	dim layoutDimensions,
	padding hexPadding,
	sourceSize int64,
	virtualColumns int64,
	metrics core.CellMetrics,
	shiftX float64,
	bounds core.Rect,
) layout {
	headerHeight := dim.boundedHeaderHeight(bounds.Size())
	contentHeight := dim.boundedContentHeight(bounds.Size())
	addressWidth := dim.boundedAddressWidth(bounds.Size())

	byteAreaWidth := dim.byteAreaWidth
	charAreaWidth := dim.charAreaWidth
	if dim.width() != bounds.Width {
		// Divide the available horizontal space between the byte area
		// and char area as fairly as possible. Scrolling happens based
		// on the byte area's content width, i.e. the area's width
		// without padding. Division happens based on that first. Then,
		// if there's too little space to even fit the paddings, the
		// space is divided based on their ratios as well.
		fullContentWidth := dim.boundedContentWidth(bounds.Size())

		bytePadding := padding.byteAreaPadding().Horizontal()
		charPadding := padding.charAreaPadding().Horizontal()
		allPaddings := bytePadding + charPadding

		contentWidth := math.Max(0, fullContentWidth-allPaddings)

		byteContent := dim.byteAreaWidth - bytePadding
		charContent := dim.charAreaWidth - charPadding

		remainingSpace := fullContentWidth - contentWidth

		contentRatio := byteContent / (byteContent + charContent)
		paddingRatio := bytePadding / (bytePadding + charPadding)

		byteAreaWidth = contentWidth*contentRatio + paddingRatio*remainingSpace
		charAreaWidth = contentWidth*(1-contentRatio) + (1-paddingRatio)*remainingSpace
	}

	topLeft := core.Rect{
		X: bounds.X, Y: bounds.Y,
		Width: addressWidth, Height: headerHeight,
	}
	byteAreaHeader := core.Rect{
		X: topLeft.Right(), Y: bounds.Y,
		Width: byteAreaWidth, Height: headerHeight,
	}
	charAreaHeader := core.Rect{
		X: byteAreaHeader.Right(), Y: bounds.Y,
		Width: charAreaWidth, Height: headerHeight,
	}
	topRight := core.Rect{
		X: charAreaHeader.Right(), Y: bounds.Y,
		Width: dim.vScrollbarSize, Height: headerHeight,
	}
	addressArea := core.Rect{
		X: bounds.X, Y: topLeft.Bottom(),
		Width: addressWidth, Height: contentHeight,
	}
	byteArea := core.Rect{
		X: addressArea.Right(), Y: byteAreaHeader.Bottom(),
		Width: byteAreaWidth, Height: contentHeight,
	}
	charArea := core.Rect{
		X: byteArea.Right(), Y: charAreaHeader.Bottom(),
		Width: charAreaWidth, Height: contentHeight,
	}

	byteCellWidth := metrics.ByteWidth + 2*padding.byteHorizontal
	charCellWidth := metrics.CharWidth + 2*padding.charHorizontal

	return layout{
		dim:            dim,
		padding:        padding,
		sourceSize:     sourceSize,
		virtualColumns: virtualColumns,
		metrics:        metrics,
		byteCellWidth:  byteCellWidth,
		charCellWidth:  charCellWidth,
		byteShift:      shiftX * byteCellWidth,
		charShift:      shiftX * charCellWidth,
		topLeft:        topLeft,
		byteAreaHeader: byteAreaHeader,
		charAreaHeader: charAreaHeader,
		topRight:       topRight,
		addressArea:    addressArea,
		byteArea:       byteArea,
		charArea:       charArea,
	}
}

func (l *layout) width() float64 {
	return l.addressArea.Width + l.byteArea.Width + l.charArea.Width + l.topRight.Width
}

func (l *layout) addressAreaContent() core.Rect {
	return l.addressArea.Shrink(l.padding.addressAreaPadding())
}

func (l *layout) byteAreaContent() core.Rect {
	return l.byteArea.Shrink(l.padding.byteAreaPadding())
}

func (l *layout) charAreaContent() core.Rect {
	return l.charArea.Shrink(l.padding.charAreaPadding())
}

func (l *layout) headersBackground() core.Rect {
	return core.Rect{
		X: l.topLeft.X, Y: l.topLeft.Y,
		Width: l.width(), Height: l.topLeft.Height,
	}
}

// rowHeight is the height of one data row.
func (l *layout) rowHeight() float64 {
	return l.metrics.LineHeight + 2*l.padding.dataVertical
}

func (l *layout) byteCellX(col int64) float64 {
	return l.byteArea.X +
		float64(col)*l.byteCellWidth +
		l.padding.byteAreaLeft -
		l.byteShift
}

func (l *layout) charCellX(col int64) float64 {
	return l.charArea.X +
		float64(col)*l.charCellWidth +
		l.padding.charAreaLeft -
		l.charShift
}

func (l *layout) cellY(row int64) float64 {
	// Address, byte and char area all share the same y offset.
	return l.addressArea.Y + float64(row)*l.rowHeight() + l.padding.contentTop
}

// byteHeaderCell is the bounding box of the byte header cell for col.
func (l *layout) byteHeaderCell(col int64) core.Rect {
	return core.Rect{
		X: l.byteCellX(col), Y: l.byteAreaHeader.Y,
		Width: l.byteCellWidth, Height: l.byteAreaHeader.Height,
	}
}

// byteHeaderTextPosition is the top left of the byte header text for col.
// Single-digit values are nudged toward the center.
func (l *layout) byteHeaderTextPosition(col, colVal int64) core.Point {
	rect := l.byteHeaderCell(col)
	var nudge float64
	if colVal < 0x10 {
		nudge = l.metrics.ByteWidth * 0.25
	}
	return core.Point{
		X: rect.X + l.padding.byteHorizontal + nudge,
		Y: rect.Y + l.padding.headerTop,
	}
}

func (l *layout) charHeaderCell(col int64) core.Rect {
	return core.Rect{
		X: l.charCellX(col), Y: l.charAreaHeader.Y,
		Width: l.charCellWidth, Height: l.charAreaHeader.Height,
	}
}

func (l *layout) charHeaderTextPosition(col int64) core.Point {
	rect := l.charHeaderCell(col)
	return core.Point{
		X: rect.X + l.padding.charHorizontal,
		Y: rect.Y + l.padding.headerTop,
	}
}

func (l *layout) addressAreaCell(row int64) core.Rect {
	return core.Rect{
		X: l.addressArea.X, Y: l.cellY(row),
		Width: l.addressArea.Width, Height: l.rowHeight(),
	}
}

// addressAreaDigitPosition is the top left of the row's col'th digit.
func (l *layout) addressAreaDigitPosition(col, row int64) core.Point {
	rect := l.addressAreaCell(row)
	return core.Point{
		X: rect.X + l.padding.addressAreaLeft + float64(col)*l.metrics.CharWidth,
		Y: rect.Y + l.padding.dataVertical,
	}
}

// byteCell is the bounding box of the byte cell at viewport-relative
// col/row. The box position is absolute.
func (l *layout) byteCell(col, row int64) core.Rect {
	return core.Rect{
		X: l.byteCellX(col), Y: l.cellY(row),
		Width: l.byteCellWidth, Height: l.rowHeight(),
	}
}

func (l *layout) byteTextPosition(col, row int64) core.Point {
	rect := l.byteCell(col, row)
	return core.Point{
		X: rect.X + l.padding.byteHorizontal,
		Y: rect.Y + l.padding.dataVertical,
	}
}

func (l *layout) charCell(col, row int64) core.Rect {
	return core.Rect{
		X: l.charCellX(col), Y: l.cellY(row),
		Width: l.charCellWidth, Height: l.rowHeight(),
	}
}

func (l *layout) charTextPosition(col, row int64) core.Point {
	rect := l.charCell(col, row)
	return core.Point{
		X: rect.X + l.padding.charHorizontal,
		Y: rect.Y + l.padding.dataVertical,
	}
}

// viewportColumnCountCeil is the number of columns that (partially) fit.
func (l *layout) viewportColumnCountCeil() int64 {
	return int64(math.Ceil(l.byteAreaContent().Width / l.byteCellWidth))
}

// viewportColumnCountFloor is the number of columns that fully fit. A
// capacity within epsilon of the virtual column count snaps to it so
// float noise can't hide the last column.
func (l *layout) viewportColumnCountFloor() int64 {
	count := l.byteAreaContent().Width / l.byteCellWidth
	if float64(l.virtualColumns)-count < 0.01 {
		return l.virtualColumns
	}
	return int64(math.Floor(count))
}

func (l *layout) viewportRowCountCeil() int64 {
	return int64(math.Ceil(l.byteAreaContent().Height / l.rowHeight()))
}

func (l *layout) viewportRowCountFloor() int64 {
	count := l.byteAreaContent().Height / l.rowHeight()
	if float64(l.virtualRowsCeil())-count < 0.01 {
		return l.virtualRowsCeil()
	}
	return int64(math.Floor(count))
}

func (l *layout) virtualRowsCeil() int64 {
	return (l.sourceSize + l.virtualColumns - 1) / l.virtualColumns
}

func (l *layout) maxViewportX() int64 {
	m := l.virtualColumns - l.viewportColumnCountFloor()
	if m < 0 {
		return 0
	}
	return m
}

func (l *layout) maxViewportY() int64 {
	m := l.virtualRowsCeil() - l.viewportRowCountFloor()
	if m < 0 {
		return 0
	}
	return m
}

// scrollAreaBounds is the rectangle the scroll area may draw bars in.
// Primarily cosmetic, but it also decides how much rail, and therefore
// precision, the bars have.
func (l *layout) scrollAreaBounds() core.Rect {
	return core.Rect{
		X: l.addressArea.X, Y: l.addressArea.Y,
		Width:  l.width(),
		Height: l.addressArea.Height + l.dim.hScrollbarSize,
	}
}

// LocationKind names the area of the widget a pointer position falls in.
type LocationKind int

const (
	LocationOther LocationKind = iota
	LocationByteHeader
	LocationCharHeader
	LocationAddressArea
	LocationByteArea
	LocationCharArea
)

// Location is a classified pointer position. Data carries the in-area
// detail for the byte and char areas.
type Location struct {
	Kind LocationKind
	Data DataLocation
}

// DataLocationKind names where in a data area a pointer position falls.
type DataLocationKind int

const (
	DataCell DataLocationKind = iota
	DataPaddingLeft
	DataPaddingRight
	DataPaddingTop
	DataPaddingBottom
	DataCornerTopLeft
	DataCornerTopRight
	DataCornerBottomLeft
	DataCornerBottomRight
)

// DataLocation is a classified position inside a data area. For padding
// variants, Cell carries the adjacent row or column.
type DataLocation struct {
	Kind DataLocationKind
	Cell Cell
}

// Cell is a position in the viewport grid plus the touched half of the
// cell. The top left visible cell is col 0, row 0.
type Cell struct {
	Col, Row int64
	Side     Side
}

// pointerLocation classifies an absolute pointer position.
func (l *layout) pointerLocation(p core.Point) Location {
	switch {
	case l.byteAreaHeader.Contains(p):
		return Location{Kind: LocationByteHeader}
	case l.charAreaHeader.Contains(p):
		return Location{Kind: LocationCharHeader}
	case l.addressArea.Contains(p):
		return Location{Kind: LocationAddressArea}
	case l.byteArea.Contains(p):
		return Location{
			Kind: LocationByteArea,
			Data: l.pointerDataLocation(p, l.byteAreaContent(), l.byteCellWidth, l.byteShift),
		}
	case l.charArea.Contains(p):
		return Location{
			Kind: LocationCharArea,
			Data: l.pointerDataLocation(p, l.charAreaContent(), l.charCellWidth, l.charShift),
		}
	default:
		return Location{Kind: LocationOther}
	}
}

// pointerDataLocation consolidates the classification for the byte and
// char areas.
func (l *layout) pointerDataLocation(p core.Point, content core.Rect, cellWidth, shift float64) DataLocation {
	cellRow := int64(math.Floor((p.Y - content.Y) / l.rowHeight()))

	if content.Contains(p) {
		cellCol := int64(math.Floor((p.X - (content.X - shift)) / cellWidth))
		inCell := math.Mod(p.X-(content.X-shift), cellWidth)
		side := SideLeft
		if inCell >= cellWidth/2 {
			side = SideRight
		}
		return DataLocation{Kind: DataCell, Cell: Cell{Col: cellCol, Row: cellRow, Side: side}}
	}

	cellCol := int64(math.Floor((p.X - content.X) / cellWidth))

	if p.Y < content.Y {
		switch {
		case p.X < content.X:
			return DataLocation{Kind: DataCornerTopLeft}
		case p.X < content.Right():
			return DataLocation{Kind: DataPaddingTop, Cell: Cell{Col: cellCol}}
		default:
			return DataLocation{Kind: DataCornerTopRight}
		}
	}

	if p.Y > content.Bottom() {
		switch {
		case p.X < content.X:
			return DataLocation{Kind: DataCornerBottomLeft}
		case p.X < content.Right():
			return DataLocation{Kind: DataPaddingBottom, Cell: Cell{Col: cellCol}}
		default:
			return DataLocation{Kind: DataCornerBottomRight}
		}
	}

	if p.X < content.X {
		return DataLocation{Kind: DataPaddingLeft, Cell: Cell{Row: cellRow}}
	}
	return DataLocation{Kind: DataPaddingRight, Cell: Cell{Row: cellRow}}
}

// approximateCell decides what cell counts as "clicked" so the cursor
// can be put there. Clicks in padding snap to the nearest edge cell;
// clicks outside the data areas have no cell.
func (loc Location) approximateCell(cols, rows int64) (Cell, bool) {
	if loc.Kind != LocationByteArea && loc.Kind != LocationCharArea {
		return Cell{}, false
	}
	d := loc.Data
	switch d.Kind {
	case DataCell:
		return d.Cell, true
	case DataPaddingLeft:
		return Cell{Col: 0, Row: d.Cell.Row, Side: SideLeft}, true
	case DataPaddingRight:
		return Cell{Col: cols - 1, Row: d.Cell.Row, Side: SideRight}, true
	case DataPaddingTop, DataCornerTopLeft, DataCornerTopRight:
		return Cell{Col: 0, Row: 0, Side: SideLeft}, true
	default:
		return Cell{Col: 0, Row: rows, Side: SideRight}, true
	}
}

// column returns the strictly matched column, without approximation.
func (loc Location) column() (int64, bool) {
	if loc.Kind != LocationByteArea && loc.Kind != LocationCharArea {
		return 0, false
	}
	switch loc.Data.Kind {
	case DataCell, DataPaddingTop, DataPaddingBottom:
		return loc.Data.Cell.Col, true
	default:
		return 0, false
	}
}

// row returns the strictly matched row, without approximation.
func (loc Location) row() (int64, bool) {
	if loc.Kind != LocationByteArea && loc.Kind != LocationCharArea {
		return 0, false
	}
	switch loc.Data.Kind {
	case DataCell, DataPaddingLeft, DataPaddingRight:
		return loc.Data.Cell.Row, true
	default:
		return 0, false
	}
}

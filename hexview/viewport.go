// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hexview/viewport.go
// Summary: The two-dimensional window into the byte grid. Maps between
// absolute source offsets and viewport-relative grid positions.

package hexview

// Viewport is the visible window into the virtual byte grid. The grid is
// VirtualColumns wide; a byte's absolute offset relates to its grid
// position as offset = VirtualColumns*row + col.
type Viewport struct {
	// X is the first (possibly partially visible) column.
	X int64
	// Y is the first row. Vertical scrolling is always whole rows, so
	// the first row is never clipped at the top.
	Y int64
	// Columns is the number of (partially) visible columns.
	Columns int64
	// Rows is the number of (partially) visible rows.
	Rows int64
	// ShiftX is the fraction of a cell scrolled past X. Nonzero only
	// with pixel stepping.
	ShiftX float64
	// VirtualColumns is the configured grid width.
	VirtualColumns int64
}

// Offset is the absolute offset of the byte in the top left corner.
func (v Viewport) Offset() uint64 {
	return uint64(v.VirtualColumns*v.Y + v.X)
}

// CellCount is the total number of cells the viewport spans.
func (v Viewport) CellCount() int {
	return int(v.Columns * v.Rows)
}

// Contains reports whether the absolute offset is visible, and if so at
// which viewport-relative column and row.
func (v Viewport) Contains(offset uint64) (col, row int64, ok bool) {
	if v.VirtualColumns == 0 {
		return 0, 0, false
	}
	col = int64(offset) % v.VirtualColumns
	row = int64(offset) / v.VirtualColumns
	if col < v.X || col >= v.X+v.Columns || row < v.Y || row >= v.Y+v.Rows {
		return 0, 0, false
	}
	return col - v.X, row - v.Y, true
}

// EachRow calls fn with the absolute start and end (exclusive) offsets
// of every visible row, top to bottom, until fn returns false. With x=2,
// y=1, columns=8 and 16 virtual columns it yields [18,26), [34,42), and
// so on.
func (v Viewport) EachRow(fn func(start, end uint64) bool) {
	for row := int64(0); row < v.Rows; row++ {
		start := (v.Y+row)*v.VirtualColumns + v.X
		if !fn(uint64(start), uint64(start+v.Columns)) {
			return
		}
	}
}

// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hexview/selection.go
// Summary: Selection model. Cells have a left and a right half; which
// half an interaction touches decides whether the byte is included in
// the selection.

package hexview

// Side is the half of a cell an interaction touched. SideNone means the
// side is unknown or irrelevant (keyboard interactions).
type Side int

const (
	SideLeft Side = iota
	SideNone
	SideRight
)

// Index is an absolute offset into the source plus the touched side.
type Index struct {
	Offset int64
	Side   Side
}

// Less orders indices by offset, then side (left before right).
func (i Index) Less(o Index) bool {
	if i.Offset != o.Offset {
		return i.Offset < o.Offset
	}
	return i.Side < o.Side
}

// Selection is a contiguous run of selected bytes.
//
// Each cell has a left and a right side. A selection started at the left
// side of offset 2 and dragged to its right side selects that one byte.
// Dragging on to the left side of offset 3 changes nothing; only when
// the drag reaches its right side does offset 3 join the selection. The
// same applies to keyboard selections when the anchor was set by mouse,
// since side information is retained.
type Selection struct {
	// Offset is the leftmost selected byte.
	Offset uint64
	// Length is the number of selected bytes.
	Length uint64
	// Last is the byte most recently interacted with. It may lie just
	// outside the selection depending on sides and direction; use
	// LastContained for a byte guaranteed to be inside.
	Last uint64
}

// LastContained is Last clamped into the selection.
func (s Selection) LastContained() uint64 {
	switch {
	case s.Last < s.Offset:
		return s.Offset
	case s.Last >= s.Offset+s.Length:
		return s.Offset + s.Length - 1
	default:
		return s.Last
	}
}

// makeSelection determines what selection exists between two indices, in
// either order. A span whose side arithmetic yields no whole byte (for
// instance both halves of the boundary between two cells) is no
// selection at all.
func makeSelection(a, b Index, currentCursor int64) *Selection {
	left, right := a, b
	if b.Less(a) {
		left, right = b, a
	}

	start := left.Offset
	if left.Side == SideRight {
		start++
	}
	length := right.Offset - left.Offset - 1
	if left.Side == SideLeft || left.Side == SideNone {
		length++
	}
	if right.Side == SideRight || right.Side == SideNone {
		length++
	}

	if length <= 0 {
		return nil
	}
	return &Selection{Offset: uint64(start), Length: uint64(length), Last: uint64(currentCursor)}
}

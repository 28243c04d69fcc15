// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/click.go
// Summary: Click sequence tracking: single, double and triple clicks.

package core

import "time"

// ClickKind classifies a press in a click sequence.
type ClickKind int

const (
	ClickSingle ClickKind = iota
	ClickDouble
	ClickTriple
)

const (
	clickInterval = 300 * time.Millisecond
	clickSlopPx   = 6.0
)

// Click records one classified press. Feed the previous click back into
// NewClick to build up double and triple clicks.
type Click struct {
	Kind     ClickKind
	Position Point
	At       time.Time
}

// NewClick classifies a press at p, chaining off prev when the press is
// close enough in time and space. prev may be nil.
func NewClick(p Point, at time.Time, prev *Click) Click {
	kind := ClickSingle
	if prev != nil && at.Sub(prev.At) <= clickInterval && near(p, prev.Position) {
		switch prev.Kind {
		case ClickSingle:
			kind = ClickDouble
		case ClickDouble:
			kind = ClickTriple
		}
	}
	return Click{Kind: kind, Position: p, At: at}
}

func near(a, b Point) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx+dy*dy <= clickSlopPx*clickSlopPx
}

// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hexview/intent.go
// Summary: Intents returned by Viewer.Update. The viewer never mutates
// shared state on its own; it reports what the application should do.

package hexview

import "time"

// Intent is a state change the Viewer asks its host to apply or observe.
type Intent interface {
	isIntent()
}

// CursorMoved reports the new cursor offset.
type CursorMoved struct {
	Offset uint64
}

// Scrolled asks the host to move the viewport, typically by calling
// Content.Update with it.
type Scrolled struct {
	Viewport Viewport
}

// ViewportResized reports that the logical viewport changed size, for
// instance after a column count change or a widget resize. The host
// should call Content.Update with it.
type ViewportResized struct {
	Viewport Viewport
}

// SelectionChanged reports the current selection; nil means none.
type SelectionChanged struct {
	Selection *Selection
}

// Redraw asks the shell to paint a frame.
type Redraw struct{}

// RedrawAt asks the shell to paint a frame no later than At.
type RedrawAt struct {
	At time.Time
}

func (CursorMoved) isIntent()      {}
func (Scrolled) isIntent()         {}
func (ViewportResized) isIntent()  {}
func (SelectionChanged) isIntent() {}
func (Redraw) isIntent()           {}
func (RedrawAt) isIntent()         {}

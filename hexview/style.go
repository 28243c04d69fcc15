// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hexview/style.go
// Summary: Viewer style resolved per interaction status, plus the catalog
// the host supplies to Draw.

package hexview

import (
	"github.com/framegrace/hexview/core"
	"github.com/framegrace/hexview/scroll"
)

// Status is the interaction state a Style is resolved for.
type Status int

const (
	// StatusActive: the viewer can be interacted with.
	StatusActive Status = iota
	// StatusHovered: the pointer is over the viewer.
	StatusHovered
	// StatusFocused: the viewer has keyboard focus.
	StatusFocused
	// StatusDisabled: the viewer cannot be interacted with.
	StatusDisabled
)

// Style is the appearance of a Viewer.
type Style struct {
	// Background of the byte/char areas.
	Background core.Color
	// Text color of the byte/char cells.
	Text core.Color
	// HeaderBackground fills the header row and the address area.
	HeaderBackground core.Color
	// HeaderHover highlights the header cell above and the address cell
	// left of the hovered data cell.
	HeaderHover core.Color
	// HeaderText is the color of header and address text.
	HeaderText core.Color
	// Border is drawn around the whole widget.
	Border core.Color
}

// Catalog resolves viewer and scrollbar styles. Themes implement it.
type Catalog interface {
	scroll.Catalog
	ViewerStyle(Status) Style
}

// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hexview/styler.go
// Summary: Per-cell style overrides the host rebuilds per viewport.

package hexview

import "github.com/framegrace/hexview/core"

// BorderSides is a bit set naming the sides of a cell border.
type BorderSides uint8

const (
	BorderTop BorderSides = 1 << iota
	BorderLeft
	BorderBottom
	BorderRight
	BorderAll = BorderTop | BorderLeft | BorderBottom | BorderRight
)

// CellBorder is a per-cell border. Currently a placeholder, borders are
// not drawn yet.
type CellBorder struct {
	Color core.Color
	Width float64
	Sides BorderSides
}

// CellStyle overrides the color of a single cell. Zero-value channels
// fall back to the widget style.
type CellStyle struct {
	Text       *core.Color
	Background *core.Color
	Border     *CellBorder
}

// ContentStyler holds per-cell color overrides for the bytes currently
// in view, addressed by viewport-linear index. Rebuild it whenever the
// viewport or the highlighted ranges change.
type ContentStyler struct {
	styles  []CellStyle
	isClear bool
}

// NewContentStyler creates a styler for a viewport of size cells.
func NewContentStyler(size int) *ContentStyler {
	return &ContentStyler{styles: make([]CellStyle, size), isClear: true}
}

// SetText overrides the text color of the cell at index. Out-of-range
// indices are ignored.
func (s *ContentStyler) SetText(index int, c core.Color) {
	if index >= 0 && index < len(s.styles) {
		s.styles[index].Text = &c
	}
	s.isClear = false
}

// SetBackground overrides the background color of the cell at index.
// Out-of-range indices are ignored.
func (s *ContentStyler) SetBackground(index int, c core.Color) {
	if index >= 0 && index < len(s.styles) {
		s.styles[index].Background = &c
	}
	s.isClear = false
}

// Clear resets the styler for reuse and makes sure it spans size cells.
// A styler that is already clear at the right size is left alone.
func (s *ContentStyler) Clear(size int) {
	if s.isClear && len(s.styles) == size {
		return
	}
	if len(s.styles) == size {
		for i := range s.styles {
			s.styles[i] = CellStyle{}
		}
	} else {
		s.styles = make([]CellStyle, size)
	}
	s.isClear = true
}

func (s *ContentStyler) textColor(index int) *core.Color {
	if index < 0 || index >= len(s.styles) {
		return nil
	}
	return s.styles[index].Text
}

func (s *ContentStyler) backgroundColor(index int) *core.Color {
	if index < 0 || index >= len(s.styles) {
		return nil
	}
	return s.styles[index].Background
}

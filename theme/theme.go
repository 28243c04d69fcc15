// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/theme.go
// Summary: Color themes for the viewer. A Theme holds a handful of base
// colors; everything else (hover, drag, selection, disabled shades) is
// derived from them in Lab space so derived colors stay perceptually
// close to their base.

// Package theme resolves viewer and scrollbar styles from a small set of
// base colors. It implements hexview.Catalog.
package theme

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/framegrace/hexview/core"
	"github.com/framegrace/hexview/hexview"
	"github.com/framegrace/hexview/scroll"
)

// Theme is a set of base colors a Catalog is derived from.
type Theme struct {
	Background core.Color
	Text       core.Color
	Header     core.Color
	HeaderText core.Color
	Border     core.Color
	Accent     core.Color
}

// Default is a dark theme.
func Default() *Theme {
	return &Theme{
		Background: core.RGB(0x1e, 0x1e, 0x2e),
		Text:       core.RGB(0xcd, 0xd6, 0xf4),
		Header:     core.RGB(0x31, 0x32, 0x44),
		HeaderText: core.RGB(0xa6, 0xad, 0xc8),
		Border:     core.RGB(0x45, 0x47, 0x5a),
		Accent:     core.RGB(0x89, 0xb4, 0xfa),
	}
}

// Light is a light theme.
func Light() *Theme {
	return &Theme{
		Background: core.RGB(0xef, 0xf1, 0xf5),
		Text:       core.RGB(0x4c, 0x4f, 0x69),
		Header:     core.RGB(0xdc, 0xe0, 0xe8),
		HeaderText: core.RGB(0x5c, 0x5f, 0x77),
		Border:     core.RGB(0x9c, 0xa0, 0xb0),
		Accent:     core.RGB(0x1e, 0x66, 0xf5),
	}
}

// ParseColor parses a "#rrggbb" hex string.
func ParseColor(s string) (core.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return core.Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return fromColorful(c), nil
}

func toColorful(c core.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) core.Color {
	r, g, b := c.Clamped().RGB255()
	return core.RGB(r, g, b)
}

// blend mixes a toward b by t in Lab space.
func blend(a, b core.Color, t float64) core.Color {
	return fromColorful(toColorful(a).BlendLab(toColorful(b), t).Clamped())
}

// HoverShade is the header highlight for the hovered row and column.
func (t *Theme) HoverShade() core.Color {
	return blend(t.Header, t.Accent, 0.35)
}

// SelectionColors are the background and text of selected cells.
func (t *Theme) SelectionColors() (bg, fg core.Color) {
	return blend(t.Background, t.Accent, 0.45), t.Background
}

// CursorRowShade is a subtle background for the row under the cursor.
func (t *Theme) CursorRowShade() core.Color {
	return blend(t.Background, t.Text, 0.08)
}

// ViewerStyle implements hexview.Catalog.
func (t *Theme) ViewerStyle(status hexview.Status) hexview.Style {
	s := hexview.Style{
		Background:       t.Background,
		Text:             t.Text,
		HeaderBackground: t.Header,
		HeaderHover:      t.HoverShade(),
		HeaderText:       t.HeaderText,
		Border:           t.Border,
	}
	switch status {
	case hexview.StatusFocused:
		s.Border = t.Accent
	case hexview.StatusDisabled:
		s.Text = blend(t.Text, t.Background, 0.5)
		s.HeaderText = blend(t.HeaderText, t.Background, 0.5)
	}
	return s
}

// ScrollbarStyle implements scroll.Catalog.
func (t *Theme) ScrollbarStyle(status scroll.Status) scroll.Style {
	track := blend(t.Background, t.Header, 0.6)
	thumb := blend(t.Header, t.Text, 0.25)

	switch status {
	case scroll.StatusHovered:
		thumb = blend(thumb, t.Accent, 0.4)
	case scroll.StatusDragged:
		thumb = t.Accent
	case scroll.StatusDisabled:
		thumb = blend(thumb, track, 0.7)
	}

	return scroll.Style{
		Track:       track,
		TrackBorder: t.Border,
		Thumb:       thumb,
		ThumbBorder: blend(thumb, t.Border, 0.5),
	}
}

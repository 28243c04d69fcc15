// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hexview/padding.go
// Summary: Padding configuration. Settings are expressed in multiples of
// the line height so they scale with the font; they are resolved to
// whole pixels before layout.

package hexview

import (
	"math"

	"github.com/framegrace/hexview/core"
)

// PaddingSettings contains all paddings of the Viewer relative to the
// line height.
type PaddingSettings struct {
	// HeaderTop and HeaderBottom pad the text in the byte and char area
	// headers.
	HeaderTop    float64
	HeaderBottom float64
	// ContentTop and ContentBottom pad the data cells in the byte and
	// char areas.
	ContentTop    float64
	ContentBottom float64
	// AddressAreaLeft and AddressAreaRight pad the address area cells.
	AddressAreaLeft  float64
	AddressAreaRight float64
	// ByteAreaLeft and ByteAreaRight pad the byte area cells.
	ByteAreaLeft  float64
	ByteAreaRight float64
	// CharAreaLeft and CharAreaRight pad the char area cells.
	CharAreaLeft  float64
	CharAreaRight float64
	// DataCellVertical pads above and below the byte/char cell text.
	DataCellVertical float64
	// ByteCellHorizontal pads left and right of the byte cell text.
	ByteCellHorizontal float64
	// CharCellHorizontal pads left and right of the char cell text.
	CharCellHorizontal float64
}

// CompactPadding is the default, tighter preset.
func CompactPadding() PaddingSettings {
	return PaddingSettings{
		HeaderTop:    0.3,
		HeaderBottom: 0.3,
		// To match visual horizontal whitespace of 0.6 these should be
		// 0.4, but 0.4 doesn't look good. Maybe it has to do with the
		// ascent/descent.
		ContentTop:         0.3,
		ContentBottom:      0.3,
		AddressAreaLeft:    0.6,
		AddressAreaRight:   0.6,
		ByteAreaLeft:       0.3,
		ByteAreaRight:      0.3,
		CharAreaLeft:       0.25,
		CharAreaRight:      0.55,
		DataCellVertical:   0.2,
		ByteCellHorizontal: 0.3,
		CharCellHorizontal: 0.05,
	}
}

// SpaciousPadding is the roomier preset.
func SpaciousPadding() PaddingSettings {
	return PaddingSettings{
		HeaderTop:          0.6,
		HeaderBottom:       0.6,
		ContentTop:         0.4,
		ContentBottom:      0.4,
		AddressAreaLeft:    0.8,
		AddressAreaRight:   0.8,
		ByteAreaLeft:       0.4,
		ByteAreaRight:      0.4,
		CharAreaLeft:       0.3,
		CharAreaRight:      0.7,
		DataCellVertical:   0.3,
		ByteCellHorizontal: 0.4,
		CharCellHorizontal: 0.1,
	}
}

// hexPadding is PaddingSettings resolved to pixels.
type hexPadding struct {
	headerTop        float64
	headerBottom     float64
	contentTop       float64
	contentBottom    float64
	addressAreaLeft  float64
	addressAreaRight float64
	byteAreaLeft     float64
	byteAreaRight    float64
	charAreaLeft     float64
	charAreaRight    float64
	dataVertical     float64
	byteHorizontal   float64
	charHorizontal   float64
}

func resolvePadding(s PaddingSettings, metrics core.CellMetrics) hexPadding {
	// Without rounding to full pixels text doesn't always look good.
	abs := func(v float64) float64 {
		return math.Round(v * metrics.LineHeight)
	}
	return hexPadding{
		headerTop:        abs(s.HeaderTop),
		headerBottom:     abs(s.HeaderBottom),
		contentTop:       abs(s.ContentTop),
		contentBottom:    abs(s.ContentBottom),
		addressAreaLeft:  abs(s.AddressAreaLeft),
		addressAreaRight: abs(s.AddressAreaRight),
		byteAreaLeft:     abs(s.ByteAreaLeft),
		byteAreaRight:    abs(s.ByteAreaRight),
		charAreaLeft:     abs(s.CharAreaLeft),
		charAreaRight:    abs(s.CharAreaRight),
		dataVertical:     abs(s.DataCellVertical),
		byteHorizontal:   abs(s.ByteCellHorizontal),
		charHorizontal:   abs(s.CharCellHorizontal),
	}
}

func (p hexPadding) addressAreaPadding() core.Padding {
	return core.Padding{
		Top: p.contentTop, Bottom: p.contentBottom,
		Left: p.addressAreaLeft, Right: p.addressAreaRight,
	}
}

func (p hexPadding) byteAreaPadding() core.Padding {
	return core.Padding{
		Top: p.contentTop, Bottom: p.contentBottom,
		Left: p.byteAreaLeft, Right: p.byteAreaRight,
	}
}

func (p hexPadding) charAreaPadding() core.Padding {
	return core.Padding{
		Top: p.contentTop, Bottom: p.contentBottom,
		Left: p.charAreaLeft, Right: p.charAreaRight,
	}
}

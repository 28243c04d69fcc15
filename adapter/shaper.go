// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: adapter/shaper.go
// Summary: Text shaping for terminal cells. One pixel is one terminal
// cell, so metrics are tiny integers. The viewer's whole vocabulary is
// 256 byte strings, 256 glyphs and 16 digits, pre-shaped once.

// Package adapter hosts the viewer on a tcell screen: it shapes text,
// renders, translates events and runs the redraw loop.
package adapter

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/encoding/charmap"

	"github.com/framegrace/hexview/core"
)

// Run is a pre-shaped string with its cell width.
type Run struct {
	Text  string
	width float64
}

func (r Run) Width() float64 { return r.width }

func newRun(s string) Run {
	return Run{Text: s, width: float64(runewidth.StringWidth(s))}
}

// Shaper implements core.TextShaper for a terminal grid.
type Shaper struct {
	bytes  [256]Run
	chars  [256]Run
	digits [16]Run
}

// NewShaper pre-shapes the full vocabulary. Bytes render as "%02X";
// characters decode as Windows-1252 with a dot for non-printables.
func NewShaper() *Shaper {
	s := &Shaper{}
	for i := 0; i < 256; i++ {
		s.bytes[i] = newRun(fmt.Sprintf("%02X", i))
		s.chars[i] = newRun(decodeChar(byte(i)))
	}
	for i := 0; i < 16; i++ {
		s.digits[i] = newRun(string(hexDigitRune(byte(i))))
	}
	return s
}

func decodeChar(v byte) string {
	if v < 0x20 {
		return "."
	}
	r := charmap.Windows1252.DecodeByte(v)
	if r == '�' || runewidth.RuneWidth(r) != 1 {
		return "."
	}
	return string(r)
}

func hexDigitRune(d byte) rune {
	if d < 10 {
		return rune('0' + d)
	}
	return rune('A' + d - 10)
}

func (s *Shaper) Metrics() core.CellMetrics {
	return core.CellMetrics{ByteWidth: 2, CharWidth: 1, LineHeight: 1}
}

func (s *Shaper) Byte(v byte) core.TextRun {
	return s.bytes[v]
}

func (s *Shaper) Char(v byte) core.TextRun {
	return s.chars[v]
}

func (s *Shaper) HexDigit(d byte) core.TextRun {
	return s.digits[d%16]
}

// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/color.go
// Summary: RGBA color value shared by styles and renderers.

package core

// Color is an 8-bit-per-channel RGBA value. The zero value is fully
// transparent black, which renderers treat as "draw nothing".
type Color struct {
	R, G, B, A uint8
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// Transparent reports whether drawing this color is a no-op.
func (c Color) Transparent() bool {
	return c.A == 0
}

// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: adapter/renderer.go
// Summary: core.Renderer over a tcell.Screen. Rect coordinates map 1:1
// to terminal cells; fills write spaces, text writes runes on top of
// whatever background the cell already has.

package adapter

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/hexview/core"
)

// Renderer draws into a tcell screen, clipped to a rectangle.
type Renderer struct {
	screen tcell.Screen
	clip   core.Rect
}

// NewRenderer wraps screen with the full screen size as the clip.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		clip:   core.Rect{Width: float64(w), Height: float64(h)},
	}
}

func tcellColor(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// cellRect converts a pixel rect to whole cells. The left/top edge
// rounds, the extent keeps at least the covered cells.
func cellRect(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Round(r.X))
	y0 = int(math.Round(r.Y))
	x1 = int(math.Round(r.X + r.Width))
	y1 = int(math.Round(r.Y + r.Height))
	return
}

func (r *Renderer) FillRect(rect core.Rect, c core.Color) {
	if c.Transparent() {
		return
	}
	rect = rect.Intersect(r.clip)
	if rect.Empty() {
		return
	}
	x0, y0, x1, y1 := cellRect(rect)
	style := tcell.StyleDefault.Background(tcellColor(c))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *Renderer) StrokeRect(rect core.Rect, c core.Color, _ float64) {
	if c.Transparent() {
		return
	}
	x0, y0, x1, y1 := cellRect(rect)
	if x1-x0 < 2 || y1-y0 < 2 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcellColor(c))

	set := func(x, y int, ch rune) {
		if !r.clip.Contains(core.Point{X: float64(x), Y: float64(y)}) {
			return
		}
		// Keep the background the cell already has.
		_, _, prev, _ := r.screen.GetContent(x, y)
		_, bg, _ := prev.Decompose()
		r.screen.SetContent(x, y, ch, nil, style.Background(bg))
	}

	for x := x0 + 1; x < x1-1; x++ {
		set(x, y0, tcell.RuneHLine)
		set(x, y1-1, tcell.RuneHLine)
	}
	for y := y0 + 1; y < y1-1; y++ {
		set(x0, y, tcell.RuneVLine)
		set(x1-1, y, tcell.RuneVLine)
	}
	set(x0, y0, tcell.RuneULCorner)
	set(x1-1, y0, tcell.RuneURCorner)
	set(x0, y1-1, tcell.RuneLLCorner)
	set(x1-1, y1-1, tcell.RuneLRCorner)
}

func (r *Renderer) DrawText(run core.TextRun, p core.Point, c core.Color, clip core.Rect) {
	tr, ok := run.(Run)
	if !ok || c.Transparent() {
		return
	}
	clip = clip.Intersect(r.clip)

	x := int(math.Round(p.X))
	y := int(math.Round(p.Y))
	fg := tcellColor(c)

	for _, ch := range tr.Text {
		w := runewidth.RuneWidth(ch)
		if clip.Contains(core.Point{X: float64(x), Y: float64(y)}) {
			_, _, prev, _ := r.screen.GetContent(x, y)
			_, bg, _ := prev.Decompose()
			r.screen.SetContent(x, y, ch, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
		x += w
	}
}

func (r *Renderer) Layer(bounds core.Rect, fn func(core.Renderer)) {
	fn(&Renderer{screen: r.screen, clip: r.clip.Intersect(bounds)})
}

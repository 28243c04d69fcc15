// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: adapter/shell.go
// Summary: The tcell shell: owns the screen, polls events on a goroutine,
// feeds the viewer, applies its intents and repaints. The bottom screen
// row is a status line.

package adapter

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/hexview/core"
	"github.com/framegrace/hexview/hexview"
	"github.com/framegrace/hexview/theme"
)

// Shell hosts one viewer on a terminal.
type Shell struct {
	screen  tcell.Screen
	viewer  *hexview.Viewer
	content *hexview.Content
	theme   *theme.Theme
	styler  *hexview.ContentStyler
	logger  *log.Logger

	tr        translator
	cursor    uint64
	selection *hexview.Selection

	redrawAt time.Time
	dirty    bool
}

// NewShell creates and initializes the terminal screen. Call Run next;
// the screen is released when Run returns.
func NewShell(viewer *hexview.Viewer, content *hexview.Content, th *theme.Theme, logger *log.Logger) (*Shell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	s := &Shell{
		screen:  screen,
		viewer:  viewer,
		content: content,
		theme:   th,
		styler:  hexview.NewContentStyler(0),
		logger:  logger,
		dirty:   true,
	}
	viewer.SetStyler(s.styler)
	return s, nil
}

// Refresh asks the shell to re-read the content and repaint. Safe to
// call from any goroutine.
func (s *Shell) Refresh() {
	s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// bounds is the viewer rectangle: the screen minus the status row.
func (s *Shell) bounds() core.Rect {
	w, h := s.screen.Size()
	if h > 0 {
		h--
	}
	return core.Rect{Width: float64(w), Height: float64(h)}
}

// Run drives the shell until the user quits with q or Ctrl+C.
func (s *Shell) Run() error {
	defer s.screen.Fini()

	events := make(chan tcell.Event, 32)
	stop := make(chan struct{})
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-stop:
				close(events)
				return
			}
		}
	}()
	defer func() {
		close(stop)
		s.screen.PostEventWait(tcell.NewEventInterrupt(nil))
	}()

	s.draw()

	for {
		var deadline <-chan time.Time
		if !s.redrawAt.IsZero() {
			wait := time.Until(s.redrawAt)
			if wait < 0 {
				wait = 0
			}
			deadline = time.After(wait)
		}

		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !s.handle(ev) {
				return nil
			}
		case <-deadline:
			s.redrawAt = time.Time{}
			s.dirty = true
		}

		if s.dirty {
			s.draw()
		}
	}
}

func (s *Shell) handle(ev tcell.Event) bool {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		if tev.Key() == tcell.KeyCtrlC || (tev.Key() == tcell.KeyRune && tev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		s.screen.Sync()
		s.dirty = true
	case *tcell.EventInterrupt:
		// External refresh (e.g. the file changed on disk).
		s.content.Update(s.content.Viewport())
		s.rebuildStyler()
		s.dirty = true
		return true
	}

	bounds := s.bounds()
	now := time.Now()
	for _, cev := range s.tr.translate(ev) {
		s.apply(s.viewer.Update(cev, bounds, now))
	}
	return true
}

func (s *Shell) apply(intents []hexview.Intent) {
	for _, in := range intents {
		switch in := in.(type) {
		case hexview.Scrolled:
			s.content.Update(in.Viewport)
			s.rebuildStyler()
			s.dirty = true
		case hexview.ViewportResized:
			s.content.Update(in.Viewport)
			s.rebuildStyler()
			s.dirty = true
		case hexview.CursorMoved:
			s.cursor = in.Offset
			s.dirty = true
		case hexview.SelectionChanged:
			s.selection = in.Selection
			s.rebuildStyler()
			s.dirty = true
		case hexview.Redraw:
			s.dirty = true
		case hexview.RedrawAt:
			if s.redrawAt.IsZero() || in.At.Before(s.redrawAt) {
				s.redrawAt = in.At
			}
		}
	}
}

// rebuildStyler paints the selection into the per-cell styler for the
// current viewport.
func (s *Shell) rebuildStyler() {
	vp := s.content.Viewport()
	s.styler.Clear(vp.CellCount())
	if s.selection == nil {
		return
	}

	bg, fg := s.theme.SelectionColors()
	selEnd := s.selection.Offset + s.selection.Length

	row := int64(0)
	vp.EachRow(func(start, end uint64) bool {
		lo := max(start, s.selection.Offset)
		hi := min(end, selEnd)
		for off := lo; off < hi; off++ {
			i := int(row*vp.Columns + int64(off-start))
			s.styler.SetBackground(i, bg)
			s.styler.SetText(i, fg)
		}
		row++
		return true
	})
}

func (s *Shell) draw() {
	s.dirty = false

	// Deadline timers inside the viewer run on delivered frames.
	s.apply(s.viewer.Update(core.RedrawRequested{}, s.bounds(), time.Now()))

	r := NewRenderer(s.screen)
	w, h := s.screen.Size()
	full := core.Rect{Width: float64(w), Height: float64(h)}

	r.FillRect(full, s.theme.Background)
	s.viewer.Draw(r, s.theme, s.bounds())
	s.drawStatus(r, w, h)

	s.screen.Show()
}

func (s *Shell) drawStatus(r *Renderer, w, h int) {
	if h < 1 {
		return
	}
	line := core.Rect{Y: float64(h - 1), Width: float64(w), Height: 1}
	r.FillRect(line, s.theme.Header)

	status := fmt.Sprintf(" %08X / %d bytes", s.cursor, s.content.Size())
	if s.selection != nil {
		status += fmt.Sprintf("  sel %X+%d", s.selection.Offset, s.selection.Length)
	}
	if err := s.content.Err(); err != nil {
		status += fmt.Sprintf("  read error: %v", err)
		if s.logger != nil {
			s.logger.Printf("[CONTENT] %v", err)
		}
	}

	x := 0
	fg := tcellColor(s.theme.HeaderText)
	bg := tcellColor(s.theme.Header)
	for _, ch := range status {
		if x >= w {
			break
		}
		s.screen.SetContent(x, h-1, ch, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		x++
	}
}

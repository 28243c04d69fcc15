// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: adapter/events.go
// Summary: Translates tcell input events into core events. Mouse button
// transitions are synthesized from the button mask; modifier changes are
// reported as their own events so widgets can track shift for wheel and
// selection handling.

package adapter

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/hexview/core"
)

// translator keeps the state needed to turn tcell's level-triggered
// mouse reports into press/release/move events.
type translator struct {
	buttons   tcell.ButtonMask
	modifiers core.Modifiers
}

func coreModifiers(m tcell.ModMask) core.Modifiers {
	var out core.Modifiers
	if m&tcell.ModShift != 0 {
		out |= core.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= core.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= core.ModAlt
	}
	return out
}

var keyTable = map[tcell.Key]core.Key{
	tcell.KeyLeft:   core.KeyLeft,
	tcell.KeyRight:  core.KeyRight,
	tcell.KeyUp:     core.KeyUp,
	tcell.KeyDown:   core.KeyDown,
	tcell.KeyPgUp:   core.KeyPageUp,
	tcell.KeyPgDn:   core.KeyPageDown,
	tcell.KeyHome:   core.KeyHome,
	tcell.KeyEnd:    core.KeyEnd,
	tcell.KeyEscape: core.KeyEscape,
}

// translate converts one tcell event into zero or more core events, in
// delivery order.
func (t *translator) translate(ev tcell.Event) []core.Event {
	var out []core.Event

	push := func(mods core.Modifiers) {
		if mods != t.modifiers {
			t.modifiers = mods
			out = append(out, core.ModifiersChanged{Modifiers: mods})
		}
	}

	switch ev := ev.(type) {
	case *tcell.EventKey:
		push(coreModifiers(ev.Modifiers()))
		if k, ok := keyTable[ev.Key()]; ok {
			out = append(out, core.KeyPressed{Key: k, Modifiers: t.modifiers})
		}

	case *tcell.EventMouse:
		push(coreModifiers(ev.Modifiers()))

		x, y := ev.Position()
		pos := core.Point{X: float64(x), Y: float64(y)}

		if w := wheelDelta(ev.Buttons()); w != (core.Wheel{}) {
			w.Position = pos
			w.Kind = core.WheelLines
			out = append(out, w)
			return out
		}

		const primary = tcell.Button1
		was := t.buttons & primary
		now := ev.Buttons() & primary
		t.buttons = ev.Buttons()

		switch {
		case was == 0 && now != 0:
			out = append(out, core.PointerPressed{Position: pos, Button: core.ButtonLeft})
		case was != 0 && now == 0:
			out = append(out, core.PointerReleased{Position: pos, Button: core.ButtonLeft})
		default:
			out = append(out, core.PointerMoved{Position: pos})
		}
	}
	return out
}

func wheelDelta(b tcell.ButtonMask) core.Wheel {
	var w core.Wheel
	if b&tcell.WheelUp != 0 {
		w.Y = 1
	}
	if b&tcell.WheelDown != 0 {
		w.Y = -1
	}
	if b&tcell.WheelLeft != 0 {
		w.X = 1
	}
	if b&tcell.WheelRight != 0 {
		w.X = -1
	}
	return w
}

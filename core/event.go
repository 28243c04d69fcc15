// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/event.go
// Summary: Toolkit-neutral input events. Shells translate their native
// events into these before handing them to widgets.

package core

// Event is implemented by every input event delivered to a widget.
type Event interface {
	isEvent()
}

// PointerButton identifies a mouse button.
type PointerButton int

const (
	ButtonLeft PointerButton = iota
	ButtonMiddle
	ButtonRight
)

// PointerPressed is a mouse button press at a position.
type PointerPressed struct {
	Position Point
	Button   PointerButton
}

// PointerReleased is a mouse button release at a position.
type PointerReleased struct {
	Position Point
	Button   PointerButton
}

// PointerMoved is a pointer motion, with or without buttons held.
type PointerMoved struct {
	Position Point
}

// TouchPhase describes the stage of a touch gesture.
type TouchPhase int

const (
	TouchPressed TouchPhase = iota
	TouchMoved
	TouchLifted
)

// Touch is a single-finger touch event. Widgets treat Pressed/Moved/Lifted
// like the corresponding pointer events.
type Touch struct {
	Position Point
	Phase    TouchPhase
}

// WheelDeltaKind distinguishes line-based from pixel-based wheel input.
type WheelDeltaKind int

const (
	WheelLines WheelDeltaKind = iota
	WheelPixels
)

// Wheel is a scroll wheel or trackpad event. X/Y are raw device deltas in
// the unit named by Kind; positive Y means the content should move up.
type Wheel struct {
	Position Point
	Kind     WheelDeltaKind
	X, Y     float64
}

// Key names the subset of keys the viewer reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEscape
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Shift reports whether the shift bit is set.
func (m Modifiers) Shift() bool { return m&ModShift != 0 }

// KeyPressed is a key press with the modifiers held at press time.
type KeyPressed struct {
	Key       Key
	Modifiers Modifiers
}

// ModifiersChanged reports the new modifier set whenever it changes.
type ModifiersChanged struct {
	Modifiers Modifiers
}

// RedrawRequested is delivered by the shell on every frame it paints.
// Widgets use it to run deadline timers.
type RedrawRequested struct{}

func (PointerPressed) isEvent()    {}
func (PointerReleased) isEvent()   {}
func (PointerMoved) isEvent()      {}
func (Touch) isEvent()             {}
func (Wheel) isEvent()             {}
func (KeyPressed) isEvent()        {}
func (ModifiersChanged) isEvent()  {}
func (RedrawRequested) isEvent()   {}

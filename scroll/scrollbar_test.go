package scroll

import (
	"testing"
	"time"

	"github.com/framegrace/hexview/core"
)

// testViewport scrolls 1000 steps of 1px through a 100px window, so the
// thumb is 10px long on a 100px track and the scroll max is 900.
func testViewport() Viewport {
	return Viewport{Size: 1000, StepSize: 1, ContentSize: 100}
}

func testBounds() core.Rect {
	return core.Rect{X: 90, Y: 0, Width: 10, Height: 100}
}

func TestBarLayoutThumb(t *testing.T) {
	b := NewVertical()
	track, thumb, ok := b.Layout(testBounds(), testViewport())
	if !ok {
		t.Fatal("layout failed")
	}
	if track != testBounds() {
		t.Fatalf("track = %+v", track)
	}
	if thumb.Height != 10 || thumb.Y != 0 {
		t.Fatalf("thumb = %+v, want 10px at origin", thumb)
	}

	// A tiny ratio still gets the minimum thumb.
	vp := Viewport{Size: 1 << 20, StepSize: 1, ContentSize: 100}
	_, thumb, _ = b.Layout(testBounds(), vp)
	if thumb.Height != MinThumbLength {
		t.Fatalf("thumb height = %v, want %v", thumb.Height, MinThumbLength)
	}

	// Thumb position follows the fitted offset.
	vp = testViewport()
	vp.Offset = 900
	_, thumb, _ = b.Layout(testBounds(), vp)
	if thumb.Y != 90 {
		t.Fatalf("thumb at max offset: y = %v, want 90", thumb.Y)
	}
}

func TestBarThumbDrag(t *testing.T) {
	b := NewVertical()
	var st State
	vp := testViewport()
	now := time.Unix(0, 0)

	r := b.Update(core.PointerPressed{Position: core.Point{X: 95, Y: 5}}, testBounds(), vp, &st, now)
	if r.Kind != ThumbGrabbed {
		t.Fatalf("press on thumb = %+v, want ThumbGrabbed", r)
	}
	if !st.Dragging() {
		t.Fatal("state should be dragging after grab")
	}

	// Grab offset was 5; pointer at y=55 puts the thumb top at 50 of a
	// 90px visual range: offset = round(900*50/90) = 500.
	r = b.Update(core.PointerMoved{Position: core.Point{X: 95, Y: 55}}, testBounds(), vp, &st, now)
	if r.Kind != ThumbDragged || r.Offset != 500 {
		t.Fatalf("drag = %+v, want ThumbDragged offset 500", r)
	}

	// Same pointer position again maps to the unchanged offset.
	vp.Offset = 500
	r = b.Update(core.PointerMoved{Position: core.Point{X: 95, Y: 55}}, testBounds(), vp, &st, now)
	if r.Kind != ResultNone {
		t.Fatalf("stationary drag = %+v, want none", r)
	}

	// Dragging far past the track clamps to the extremes.
	r = b.Update(core.PointerMoved{Position: core.Point{X: 95, Y: 500}}, testBounds(), vp, &st, now)
	if r.Kind != ThumbDragged || r.Offset != 900 {
		t.Fatalf("overdrag = %+v, want offset 900", r)
	}

	r = b.Update(core.PointerReleased{Position: core.Point{X: 95, Y: 500}}, testBounds(), vp, &st, now)
	if r.Kind != AppearanceChanged {
		t.Fatalf("release = %+v, want AppearanceChanged", r)
	}
	if st.Pressed() {
		t.Fatal("region should clear on release")
	}
}

func TestBarTrackClickAndHold(t *testing.T) {
	b := NewVertical()
	var st State
	vp := testViewport()
	now := time.Unix(0, 0)

	r := b.Update(core.PointerPressed{Position: core.Point{X: 95, Y: 50}}, testBounds(), vp, &st, now)
	if r.Kind != TrackClicked || r.Side != SideAfter || r.Click != core.ClickSingle {
		t.Fatalf("track press = %+v, want single TrackClicked after thumb", r)
	}
	// 50px into a 90px visual range maps to offset 900*50/90 = 500.
	if r.Offset != 500 {
		t.Fatalf("mapped track offset = %v, want 500", r.Offset)
	}

	// Redraws while held repeat the mapped payload.
	r = b.Update(core.RedrawRequested{}, testBounds(), vp, &st, now)
	if r.Kind != TrackHeld || r.Side != SideAfter || r.Offset != 500 {
		t.Fatalf("redraw while held = %+v, want TrackHeld at 500", r)
	}

	r = b.Update(core.PointerReleased{Position: core.Point{X: 95, Y: 50}}, testBounds(), vp, &st, now)
	if r.Kind != AppearanceChanged {
		t.Fatalf("release = %+v", r)
	}
	r = b.Update(core.RedrawRequested{}, testBounds(), vp, &st, now)
	if r.Kind != ResultNone {
		t.Fatal("held repeat should stop after release")
	}

	// A second quick press doubles the click.
	r = b.Update(core.PointerPressed{Position: core.Point{X: 95, Y: 50}}, testBounds(), vp, &st, now.Add(100*time.Millisecond))
	if r.Click != core.ClickDouble {
		t.Fatalf("quick second press click = %v, want double", r.Click)
	}
}

func TestBarTrackBeforeSide(t *testing.T) {
	b := NewVertical()
	var st State
	vp := testViewport()
	vp.Offset = 900

	r := b.Update(core.PointerPressed{Position: core.Point{X: 95, Y: 20}}, testBounds(), vp, &st, time.Unix(0, 0))
	if r.Kind != TrackClicked || r.Side != SideBefore {
		t.Fatalf("press above thumb = %+v, want SideBefore", r)
	}
}

func TestBarIgnoresFullyVisible(t *testing.T) {
	b := NewVertical()
	var st State
	vp := Viewport{Size: 5, StepSize: 1, ContentSize: 100}

	// The first event flips the status to disabled, after that presses
	// are silent no-ops.
	r := b.Update(core.PointerPressed{Position: core.Point{X: 95, Y: 2}}, testBounds(), vp, &st, time.Unix(0, 0))
	if r.Kind != AppearanceChanged {
		t.Fatalf("first press on disabled bar = %+v, want AppearanceChanged", r)
	}
	r = b.Update(core.PointerPressed{Position: core.Point{X: 95, Y: 2}}, testBounds(), vp, &st, time.Unix(0, 0))
	if r.Kind != ResultNone {
		t.Fatalf("press on disabled bar = %+v, want none", r)
	}
	if st.Status() != StatusDisabled {
		t.Fatal("fully visible axis should report a disabled bar")
	}
}

func TestBarHoverAppearance(t *testing.T) {
	b := NewVertical()
	var st State
	vp := testViewport()
	now := time.Unix(0, 0)

	r := b.Update(core.PointerMoved{Position: core.Point{X: 95, Y: 50}}, testBounds(), vp, &st, now)
	if r.Kind != AppearanceChanged {
		t.Fatalf("pointer enter = %+v, want AppearanceChanged", r)
	}
	r = b.Update(core.PointerMoved{Position: core.Point{X: 95, Y: 60}}, testBounds(), vp, &st, now)
	if r.Kind != ResultNone {
		t.Fatalf("move within bar = %+v, want none", r)
	}
	r = b.Update(core.PointerMoved{Position: core.Point{X: 10, Y: 10}}, testBounds(), vp, &st, now)
	if r.Kind != AppearanceChanged {
		t.Fatalf("pointer leave = %+v, want AppearanceChanged", r)
	}
}

func TestBarTouchActsAsPointer(t *testing.T) {
	b := NewVertical()
	var st State
	vp := testViewport()
	now := time.Unix(0, 0)

	r := b.Update(core.Touch{Position: core.Point{X: 95, Y: 5}, Phase: core.TouchPressed}, testBounds(), vp, &st, now)
	if r.Kind != ThumbGrabbed {
		t.Fatalf("touch press on thumb = %+v", r)
	}
	r = b.Update(core.Touch{Position: core.Point{X: 95, Y: 55}, Phase: core.TouchMoved}, testBounds(), vp, &st, now)
	if r.Kind != ThumbDragged || r.Offset != 500 {
		t.Fatalf("touch drag = %+v", r)
	}
	r = b.Update(core.Touch{Position: core.Point{X: 95, Y: 55}, Phase: core.TouchLifted}, testBounds(), vp, &st, now)
	if r.Kind != AppearanceChanged || st.Pressed() {
		t.Fatalf("touch lift = %+v, pressed=%v", r, st.Pressed())
	}
}

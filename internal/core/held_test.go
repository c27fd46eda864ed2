package core

import "testing"

func TestHeldKeysHoldWindow(t *testing.T) {
	h := NewHeldKeys(3)
	h.Press(ActionLeft)

	f := h.Frame()
	if !f.Held[ActionLeft] || !f.WasPressed(ActionLeft) {
		t.Fatal("first frame should report Left held and pressed")
	}

	f = h.Frame()
	if !f.Held[ActionLeft] || f.WasPressed(ActionLeft) {
		t.Fatal("second frame should report Left held without a new press edge")
	}

	h.Frame()
	f = h.Frame()
	if f.Held[ActionLeft] {
		t.Fatal("Left should lapse after the hold window")
	}
	if !f.WasReleased(ActionLeft) {
		t.Error("lapse should produce a release edge")
	}
}

func TestHeldKeysRepeatExtendsWindow(t *testing.T) {
	h := NewHeldKeys(2)
	h.Press(ActionCharge)

	for i := 0; i < 10; i++ {
		f := h.Frame()
		if !f.Held[ActionCharge] {
			t.Fatalf("tick %d: auto-repeat should keep Charge held", i)
		}
		if i > 0 && f.WasPressed(ActionCharge) {
			t.Fatalf("tick %d: repeat must not produce a new press edge", i)
		}
		h.Press(ActionCharge)
	}
}

func TestHeldKeysRepeatWindow(t *testing.T) {
	h := NewHeldKeys(6)
	h.SetRepeatWindow(2)
	h.Press(ActionUp)

	// The first press covers the delay before auto-repeat starts.
	for i := 0; i < 5; i++ {
		if f := h.Frame(); !f.Held[ActionUp] {
			t.Fatalf("tick %d: first press should hold Up for the whole hold window", i)
		}
	}

	// A repeat never shortens the window that is already armed.
	h.Press(ActionUp)
	if f := h.Frame(); !f.Held[ActionUp] {
		t.Fatal("repeat should keep Up held")
	}
	if f := h.Frame(); !f.Held[ActionUp] {
		t.Fatal("repeat should arm the repeat window")
	}
	f := h.Frame()
	if f.Held[ActionUp] || !f.WasReleased(ActionUp) {
		t.Error("Up should lapse once repeats stop")
	}

	// After a lapse the next press arms the full hold window again.
	h.Press(ActionUp)
	for i := 0; i < 6; i++ {
		if f := h.Frame(); !f.Held[ActionUp] {
			t.Fatalf("tick %d: new press should arm the hold window", i)
		}
	}
}

func TestHeldKeysExplicitRelease(t *testing.T) {
	h := NewHeldKeys(0)
	h.Press(ActionRight)

	for i := 0; i < 100; i++ {
		if f := h.Frame(); !f.Held[ActionRight] {
			t.Fatalf("tick %d: zero window should hold until released", i)
		}
	}

	h.Release(ActionRight)
	f := h.Frame()
	if f.Held[ActionRight] || !f.WasReleased(ActionRight) {
		t.Error("Release should drop the key with a release edge")
	}
}

func TestHeldKeysTapBetweenFrames(t *testing.T) {
	h := NewHeldKeys(0)
	h.Press(ActionCharge)
	h.Release(ActionCharge)

	f := h.Frame()
	if !f.WasPressed(ActionCharge) || !f.WasReleased(ActionCharge) {
		t.Error("tap between frames should report both edges")
	}
	if f.Held[ActionCharge] {
		t.Error("tapped key should not be held")
	}

	f = h.Frame()
	if f.WasPressed(ActionCharge) || f.WasReleased(ActionCharge) {
		t.Error("edges must not repeat on the next frame")
	}
}

func TestHeldKeysSnapshotIsStable(t *testing.T) {
	h := NewHeldKeys(0)
	h.Press(ActionUp)
	f := h.Frame()

	// Mutations after sampling don't leak into the snapshot
	h.Release(ActionUp)
	h.Press(ActionDown)
	if !f.Held[ActionUp] || f.Held[ActionDown] {
		t.Error("frame snapshot changed after sampling")
	}
}

func TestHeldKeysClick(t *testing.T) {
	h := NewHeldKeys(5)
	h.Click(1, 2)
	h.Click(4, 7)

	f := h.Frame()
	if f.Click == nil || *f.Click != (Point{X: 4, Y: 7}) {
		t.Fatalf("Click = %v, expected last click (4, 7)", f.Click)
	}
	if f = h.Frame(); f.Click != nil {
		t.Error("click should be consumed by one frame")
	}
}

func TestInputFrameHelpers(t *testing.T) {
	f := NewInputFrame()
	if f.AnyHeld() {
		t.Error("empty frame should hold nothing")
	}

	f.Set(ActionUp)
	f.Click = &Point{X: 1, Y: 1}
	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionUp) || !clone.AnyHeld() || clone.Click == nil {
		t.Error("clone should survive Clear on the original")
	}
	if f.Has(ActionUp) || f.Click != nil {
		t.Error("Clear should reset the frame")
	}

	clone.Release(ActionUp)
	if clone.Held[ActionUp] || !clone.WasReleased(ActionUp) {
		t.Error("Release should move the action to the released set")
	}
}

func TestActionString(t *testing.T) {
	if ActionCharge.String() != "Charge" {
		t.Errorf("ActionCharge.String() = %q", ActionCharge.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("unknown actions should stringify as Unknown")
	}
}

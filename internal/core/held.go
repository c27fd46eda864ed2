package core

// HeldKeys tracks which actions are currently held down.
//
// It is written by key-down/key-up events and sampled once per tick through
// Frame. Terminals only report key presses (with auto-repeat), so a press
// keeps an action held for a window of ticks and the action is released once
// the window lapses. The first press arms the hold window, which must outlast
// the terminal's delay before auto-repeat starts (often 500-660ms). Repeats
// re-arm the shorter repeat window, so releasing a key that is already
// repeating is noticed quickly. A platform that does
// report key releases can call Release directly, or use a zero window so
// keys stay held until released.
//
// HeldKeys is not safe for concurrent use. Bubble Tea delivers every message
// on one goroutine, which is the only writer and reader.
type HeldKeys struct {
	holdTicks   int
	repeatTicks int
	remaining   map[Action]int // ticks left in the hold window; -1 = until released
	prev        map[Action]bool
	tapped      map[Action]bool // pressed since the last Frame
	click       *Point
}

// NewHeldKeys creates a tracker with the given hold window in ticks.
// A window <= 0 means actions stay held until Release is called.
func NewHeldKeys(holdTicks int) *HeldKeys {
	return &HeldKeys{
		holdTicks: holdTicks,
		remaining: make(map[Action]int),
		prev:      make(map[Action]bool),
		tapped:    make(map[Action]bool),
	}
}

// SetRepeatWindow sets the window re-armed by presses of an action that is
// already held. A window <= 0 re-arms the full hold window.
func (h *HeldKeys) SetRepeatWindow(ticks int) {
	h.repeatTicks = ticks
}

// Press marks an action as held. Repeated presses extend the hold window.
func (h *HeldKeys) Press(a Action) {
	if a == ActionNone {
		return
	}
	left, held := h.remaining[a]
	switch {
	case h.holdTicks <= 0:
		h.remaining[a] = -1
	case held && h.repeatTicks > 0:
		h.remaining[a] = max(left, h.repeatTicks)
	default:
		h.remaining[a] = h.holdTicks
	}
	h.tapped[a] = true
}

// Release drops an action immediately.
func (h *HeldKeys) Release(a Action) {
	delete(h.remaining, a)
}

// Click records a pointer click for the next frame. Later clicks win.
func (h *HeldKeys) Click(x, y int) {
	h.click = &Point{X: x, Y: y}
}

// IsHeld reports whether an action is currently held.
func (h *HeldKeys) IsHeld(a Action) bool {
	return h.remaining[a] != 0
}

// Reset forgets every held action and pending edge.
func (h *HeldKeys) Reset() {
	clear(h.remaining)
	clear(h.prev)
	clear(h.tapped)
	h.click = nil
}

// Frame samples the current state into an InputFrame and ages the hold
// windows by one tick. Call exactly once per simulation tick.
func (h *HeldKeys) Frame() InputFrame {
	f := NewInputFrame()

	for a, left := range h.remaining {
		if left != 0 {
			f.Held[a] = true
		}
	}

	for a := range f.Held {
		if !h.prev[a] {
			f.Pressed[a] = true
		}
	}
	for a := range h.prev {
		if !f.Held[a] {
			f.Released[a] = true
		}
	}
	// A press and release that both landed between two frames still
	// produces both edges.
	for a := range h.tapped {
		if !h.prev[a] && !f.Held[a] {
			f.Pressed[a] = true
			f.Released[a] = true
		}
	}

	f.Click = h.click
	h.click = nil
	clear(h.tapped)

	clear(h.prev)
	for a := range f.Held {
		h.prev[a] = true
	}

	for a, left := range h.remaining {
		switch {
		case left < 0:
		case left <= 1:
			delete(h.remaining, a)
		default:
			h.remaining[a] = left - 1
		}
	}

	return f
}

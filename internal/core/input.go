package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W - move up / aim up
	ActionDown           // Down arrow, S - move down / aim down
	ActionLeft           // Left arrow, A - move left / aim left
	ActionRight          // Right arrow, D - move right / aim right
	ActionCharge         // Space - hold to charge, release to throw
	ActionConfirm        // Enter - confirm / place
	ActionBack           // B, Escape - back to the calendar
	ActionRestart        // R - restart the current game
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
	ActionSelect1        // 1 - first palette slot
	ActionSelect2        // 2 - second palette slot
	ActionSelect3        // 3 - third palette slot
	ActionExport         // E - export the current artwork
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionCharge:  "Charge",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
	ActionSelect1: "Select1",
	ActionSelect2: "Select2",
	ActionSelect3: "Select3",
	ActionExport:  "Export",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the input snapshot for one simulation tick.
// Games read it once per Step; it never changes while a Step runs.
type InputFrame struct {
	Held     map[Action]bool // Actions held during this tick
	Pressed  map[Action]bool // Actions that became held this tick
	Released map[Action]bool // Actions that stopped being held this tick
	Click    *Point          // Left click in screen cells, if any
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:     make(map[Action]bool),
		Pressed:  make(map[Action]bool),
		Released: make(map[Action]bool),
	}
}

// Set marks an action as freshly pressed and held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Held == nil || f.Pressed == nil {
		*f = NewInputFrame()
	}
	f.Held[a] = true
	f.Pressed[a] = true
}

// Release marks an action as released this frame.
func (f *InputFrame) Release(a Action) {
	if f.Released == nil {
		f.Released = make(map[Action]bool)
	}
	delete(f.Held, a)
	f.Released[a] = true
}

// Has returns true if the action is held or was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Held[a] || f.Pressed[a]
}

// WasPressed returns true if the action became held this frame.
func (f InputFrame) WasPressed(a Action) bool {
	return f.Pressed[a]
}

// WasReleased returns true if the action stopped being held this frame.
func (f InputFrame) WasReleased(a Action) bool {
	return f.Released[a]
}

// AnyHeld returns true if at least one action is held.
func (f InputFrame) AnyHeld() bool {
	for _, held := range f.Held {
		if held {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Held)
	clear(f.Pressed)
	clear(f.Released)
	f.Click = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	for k, v := range f.Released {
		clone.Released[k] = v
	}
	if f.Click != nil {
		p := *f.Click
		clone.Click = &p
	}
	return clone
}

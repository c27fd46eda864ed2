package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/advent-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: map[string]core.Action{
		"up":    core.ActionUp,
		"w":     core.ActionUp,
		"down":  core.ActionDown,
		"s":     core.ActionDown,
		"left":  core.ActionLeft,
		"a":     core.ActionLeft,
		"right": core.ActionRight,
		"d":     core.ActionRight,
		" ":     core.ActionCharge,
		"enter": core.ActionConfirm,
		"b":     core.ActionBack,
		"esc":   core.ActionBack,
		"p":     core.ActionPause,
		"r":     core.ActionRestart,
		"1":     core.ActionSelect1,
		"2":     core.ActionSelect2,
		"3":     core.ActionSelect3,
		"e":     core.ActionExport,
	}}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}
	return km.bindings[msg.String()], false
}

// isSessionAction reports whether an action is handled by the platform
// rather than forwarded to the game as held input.
func isSessionAction(a core.Action) bool {
	switch a {
	case core.ActionBack, core.ActionRestart, core.ActionQuit:
		return true
	}
	return false
}

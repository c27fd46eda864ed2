package tui

import (
	"testing"

	"github.com/vovakirdan/advent-arcade/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"up", core.ActionUp, false},
		{"w", core.ActionUp, false},
		{"s", core.ActionDown, false},
		{"left", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{" ", core.ActionCharge, false},
		{"enter", core.ActionConfirm, false},
		{"esc", core.ActionBack, false},
		{"b", core.ActionBack, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"1", core.ActionSelect1, false},
		{"3", core.ActionSelect3, false},
		{"e", core.ActionExport, false},
		{"x", core.ActionNone, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tt.key))
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.key, action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestIsSessionAction(t *testing.T) {
	for _, a := range []core.Action{core.ActionBack, core.ActionRestart, core.ActionQuit} {
		if !isSessionAction(a) {
			t.Errorf("isSessionAction(%v) = false", a)
		}
	}
	for _, a := range []core.Action{core.ActionUp, core.ActionCharge, core.ActionExport, core.ActionPause} {
		if isSessionAction(a) {
			t.Errorf("isSessionAction(%v) = true", a)
		}
	}
}

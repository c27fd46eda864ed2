// Package tui provides the Bubble Tea integration for the advent arcade.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Each tick loop has its own
// ID so a model only reschedules its own ticks; a loop whose owner is gone
// stops on its next tick.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var lastLoop atomic.Uint64

// newLoopID returns a fresh tick loop identifier.
func newLoopID() uint64 {
	return lastLoop.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick for loop after
// one tick interval.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}

package tui

import (
	"errors"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/advent-arcade/internal/config"
	"github.com/vovakirdan/advent-arcade/internal/core"
	"github.com/vovakirdan/advent-arcade/internal/registry"
)

const fakeID = "fake_day"

func init() {
	registry.Register(fakeID, func() registry.Game { return &fakeGame{} })
}

// fakeGame records what the platform feeds it.
type fakeGame struct {
	resets  int
	closes  int
	frames  []core.InputFrame
	width   int
	height  int
	score   int
	over    bool
	status  string
	ready   bool
	content string
	failErr error
}

func (g *fakeGame) ID() string        { return fakeID }
func (g *fakeGame) Title() string     { return "Fake Day" }
func (g *fakeGame) ScoreUnit() string { return "ornaments" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.width, g.height = cfg.ScreenW, cfg.ScreenH
	g.score = 0
	g.over = false
}

func (g *fakeGame) Resize(width, height int) {
	g.width, g.height = width, height
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in)
	res := core.StepResult{State: g.State(), Status: g.status}
	g.status = ""
	return res
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "FAKE")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over}
}

func (g *fakeGame) Close() { g.closes++ }

func (g *fakeGame) HoldWindow() time.Duration   { return 100 * time.Millisecond }
func (g *fakeGame) RepeatWindow() time.Duration { return 100 * time.Millisecond }

func (g *fakeGame) CanExport() bool    { return g.ready }
func (g *fakeGame) ExportName() string { return "fake.txt" }

func (g *fakeGame) Export(w io.Writer) error {
	if g.failErr != nil {
		return g.failErr
	}
	_, err := io.WriteString(w, g.content)
	return err
}

var errFakeExport = errors.New("disk full")

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 10, Seed: 7}
}

// fakeCalendar puts the fake game behind door 1.
func fakeCalendar() config.CalendarConfig {
	cfg := config.DefaultCalendarConfig()
	cfg.Sections[0].Target = fakeID
	return cfg
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/advent-arcade/internal/core"
	"github.com/vovakirdan/advent-arcade/internal/registry"
	"github.com/vovakirdan/advent-arcade/internal/storage"
)

// statusDuration is how long a status message stays on screen.
const statusDuration = 3 * time.Second

// Key hold windows for games that do not ask for their own.
const (
	defaultHoldWindow   = 700 * time.Millisecond
	defaultRepeatWindow = 150 * time.Millisecond
)

// exportDirProvider is implemented by games that choose where their
// exports go.
type exportDirProvider interface {
	ExportDir() string
}

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	opts      Options
	config    core.RuntimeConfig
	keys      *KeyMapper
	held      *core.HeldKeys
	loop      uint64
	gameState core.GameState

	status statusLine

	standalone bool // Back quits the program instead of returning
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model for game and resets the game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	game.Reset(cfg)

	hold, repeat := defaultHoldWindow, defaultRepeatWindow
	if t, ok := game.(registry.HoldTuner); ok {
		hold, repeat = t.HoldWindow(), t.RepeatWindow()
	}

	m := GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:      opts.withDefaults(),
		config:    cfg,
		keys:      NewKeyMapper(),
		held:      newHeldKeys(cfg, hold, repeat),
		loop:      newLoopID(),
		gameState: game.State(),
	}
	m.opts.Logger.Info("game started", "game", game.ID(), "width", cfg.ScreenW, "height", cfg.ScreenH)
	return m
}

// newHeldKeys converts the hold windows to ticks at cfg's rate.
func newHeldKeys(cfg core.RuntimeConfig, hold, repeat time.Duration) *core.HeldKeys {
	h := core.NewHeldKeys(cfg.TicksFor(hold))
	h.SetRepeatWindow(cfg.TicksFor(repeat))
	return h
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.held.Click(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop || m.quitting || m.backToMenu {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.leave()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		m.leave()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil

	case action == core.ActionRestart:
		m.restart()
		return m, nil

	case action == core.ActionExport:
		m.held.Press(action)
		m.export()
		return m, nil

	case action != core.ActionNone && !isSessionAction(action):
		m.held.Press(action)
	}

	return m, nil
}

// handleResize resizes the screen and the game without restarting it.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	m.opts.Logger.Debug("resize", "game", m.game.ID(), "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.held.Frame())
	m.gameState = result.State

	if result.Status != "" {
		m.setStatus(result.Status, toneInfo)
	}
	m.status.tick()

	if m.gameState.GameOver {
		m.saveScore()
	}

	return m, tickCmd(m.config.TickRate, m.loop)
}

func (m *GameModel) setStatus(text string, tone statusTone) {
	m.status.set(text, tone, m.config.TicksFor(statusDuration))
}

// restart begins a new round with a fresh seed. The finished round's
// score counts as a played game.
func (m *GameModel) restart() {
	m.saveScore()
	m.config.Seed = time.Now().UnixNano()
	m.game.Close()
	m.game.Reset(m.config)
	m.held.Reset()
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.status.clear()
	m.opts.Logger.Info("game restarted", "game", m.game.ID())
}

// leave records the score and releases the game's timers.
func (m *GameModel) leave() {
	m.saveScore()
	m.game.Close()
	m.opts.Logger.Info("game closed", "game", m.game.ID(), "score", m.gameState.Score)
}

// saveScore stores the current score once per round. Failures are logged
// and never interrupt the game.
func (m *GameModel) saveScore() {
	state := m.game.State()
	if m.scoreSaved || state.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), state.Score); err != nil {
		m.opts.Logger.Warn("could not save score", "game", m.game.ID(), "error", err)
	}
}

// export writes the game's artifact if it has one ready.
func (m *GameModel) export() {
	exp, ok := m.game.(registry.Exporter)
	if !ok || !exp.CanExport() {
		return
	}
	dir := m.opts.ExportDir
	if p, ok := m.game.(exportDirProvider); ok && dir == "" {
		dir = p.ExportDir()
	}
	if dir == "" {
		dir = defaultExportDir
	}

	path, err := writeExport(exp, dir)
	if err != nil {
		m.opts.Logger.Error("export failed", "game", m.game.ID(), "error", err)
		m.setStatus("Export failed: "+err.Error(), toneFailed)
		return
	}

	m.opts.Logger.Info("exported", "game", m.game.ID(), "path", path)
	if m.opts.Store != nil {
		if _, err := m.opts.Store.SaveExport(m.game.ID(), path); err != nil {
			m.opts.Logger.Warn("could not record export", "path", path, "error", err)
		}
	}
	m.setStatus("Saved "+path, toneDone)
}

// writeExport creates dir and writes the exporter's artifact into it.
func writeExport(exp registry.Exporter, dir string) (path string, err error) {
	dir, err = storage.ExpandPath(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create export directory: %w", err)
	}

	path = filepath.Join(dir, exp.ExportName())
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("tui: create export file: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if err := exp.Export(f); err != nil {
		return "", err
	}
	return path, nil
}

// saveScreenshot saves the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := storage.ExpandPath(m.opts.ScreenshotDir)
	if err == nil {
		err = os.MkdirAll(dir, 0o755)
	}
	if err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.setStatus("Screenshot saved to "+path, toneDone)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.status.draw(m.screen, m.scoreLabel())
	return RenderScreen(m.screen)
}

// scoreLabel names the game and its score in the game's unit.
func (m GameModel) scoreLabel() string {
	return fmt.Sprintf("%s  %d %s", m.game.Title(), m.gameState.Score, registry.Unit(m.game.ID()))
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the calendar.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for a single game. Back and quit both
// exit the program.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/advent-arcade/internal/core"
	"github.com/vovakirdan/advent-arcade/internal/registry"
)

type sessionScreen int

const (
	screenCalendar sessionScreen = iota
	screenGame
	screenScoreboard
)

// SessionModel manages one player's flow: calendar -> game -> calendar,
// with the scoreboard one key away. Used locally and for SSH sessions.
type SessionModel struct {
	opts       Options
	config     core.RuntimeConfig
	id         string
	screen     sessionScreen
	calendar   CalendarModel
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session identified by id.
func NewSessionModel(cfg core.RuntimeConfig, opts Options, id string) SessionModel {
	opts = opts.withDefaults()
	if id != "" {
		opts.Logger = opts.Logger.With("session", id)
	}

	cal := NewCalendarModel(opts.Calendar, cfg)
	cal.embedded = true

	return SessionModel{
		opts:     opts,
		config:   cal.Config(),
		id:       id,
		calendar: cal,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	m.opts.Logger.Info("session started")
	return m.calendar.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	}
	return m.updateCalendar(msg)
}

// updateCalendar handles updates on the landing page.
func (m SessionModel) updateCalendar(msg tea.Msg) (tea.Model, tea.Cmd) {
	newCal, cmd := m.calendar.Update(msg)
	if cal, ok := newCal.(CalendarModel); ok {
		m.calendar = cal
	}

	switch {
	case m.calendar.IsQuitting():
		return m.quit()

	case m.calendar.WantsScoreboard():
		sb := NewScoreboardModel(m.opts.Store, m.opts.Calendar, m.config.ScreenW, m.config.ScreenH)
		sb.embedded = true
		m.scoreboard = &sb
		m.screen = screenScoreboard
		return m, sb.Init()

	case m.calendar.Selected() != "":
		target := m.calendar.Selected()
		game, err := registry.Create(target)
		if err != nil {
			m.opts.Logger.Error("could not open door", "target", target, "error", err)
			return m, m.calendar.Start()
		}
		gm := NewGameModel(game, m.config, m.opts)
		m.gameModel = &gm
		m.screen = screenGame
		return m, gm.Init()
	}

	return m, cmd
}

// updateGame handles updates while a game runs.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gm, ok := newModel.(GameModel); ok {
		m.gameModel = &gm
	}

	switch {
	case m.gameModel.IsQuitting():
		m.gameModel = nil
		return m.quit()

	case m.gameModel.BackToMenu():
		m.gameModel = nil
		return m.backToCalendar()
	}

	return m, cmd
}

// updateScoreboard handles updates on the scoreboard.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.scoreboard = nil
		return m.quit()

	case m.scoreboard.IsGoingBack():
		m.scoreboard = nil
		return m.backToCalendar()
	}

	return m, cmd
}

// backToCalendar shows the landing page again, sized to the current
// terminal.
func (m SessionModel) backToCalendar() (tea.Model, tea.Cmd) {
	m.screen = screenCalendar
	m.calendar.resize(m.config.ScreenW, m.config.ScreenH)
	return m, m.calendar.Start()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.opts.Logger.Info("session ended")
	return m, tea.Quit
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScoreboard:
		return m.scoreboard.View()
	}
	return m.calendar.View()
}

// IsQuitting returns true once the player has left.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// RunSession runs a full calendar session in the local terminal.
func RunSession(cfg core.RuntimeConfig, opts Options, id string) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, opts, id),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

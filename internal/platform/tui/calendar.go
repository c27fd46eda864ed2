package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/advent-arcade/internal/calendar"
	"github.com/vovakirdan/advent-arcade/internal/config"
	"github.com/vovakirdan/advent-arcade/internal/core"
	"github.com/vovakirdan/advent-arcade/internal/registry"
)

// Sky density used when the calendar config leaves it unset.
const (
	skyStars     = 50
	skyMaxFlakes = 200
)

// CalendarKeyMap defines the key bindings for the calendar.
type CalendarKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Open   key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k CalendarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Open, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k CalendarKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Open, k.Scores, k.Quit},
	}
}

// DefaultCalendarKeyMap returns default key bindings.
func DefaultCalendarKeyMap() CalendarKeyMap {
	return CalendarKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open door"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// CalendarModel is the landing page: a tree of numbered doors under a
// snowy sky.
type CalendarModel struct {
	cal    *calendar.Calendar
	sky    *calendar.Sky
	screen *core.Screen
	layout calendar.Layout
	keys   CalendarKeyMap
	help   help.Model
	config core.RuntimeConfig
	loop   uint64

	status statusLine

	selected       string // Target of the opened door
	openScoreboard bool
	quitting       bool
	embedded       bool // Leaving hands control back instead of quitting
}

// NewCalendarModel creates a calendar model sized to cfg.
func NewCalendarModel(calCfg config.CalendarConfig, cfg core.RuntimeConfig) CalendarModel {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	stars, flakes := calCfg.Stars, calCfg.Snowflakes
	if stars <= 0 {
		stars = skyStars
	}
	if flakes <= 0 {
		flakes = skyMaxFlakes
	}
	h := help.New()
	h.Width = cfg.ScreenW

	m := CalendarModel{
		cal:    calendar.New(calCfg),
		sky:    calendar.NewSky(stars, flakes, cfg.Seed),
		screen: core.NewScreen(cfg.ScreenW, canvasHeight(cfg.ScreenH)),
		keys:   DefaultCalendarKeyMap(),
		help:   h,
		config: cfg,
		loop:   newLoopID(),
	}
	m.resize(cfg.ScreenW, cfg.ScreenH)
	return m
}

// canvasHeight leaves the bottom row to the help bar.
func canvasHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

func (m *CalendarModel) resize(w, h int) {
	m.config.ScreenW, m.config.ScreenH = w, h
	m.screen.Resize(w, canvasHeight(h))
	m.sky.Resize(w, canvasHeight(h))
	m.layout = m.cal.NewLayout(w, canvasHeight(h))
	m.help.Width = w
}

// Init starts the sky animation.
func (m CalendarModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.loop)
}

// Start begins a new tick loop, used when returning from a game.
func (m *CalendarModel) Start() tea.Cmd {
	m.loop = newLoopID()
	m.selected = ""
	m.openScoreboard = false
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages for the calendar.
func (m CalendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		id, ok := m.layout.SectionAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.cal.SetCursor(id)
		return m.open()

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop || m.selected != "" || m.openScoreboard || m.quitting {
			return m, nil
		}
		m.sky.Step()
		m.status.tick()
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	return m, nil
}

// handleKey processes keyboard input for door navigation.
func (m CalendarModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cal.Move(core.ActionUp)
	case key.Matches(msg, m.keys.Down):
		m.cal.Move(core.ActionDown)
	case key.Matches(msg, m.keys.Left):
		m.cal.Move(core.ActionLeft)
	case key.Matches(msg, m.keys.Right):
		m.cal.Move(core.ActionRight)

	case key.Matches(msg, m.keys.Open):
		return m.open()

	case key.Matches(msg, m.keys.Scores):
		m.openScoreboard = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	return m, nil
}

// open activates the door under the cursor. Closed doors and days
// without a game only show a note.
func (m CalendarModel) open() (tea.Model, tea.Cmd) {
	id := m.cal.Cursor()
	target, ok := m.cal.Activate()
	switch {
	case !ok:
		m.setStatus(fmt.Sprintf("Door %d is still closed", id))
		return m, nil
	case !registry.Exists(target):
		m.setStatus(fmt.Sprintf("Day %d is not ready yet", id))
		return m, nil
	}

	m.selected = target
	if m.embedded {
		return m, nil
	}
	return m, tea.Quit
}

func (m *CalendarModel) setStatus(text string) {
	m.status.set(text, toneInfo, m.config.TicksFor(statusDuration))
}

// View renders the calendar.
func (m CalendarModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.cal.Render(m.screen, m.sky)
	m.status.draw(m.screen, "")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Selected returns the game ID behind the opened door, or "".
func (m CalendarModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m CalendarModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m CalendarModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m CalendarModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

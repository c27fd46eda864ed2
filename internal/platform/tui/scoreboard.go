package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/advent-arcade/internal/config"
	"github.com/vovakirdan/advent-arcade/internal/registry"
	"github.com/vovakirdan/advent-arcade/internal/storage"
)

const (
	maxScores  = 100
	maxExports = 50
	dateLayout = "Jan 02 15:04"
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	doorTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	doorActiveStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("124")).
			Padding(0, 1)
	boardBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("28")).
			Padding(0, 1)
	boardNoteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
	boardErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Padding(1, 4)
	boardHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	PrevDay key.Binding
	NextDay key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.Up, k.Down, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left", "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/tab", "next day"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "calendar"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scoreDay is a calendar door with a registered game behind it.
type scoreDay struct {
	door  int
	id    string
	title string
	unit  string
}

// scoreDays lists the doors of cal that lead to a game, closed doors
// included: their games can still be played from the command line.
func scoreDays(cal config.CalendarConfig) []scoreDay {
	var days []scoreDay
	for _, s := range cal.Sections {
		if !registry.Exists(s.Target) {
			continue
		}
		days = append(days, scoreDay{
			door:  s.ID,
			id:    s.Target,
			title: registry.Title(s.Target),
			unit:  registry.Unit(s.Target),
		})
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].door < days[j].door })
	return days
}

// ScoreboardModel shows the score history of one calendar day at a time.
type ScoreboardModel struct {
	days    []scoreDay
	cursor  int
	store   *storage.Store
	scores  []storage.ScoreEntry
	stats   *storage.GameStats
	exports []storage.ExportEntry
	loadErr error

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
	embedded  bool // Back returns to the caller instead of quitting
}

// NewScoreboardModel opens the scoreboard on the first door of cal.
func NewScoreboardModel(store *storage.Store, cal config.CalendarConfig, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		days:   scoreDays(cal),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.load()
	return m
}

func (m ScoreboardModel) current() (scoreDay, bool) {
	if len(m.days) == 0 {
		return scoreDay{}, false
	}
	return m.days[m.cursor], true
}

// load reads the selected day's scores, stats and exports, then rebuilds
// the table so its score column carries the day's unit.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.exports, m.loadErr = nil, nil, nil, nil

	day, ok := m.current()
	if ok && m.store != nil {
		var errs []error
		var err error
		if m.scores, err = m.store.TopScores(day.id, maxScores); err != nil {
			errs = append(errs, err)
		}
		if m.stats, err = m.store.GetGameStats(day.id); err != nil {
			errs = append(errs, err)
		}
		if m.exports, err = m.store.RecentExports(day.id, maxExports); err != nil {
			errs = append(errs, err)
		}
		m.loadErr = errors.Join(errs...)
	}

	m.table = m.newTable(day.unit)
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(s.Score),
			s.CreatedAt.Format(dateLayout),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) newTable(unit string) table.Model {
	if unit == "" {
		unit = registry.DefaultScoreUnit
	}
	dateWidth := min(20, max(len(dateLayout), m.width-30))
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: strings.ToUpper(unit[:1]) + unit[1:], Width: 12},
		{Title: "Date", Width: dateWidth},
	}

	// Title, tabs, stats, exports, help and the box border.
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-12)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("28")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextDay):
			m.step(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevDay):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.load()
		m.table.SetCursor(cursor)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// step moves the selection by delta days, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	if len(m.days) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.days)) % len(m.days)
	m.load()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	day, ok := m.current()
	if !ok {
		b.WriteString(boardTitleStyle.Render(centerText("SCOREBOARD", m.width)))
		b.WriteString("\n\n")
		b.WriteString(centerText(boardNoteStyle.Render("No calendar door leads to a game yet."), m.width))
	} else {
		b.WriteString(boardTitleStyle.Render(centerText(fmt.Sprintf("DAY %d - %s", day.door, day.title), m.width)))
		b.WriteString("\n\n")
		b.WriteString(centerText(m.doorTabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(boardBoxStyle.Render(m.tableContent(day)), m.width))
		for _, line := range []string{m.statsLine(), m.exportsLine()} {
			if line != "" {
				b.WriteString("\n")
				b.WriteString(centerText(line, m.width))
			}
		}
	}

	b.WriteString("\n\n")
	b.WriteString(boardHelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// doorTabs renders one tab per day, falling back to the selected day
// between arrows when the tabs do not fit.
func (m ScoreboardModel) doorTabs() string {
	tabs := make([]string, len(m.days))
	for i, d := range m.days {
		label := fmt.Sprintf("Day %d", d.door)
		if i == m.cursor {
			tabs[i] = doorActiveStyle.Render(label)
		} else {
			tabs[i] = doorTabStyle.Render(label)
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< Day %d >", m.days[m.cursor].door)
	}
	return line
}

func (m ScoreboardModel) tableContent(day scoreDay) string {
	switch {
	case m.loadErr != nil:
		return boardErrorStyle.Render("Could not load scores: " + m.loadErr.Error())
	case len(m.scores) == 0:
		return boardNoteStyle.Render(fmt.Sprintf("No %s counted yet.\nOpen door %d to play!", day.unit, day.door))
	}
	return m.table.View()
}

// statsLine summarizes the selected day's history.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	day, _ := m.current()
	return fmt.Sprintf("Played %d  |  Best %d %s  |  Average %.1f  |  Last %s",
		m.stats.GamesCount, m.stats.HighScore, day.unit, m.stats.AvgScore, m.stats.LastPlayed.Format(dateLayout))
}

// exportsLine counts the selected day's saved files and names the newest.
func (m ScoreboardModel) exportsLine() string {
	if len(m.exports) == 0 {
		return ""
	}
	count := strconv.Itoa(len(m.exports))
	if len(m.exports) == maxExports {
		count += "+"
	}
	latest := m.exports[0]
	return fmt.Sprintf("Exports %s  |  Latest %s (%s)",
		count, filepath.Base(latest.Path), latest.CreatedAt.Format(dateLayout))
}

// IsGoingBack returns true if user wants to go back to the calendar.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

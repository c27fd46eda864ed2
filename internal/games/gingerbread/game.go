// Package gingerbread implements day 3 of the calendar: a gingerbread house
// built by placing random pieces on a small grid, with a joke after every
// placement and a PNG export of the finished house.
package gingerbread

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/advent-arcade/internal/config"
	"github.com/vovakirdan/advent-arcade/internal/core"
	"github.com/vovakirdan/advent-arcade/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "day3"

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game implements the house builder.
type Game struct {
	cfg  config.GingerbreadConfig
	rng  *rand.Rand
	now  func() time.Time
	tick uint64

	grid      [][]*Shape
	palette   []Shape
	selected  int // Palette index, -1 when nothing is selected
	remaining int
	message   string
	jokes     *Jokes

	cursorRow, cursorCol int

	screenW, screenH int
	closed           bool
}

// New creates a new house builder.
func New() *Game {
	return &Game{now: time.Now, selected: -1}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Gingerbread House Builder" }

func (g *Game) ScoreUnit() string { return "pieces" }

// Reset initializes/restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadGingerbread(configPath)
	if err != nil {
		cfg = config.DefaultGingerbreadConfig()
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.grid = make([][]*Shape, cfg.Grid.Rows)
	for r := range g.grid {
		g.grid[r] = make([]*Shape, cfg.Grid.Cols)
	}
	g.selected = -1
	g.remaining = cfg.Grid.TotalShapes
	g.message = ""
	g.jokes = NewJokes(g.rng, cfg.Messages.Jokes, cfg.Messages.Completion)
	g.cursorRow, g.cursorCol = 0, 0
	g.closed = false
	g.regeneratePalette()
	g.screenW, g.screenH = rt.ScreenW, rt.ScreenH
}

// Resize updates the layout without restarting the game.
func (g *Game) Resize(width, height int) {
	g.screenW, g.screenH = width, height
}

func (g *Game) regeneratePalette() {
	g.palette = make([]Shape, g.cfg.Grid.PaletteSize)
	for i := range g.palette {
		g.palette[i] = RandomShape(g.rng)
	}
}

// Select marks palette entry i as the piece to place next.
func (g *Game) Select(i int) bool {
	if i < 0 || i >= len(g.palette) {
		return false
	}
	g.selected = i
	return true
}

// Place puts the selected piece on an empty cell. It does nothing unless a
// piece is selected, pieces remain and the cell is empty and on the grid.
func (g *Game) Place(row, col int) bool {
	if g.selected < 0 || g.remaining <= 0 {
		return false
	}
	if row < 0 || row >= len(g.grid) || col < 0 || col >= len(g.grid[row]) {
		return false
	}
	if g.grid[row][col] != nil {
		return false
	}

	piece := g.palette[g.selected]
	g.grid[row][col] = &piece
	g.selected = -1
	g.remaining--
	if g.remaining == 0 {
		g.message = g.jokes.Completion()
	} else {
		g.message = g.jokes.Next()
	}
	g.regeneratePalette()
	return true
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.closed {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	for i, a := range []core.Action{core.ActionSelect1, core.ActionSelect2, core.ActionSelect3} {
		if in.WasPressed(a) {
			g.Select(i)
		}
	}

	switch {
	case in.WasPressed(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.WasPressed(core.ActionDown):
		g.moveCursor(1, 0)
	case in.WasPressed(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.WasPressed(core.ActionRight):
		g.moveCursor(0, 1)
	}

	if in.WasPressed(core.ActionConfirm) || in.WasPressed(core.ActionCharge) {
		g.Place(g.cursorRow, g.cursorCol)
	}

	if in.Click != nil {
		g.click(in.Click.X, in.Click.Y)
	}

	status := ""
	if in.WasPressed(core.ActionExport) && !g.CanExport() {
		status = "Place every piece before saving the house"
	}
	return core.StepResult{State: g.State(), Status: status}
}

func (g *Game) moveCursor(dr, dc int) {
	g.cursorRow = core.Clamp(g.cursorRow+dr, 0, len(g.grid)-1)
	g.cursorCol = core.Clamp(g.cursorCol+dc, 0, g.cfg.Grid.Cols-1)
}

// click selects a palette slot or places on a grid cell under (x, y).
func (g *Game) click(x, y int) {
	l := g.layout()
	if i, ok := l.slotAt(x, y, len(g.palette)); ok {
		g.Select(i)
		return
	}
	if row, col, ok := l.cellAt(x, y, len(g.grid), g.cfg.Grid.Cols); ok {
		g.cursorRow, g.cursorCol = row, col
		g.Place(row, col)
	}
}

// State returns the current game state. The score is the number of
// pieces placed; the game is over once the house is complete.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.cfg.Grid.TotalShapes - g.remaining,
		GameOver: g.remaining == 0,
	}
}

// Close ends the session; further steps do nothing.
func (g *Game) Close() {
	g.closed = true
}

// Grid returns a copy of the board.
func (g *Game) Grid() [][]*Shape {
	out := make([][]*Shape, len(g.grid))
	for r, row := range g.grid {
		out[r] = make([]*Shape, len(row))
		for c, cell := range row {
			if cell != nil {
				s := *cell
				out[r][c] = &s
			}
		}
	}
	return out
}

// Palette returns a copy of the pieces on offer.
func (g *Game) Palette() []Shape {
	return append([]Shape(nil), g.palette...)
}

// Selected returns the selected palette index, or -1.
func (g *Game) Selected() int { return g.selected }

// Remaining returns how many pieces can still be placed.
func (g *Game) Remaining() int { return g.remaining }

// Message returns the current joke or completion message.
func (g *Game) Message() string { return g.message }

// Cursor returns the grid cell under the keyboard cursor.
func (g *Game) Cursor() (row, col int) { return g.cursorRow, g.cursorCol }

// Package gifts implements day 1 of the calendar: Santa walks the field
// and collects gifts that keep appearing at random spots.
package gifts

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/advent-arcade/internal/config"
	"github.com/vovakirdan/advent-arcade/internal/core"
	"github.com/vovakirdan/advent-arcade/internal/countdown"
	"github.com/vovakirdan/advent-arcade/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "day1"

// Field layout inside the screen: HUD on rows 0-1, bordered field below.
const (
	hudHeight = 2
	borderPad = 1
)

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

// Game implements the gift collection game.
type Game struct {
	cfg   config.GiftsConfig
	rt    core.RuntimeConfig
	rng   *rand.Rand
	now   func() time.Time
	tick  uint64
	score int

	santa  Santa
	gifts  []*Gift
	nextID int

	timers     *core.Timers
	spawnTimer core.TimerID
	spawnedAny bool
	remaining  countdown.Remaining

	screenW, screenH int
	fieldW, fieldH   float64

	paused bool
}

// New creates a new gift collection game.
func New() *Game {
	return &Game{now: time.Now}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Santa's Gift Run" }

// ScoreUnit names what the score counts.
func (g *Game) ScoreUnit() string { return "gifts" }

// HoldWindow returns how long an arrow key stays held after its first press.
func (g *Game) HoldWindow() time.Duration {
	if g.cfg.Input.HoldWindow > 0 {
		return g.cfg.Input.HoldWindow
	}
	return config.DefaultGiftsConfig().Input.HoldWindow
}

// RepeatWindow returns how long an arrow key stays held after each auto-repeat.
func (g *Game) RepeatWindow() time.Duration {
	if g.cfg.Input.RepeatWindow > 0 {
		return g.cfg.Input.RepeatWindow
	}
	return config.DefaultGiftsConfig().Input.RepeatWindow
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadGifts(configPath)
	if err != nil {
		cfg = config.DefaultGiftsConfig()
	}
	g.cfg = cfg
	g.rt = rt
	if g.timers != nil {
		g.timers.Stop()
	}
	g.timers = core.NewTimers()
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.score = 0
	g.paused = false
	g.gifts = nil
	g.nextID = 0
	g.spawnedAny = false
	g.santa = Santa{
		X:      cfg.Player.StartX,
		Y:      cfg.Player.StartY,
		Facing: FacingRight,
	}

	g.resize(rt.ScreenW, rt.ScreenH)

	g.spawnTimer = g.timers.Every(rt.TicksFor(cfg.Gifts.SpawnInterval), g.spawnGift)
	g.refreshCountdown()
	g.timers.Every(rt.TicksFor(time.Second), g.refreshCountdown)

	g.spawnInitial()
}

// Resize updates the play field without restarting the game.
func (g *Game) Resize(width, height int) {
	g.rt.ScreenW, g.rt.ScreenH = width, height
	g.resize(width, height)
	g.spawnInitial()
}

func (g *Game) resize(width, height int) {
	g.screenW, g.screenH = width, height
	g.fieldW = float64(max(0, width-2*borderPad))
	g.fieldH = float64(max(0, height-hudHeight-2*borderPad))
	// Keep Santa inside a shrunken field.
	if g.measured() {
		g.santa.clamp(g.fieldW-g.cfg.Player.Width, g.fieldH-g.cfg.Player.Height)
	}
}

// measured reports whether the field is large enough to play in.
func (g *Game) measured() bool {
	return g.fieldW >= g.cfg.Player.Width && g.fieldH >= g.cfg.Player.Height &&
		g.fieldW >= g.cfg.Gifts.Width && g.fieldH >= g.cfg.Gifts.Height
}

// spawnInitial places the first gift once the field has a size.
func (g *Game) spawnInitial() {
	if !g.spawnedAny {
		g.spawnGift()
	}
}

func (g *Game) refreshCountdown() {
	g.remaining = countdown.Until(g.now(), time.Month(g.cfg.Countdown.Month), g.cfg.Countdown.Day)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.WasPressed(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.timers.Stopped() {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if g.measured() {
		g.santa.move(in, g.cfg.Player, g.fieldW, g.fieldH)
		g.collect()
	}

	g.timers.Advance()
	g.updateTransitions()
	g.removeExpired()

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, Paused: g.paused}
}

// Close stops every timer owned by the game.
func (g *Game) Close() {
	if g.timers != nil {
		g.timers.Stop()
	}
}

// Remaining returns the last computed countdown.
func (g *Game) Remaining() countdown.Remaining {
	return g.remaining
}

// Package snowman implements day 2 of the calendar: a snowman that walks
// around, faces the last arrow pressed and throws snowballs charged by
// holding space.
package snowman

import (
	"math"
	"time"

	"github.com/vovakirdan/advent-arcade/internal/config"
	"github.com/vovakirdan/advent-arcade/internal/core"
	"github.com/vovakirdan/advent-arcade/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "day2"

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

// Facing angles in degrees, screen coordinates (y grows downwards).
const (
	FacingRight = 0
	FacingDown  = 90
	FacingLeft  = 180
	FacingUp    = 270
)

var facingByKey = map[core.Action]int{
	core.ActionRight: FacingRight,
	core.ActionDown:  FacingDown,
	core.ActionLeft:  FacingLeft,
	core.ActionUp:    FacingUp,
}

// Snowball is a thrown projectile in field cells.
type Snowball struct {
	X, Y   float64
	DX, DY float64
	Charge float64 // Milliseconds of charge, 0..max
}

// Game implements the snowman game.
type Game struct {
	cfg   config.SnowmanConfig
	rt    core.RuntimeConfig
	tick  uint64
	score int

	x, y   float64
	facing int

	charging    bool
	chargeStart uint64

	snowballs []Snowball

	screenW, screenH int
	fieldW, fieldH   float64

	paused bool
	closed bool
}

// New creates a new snowman game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Snowman Throw" }

func (g *Game) ScoreUnit() string { return "snowballs" }

// HoldWindow returns how long a key stays held after its first press.
func (g *Game) HoldWindow() time.Duration {
	if g.cfg.Input.HoldWindow > 0 {
		return g.cfg.Input.HoldWindow
	}
	return config.DefaultSnowmanConfig().Input.HoldWindow
}

// RepeatWindow returns how long a key stays held after each auto-repeat.
func (g *Game) RepeatWindow() time.Duration {
	if g.cfg.Input.RepeatWindow > 0 {
		return g.cfg.Input.RepeatWindow
	}
	return config.DefaultSnowmanConfig().Input.RepeatWindow
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadSnowman(configPath)
	if err != nil {
		cfg = config.DefaultSnowmanConfig()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	g.cfg = cfg
	g.rt = rt
	g.tick = 0
	g.score = 0
	g.x, g.y = cfg.Player.StartX, cfg.Player.StartY
	g.facing = FacingRight
	g.charging = false
	g.chargeStart = 0
	g.snowballs = nil
	g.paused = false
	g.closed = false
	g.resize(rt.ScreenW, rt.ScreenH)
}

// Resize updates the play field without restarting the game.
func (g *Game) Resize(width, height int) {
	g.rt.ScreenW, g.rt.ScreenH = width, height
	g.resize(width, height)
}

func (g *Game) resize(width, height int) {
	g.screenW, g.screenH = width, height
	g.fieldW = float64(max(0, width-2*borderPad))
	g.fieldH = float64(max(0, height-hudHeight-2*borderPad))
	if g.measured() {
		g.clamp()
	}
}

func (g *Game) measured() bool {
	return g.fieldW >= g.cfg.Player.Width && g.fieldH >= g.cfg.Player.Height
}

func (g *Game) clamp() {
	g.x = core.ClampF(g.x, 0, g.fieldW-g.cfg.Player.Width)
	g.y = core.ClampF(g.y, 0, g.fieldH-g.cfg.Player.Height)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.WasPressed(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.closed {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	if !g.measured() {
		return core.StepResult{State: g.State()}
	}

	g.turn(in)
	g.move(in)
	g.charge(in)
	g.updateSnowballs()

	return core.StepResult{State: g.State()}
}

// turn faces the most recently pressed arrow. Several arrows pressed in
// the same tick resolve in Right, Down, Left, Up order, last one wins.
func (g *Game) turn(in core.InputFrame) {
	for _, a := range []core.Action{core.ActionRight, core.ActionDown, core.ActionLeft, core.ActionUp} {
		if in.WasPressed(a) {
			g.facing = facingByKey[a]
		}
	}
}

func (g *Game) move(in core.InputFrame) {
	p := g.cfg.Player
	if in.Has(core.ActionLeft) {
		g.x -= p.StepX
	}
	if in.Has(core.ActionRight) {
		g.x += p.StepX
	}
	if in.Has(core.ActionUp) {
		g.y -= p.StepY
	}
	if in.Has(core.ActionDown) {
		g.y += p.StepY
	}
	g.clamp()
}

// charge runs the idle -> charging -> idle state machine.
func (g *Game) charge(in core.InputFrame) {
	switch {
	case !g.charging && in.WasPressed(core.ActionCharge):
		g.charging = true
		g.chargeStart = g.tick
	case g.charging && in.WasReleased(core.ActionCharge):
		ms := g.chargeMillis()
		g.charging = false
		g.throw(ms)
	}
}

// chargeMillis returns the charge held so far, clamped to the maximum.
func (g *Game) chargeMillis() float64 {
	elapsed := float64(g.tick-g.chargeStart) * 1000 / float64(g.rt.TickRate)
	return math.Min(elapsed, g.maxChargeMillis())
}

func (g *Game) maxChargeMillis() float64 {
	return float64(g.cfg.Throw.MaxCharge / time.Millisecond)
}

// throw spawns a snowball at the head moving along the facing angle.
func (g *Game) throw(chargeMs float64) {
	t := g.cfg.Throw
	angle := float64(g.facing) * math.Pi / 180
	power := chargeMs / g.maxChargeMillis() * t.SnowballSpeed
	hx, hy := g.head()
	g.snowballs = append(g.snowballs, Snowball{
		X:      hx,
		Y:      hy,
		DX:     math.Cos(angle) * power,
		DY:     math.Sin(angle) * power * t.VerticalScale,
		Charge: chargeMs,
	})
	g.score++
}

// head returns the centre of the snowman's head in field cells.
func (g *Game) head() (float64, float64) {
	return g.x + g.cfg.Player.Width/2, g.y + 1.5
}

// updateSnowballs moves every snowball and drops those that left the field
// through the sides or the bottom. The top stays open.
func (g *Game) updateSnowballs() {
	kept := g.snowballs[:0]
	for _, s := range g.snowballs {
		s.X += s.DX
		s.Y += s.DY
		s.DY += g.cfg.Throw.Gravity
		if s.X <= 0 || s.X >= g.fieldW || s.Y >= g.fieldH {
			continue
		}
		kept = append(kept, s)
	}
	g.snowballs = kept
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, Paused: g.paused}
}

// Close ends the session; further steps do nothing.
func (g *Game) Close() {
	g.closed = true
}

// Snowballs returns a copy of the snowballs in flight.
func (g *Game) Snowballs() []Snowball {
	return append([]Snowball(nil), g.snowballs...)
}

// Charging reports whether space is being held and the current charge
// as a fraction of the maximum.
func (g *Game) Charging() (bool, float64) {
	if !g.charging {
		return false, 0
	}
	return true, g.chargeMillis() / g.maxChargeMillis()
}

// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/advent-arcade/internal/core"
)

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the core interface that all advent games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "day1").
	// Calendar sections navigate to games by this ID.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Resize tells the game the screen changed size without restarting it.
	Resize(width, height int)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState

	// Close releases timers owned by the game. Safe to call more than once.
	Close()
}

// Exporter is implemented by games that can produce a file artifact.
type Exporter interface {
	// CanExport reports whether the export action is currently available.
	CanExport() bool
	// ExportName returns a suggested file name for the artifact.
	ExportName() string
	// Export writes the artifact.
	Export(w io.Writer) error
}

// HoldTuner is implemented by games that want specific key hold windows.
// Terminals report only presses, so the platform keeps a key held for
// HoldWindow after its first press and for RepeatWindow after each
// auto-repeat.
type HoldTuner interface {
	HoldWindow() time.Duration
	RepeatWindow() time.Duration
}

// Scorer is implemented by games that count something other than points.
type Scorer interface {
	// ScoreUnit names what one point of score is, in the plural ("gifts").
	ScoreUnit() string
}

// DefaultScoreUnit labels scores of games that do not implement Scorer.
const DefaultScoreUnit = "points"

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	units     = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	factories[id] = f
	titles[id] = g.Title()
	units[id] = DefaultScoreUnit
	if sc, ok := g.(Scorer); ok {
		units[id] = sc.ScoreUnit()
	}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the registered title for id, or "" if unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()
	return titles[id]
}

// Unit returns the score unit of id, DefaultScoreUnit for games without
// one and "" if id is unknown.
func Unit(id string) string {
	mu.RLock()
	defer mu.RUnlock()
	return units[id]
}

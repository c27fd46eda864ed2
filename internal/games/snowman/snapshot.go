package snowman

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Score     int
	X, Y      float64
	Facing    int
	Charging  bool
	Snowballs int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		X:         g.x,
		Y:         g.y,
		Facing:    g.facing,
		Charging:  g.charging,
		Snowballs: len(g.snowballs),
	}
}

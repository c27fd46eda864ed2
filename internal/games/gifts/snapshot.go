package gifts

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Score      int
	SantaX     float64
	SantaY     float64
	Facing     Facing
	Frame      int
	GiftCount  int
	NextGiftID int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		Score:      g.score,
		SantaX:     g.santa.X,
		SantaY:     g.santa.Y,
		Facing:     g.santa.Facing,
		Frame:      g.santa.Frame,
		GiftCount:  len(g.gifts),
		NextGiftID: g.nextID,
	}
}

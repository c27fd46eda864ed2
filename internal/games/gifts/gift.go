package gifts

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/advent-arcade/internal/core"
)

// Gift is a collectible box on the field.
type Gift struct {
	ID        int
	X, Y      float64
	Collected bool

	// Glow runs from 1 to 0 while a collected gift plays its exit transition.
	Glow    float32
	exit    *gween.Tween
	expired bool
}

func (gf *Gift) bounds(w, h float64) core.RectF {
	return core.RectF{X: gf.X, Y: gf.Y, W: w, H: h}
}

// spawnGift adds one gift at a random position inside the field.
func (g *Game) spawnGift() {
	if !g.measured() || g.timers.Stopped() {
		return
	}
	gw, gh := g.cfg.Gifts.Width, g.cfg.Gifts.Height
	g.nextID++
	g.gifts = append(g.gifts, &Gift{
		ID:   g.nextID,
		X:    g.rng.Float64() * (g.fieldW - gw),
		Y:    g.rng.Float64() * (g.fieldH - gh),
		Glow: 1,
	})
	g.spawnedAny = true
}

// collect flags every uncollected gift overlapping Santa and schedules
// its removal after the exit transition.
func (g *Game) collect() {
	hit := g.santa.bounds(g.cfg.Player)
	for _, gift := range g.gifts {
		if gift.Collected {
			continue
		}
		if !hit.Intersects(gift.bounds(g.cfg.Gifts.Width, g.cfg.Gifts.Height)) {
			continue
		}
		gift.Collected = true
		g.score++

		delay := g.cfg.Gifts.RemoveDelay
		gift.exit = gween.New(1, 0, float32(delay.Seconds()), ease.OutQuad)
		// This tick's Advance is still to come and counts as the first,
		// so the gift stays drawn for the whole delay after this tick.
		g.timers.After(g.rt.TicksFor(delay)+1, func() {
			gift.expired = true
		})
		if delay <= 0 {
			gift.expired = true
		}
	}
}

// updateTransitions advances the exit tween of collected gifts.
func (g *Game) updateTransitions() {
	dt := float32(g.rt.TickDuration().Seconds())
	for _, gift := range g.gifts {
		if gift.exit == nil {
			continue
		}
		glow, _ := gift.exit.Update(dt)
		gift.Glow = glow
	}
}

// removeExpired filters out gifts whose removal delay elapsed.
func (g *Game) removeExpired() {
	kept := g.gifts[:0]
	for _, gift := range g.gifts {
		if !gift.expired {
			kept = append(kept, gift)
		}
	}
	for i := len(kept); i < len(g.gifts); i++ {
		g.gifts[i] = nil
	}
	g.gifts = kept
}

// Gifts returns the gifts currently on the field.
func (g *Game) Gifts() []Gift {
	out := make([]Gift, len(g.gifts))
	for i, gift := range g.gifts {
		out[i] = *gift
	}
	return out
}

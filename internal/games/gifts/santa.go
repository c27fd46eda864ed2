package gifts

import (
	"github.com/vovakirdan/advent-arcade/internal/config"
	"github.com/vovakirdan/advent-arcade/internal/core"
)

// Facing is the horizontal direction Santa looks in.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Santa is the player sprite. Position is in field cells.
type Santa struct {
	X, Y   float64
	Facing Facing
	Frame  int
}

var moveKeys = []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

// move applies one tick of held-arrow movement. Each axis is clamped to
// [0, field-sprite] on its own, so pushing into a wall still slides along it.
func (s *Santa) move(in core.InputFrame, p config.GiftsPlayer, fieldW, fieldH float64) {
	if in.Has(core.ActionLeft) {
		s.X -= p.SpeedX
		s.Facing = FacingLeft
	}
	if in.Has(core.ActionRight) {
		s.X += p.SpeedX
		s.Facing = FacingRight
	}
	if in.Has(core.ActionUp) {
		s.Y -= p.SpeedY
	}
	if in.Has(core.ActionDown) {
		s.Y += p.SpeedY
	}
	s.clamp(fieldW-p.Width, fieldH-p.Height)

	walking := false
	for _, a := range moveKeys {
		if in.Has(a) {
			walking = true
			break
		}
	}
	if walking {
		s.Frame = (s.Frame + 1) % max(1, p.Frames)
	} else {
		s.Frame = 0
	}
}

func (s *Santa) clamp(maxX, maxY float64) {
	s.X = core.ClampF(s.X, 0, maxX)
	s.Y = core.ClampF(s.Y, 0, maxY)
}

// bounds returns Santa's hitbox.
func (s *Santa) bounds(p config.GiftsPlayer) core.RectF {
	return core.RectF{X: s.X, Y: s.Y, W: p.Width, H: p.Height}
}

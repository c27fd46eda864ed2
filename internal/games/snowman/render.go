package snowman

import (
	"fmt"

	"github.com/vovakirdan/advent-arcade/internal/core"
)

// Snowman art, 9x7 cells. The nose is drawn separately.
var snowmanArt = []string{
	"   _=_   ",
	"  ( . )  ",
	" (  :  ) ",
	"(   :   )",
	"(   :   )",
	"(       )",
	" `-----' ",
}

// noseOffsets maps a facing angle to the nose glyph and its cell in the art.
var noseOffsets = map[int]struct {
	dx, dy int
	glyph  rune
}{
	FacingRight: {7, 1, '>'},
	FacingDown:  {4, 2, 'v'},
	FacingLeft:  {1, 1, '<'},
	FacingUp:    {4, 0, '^'},
}

const chargeBarWidth = 10

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	left := fmt.Sprintf("Snowman Throw  Snowballs: %d", g.score)
	dst.DrawHUD(0, left, fmt.Sprintf("Facing %d°", g.facing))

	field := core.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight)
	dst.DrawBoxWithColor(field, core.ColorBlue)

	if !g.measured() {
		dst.DrawOverlay("Window too small", "Resize to continue")
		return
	}

	ox, oy := borderPad, hudHeight+borderPad
	g.renderSnowman(dst, ox, oy)
	for _, s := range g.snowballs {
		dst.SetWithColor(ox+int(s.X), oy+int(s.Y), g.snowballGlyph(s), core.ColorBrightWhite)
	}

	dst.DrawTextWithColor(2, g.screenH-1, " Arrows: move/aim  Space: hold to charge  P: pause  B: back ", core.ColorGray)

	if g.paused {
		dst.DrawOverlay("Paused", "Press P to continue")
	}
}

func (g *Game) renderSnowman(dst *core.Screen, ox, oy int) {
	x, y := ox+int(g.x), oy+int(g.y)
	for i, line := range snowmanArt {
		dst.DrawTextWithColor(x, y+i, line, core.ColorBrightWhite)
	}
	dst.DrawTextWithColor(x+3, y, snowmanArt[0][3:6], core.ColorDimGray)
	if nose, ok := noseOffsets[g.facing]; ok {
		dst.SetWithColor(x+nose.dx, y+nose.dy, nose.glyph, core.ColorOrange)
	}

	charging, frac := g.Charging()
	if !charging {
		return
	}
	barY := y - 1
	if barY < oy {
		barY = y + len(snowmanArt)
	}
	barX := x + (int(g.cfg.Player.Width)-chargeBarWidth-2)/2
	filled := int(frac * chargeBarWidth)
	dst.SetWithColor(barX, barY, '[', core.ColorWhite)
	for i := 0; i < chargeBarWidth; i++ {
		if i < filled {
			dst.SetWithColor(barX+1+i, barY, '█', core.ColorBrightRed)
		} else {
			dst.SetWithColor(barX+1+i, barY, '·', core.ColorGray)
		}
	}
	dst.SetWithColor(barX+1+chargeBarWidth, barY, ']', core.ColorWhite)
}

// snowballGlyph grows with the charge the snowball was thrown with.
func (g *Game) snowballGlyph(s Snowball) rune {
	frac := s.Charge / g.maxChargeMillis()
	switch {
	case frac < 1.0/3:
		return '.'
	case frac < 2.0/3:
		return 'o'
	default:
		return 'O'
	}
}

package gifts

import (
	"fmt"

	"github.com/vovakirdan/advent-arcade/internal/core"
)

// Santa art, 8x4 cells. Legs cycle through the walk frames.
var (
	santaRight = [3]string{
		"  /^^\\* ",
		" ( oo ) ",
		"@[####] ",
	}
	santaLeft = [3]string{
		" */^^\\  ",
		" ( oo ) ",
		" [####]@",
	}
	santaLegs = []string{
		"  |  |  ",
		"  /  |  ",
		" /   \\  ",
		"  |  \\  ",
		"  |  |  ",
	}
	santaColors = [3]core.Color{core.ColorBrightRed, core.ColorBrightWhite, core.ColorRed}
)

var giftArt = [2]string{"_+_", "[#]"}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	left := fmt.Sprintf("Santa's Gift Run  Gifts: %d", g.score)
	right := fmt.Sprintf("Christmas in %s", g.remaining)
	dst.DrawHUD(0, left, right)

	field := core.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight)
	dst.DrawBoxWithColor(field, core.ColorGreen)

	if !g.measured() {
		dst.DrawOverlay("Window too small", "Resize to continue")
		return
	}

	ox, oy := borderPad, hudHeight+borderPad
	for _, gift := range g.gifts {
		g.renderGift(dst, gift, ox, oy)
	}
	g.renderSanta(dst, ox, oy)

	dst.DrawTextWithColor(2, g.screenH-1, " Arrows: move  P: pause  R: restart  B: back ", core.ColorGray)

	if g.paused {
		dst.DrawOverlay("Paused", "Press P to continue")
	}
}

func (g *Game) renderGift(dst *core.Screen, gift *Gift, ox, oy int) {
	x, y := ox+int(gift.X), oy+int(gift.Y)
	if gift.Collected {
		color := core.ColorBrightYellow
		glyph := '*'
		if gift.Glow < 0.4 {
			color, glyph = core.ColorDimGray, '.'
		}
		for dy := range giftArt {
			for dx := range []rune(giftArt[dy]) {
				if (dx+dy)%2 == 0 {
					dst.SetWithColor(x+dx, y+dy, glyph, color)
				}
			}
		}
		return
	}

	color := core.ColorBrightMagenta
	if gift.ID%2 == 0 {
		color = core.ColorBrightCyan
	}
	dst.DrawTextWithColor(x, y, giftArt[0], core.ColorBrightYellow)
	dst.DrawTextWithColor(x, y+1, giftArt[1], color)
}

func (g *Game) renderSanta(dst *core.Screen, ox, oy int) {
	x, y := ox+int(g.santa.X), oy+int(g.santa.Y)
	art := santaRight
	if g.santa.Facing == FacingLeft {
		art = santaLeft
	}
	for i, line := range art {
		dst.DrawTextWithColor(x, y+i, line, santaColors[i])
	}
	dst.DrawText(x, y+len(art), santaLegs[g.santa.Frame%len(santaLegs)])
}

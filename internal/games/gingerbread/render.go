package gingerbread

import (
	"fmt"

	"github.com/vovakirdan/advent-arcade/internal/core"
)

// Terminal layout: a boxed cell per grid slot, the palette to the right.
const (
	cellW   = 7
	cellH   = 5
	gridX   = 2
	gridY   = 2
	slotGap = 4
)

type layout struct {
	paletteX int
	paletteY int
}

func (g *Game) layout() layout {
	return layout{
		paletteX: gridX + g.cfg.Grid.Cols*cellW + slotGap,
		paletteY: gridY + 1,
	}
}

func (l layout) cellRect(row, col int) core.Rect {
	return core.NewRect(gridX+col*cellW, gridY+row*cellH, cellW, cellH)
}

func (l layout) slotRect(i int) core.Rect {
	return core.NewRect(l.paletteX, l.paletteY+i*cellH, cellW, cellH)
}

func (l layout) cellAt(x, y, rows, cols int) (int, int, bool) {
	if x < gridX || y < gridY {
		return 0, 0, false
	}
	col, row := (x-gridX)/cellW, (y-gridY)/cellH
	if row >= rows || col >= cols {
		return 0, 0, false
	}
	return row, col, true
}

func (l layout) slotAt(x, y, n int) (int, bool) {
	for i := 0; i < n; i++ {
		if l.slotRect(i).Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Piece art, 5x3 cells inside a box.
var pieceArt = map[ShapeType][3]string{
	Square:   {" ███ ", " ███ ", " ███ "},
	Triangle: {"  ▄  ", " ▄█▄ ", "▄███▄"},
	Circle:   {" ▄▄▄ ", "█████", " ▀▀▀ "},
}

var iconGlyphs = map[Icon]rune{
	Window: '□',
	Door:   '▬',
}

var pieceColors = map[ShapeColor]core.Color{
	Red:   core.ColorBrightRed,
	Green: core.ColorBrightGreen,
	Gold:  core.ColorBrightYellow,
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawHUD(0, "Gingerbread House Builder", fmt.Sprintf("Remaining: %d", g.remaining))

	l := g.layout()
	pulse := (g.tick/20)%2 == 0
	for r, row := range g.grid {
		for c, cell := range row {
			rect := l.cellRect(r, c)
			color := core.ColorBrown
			switch {
			case r == g.cursorRow && c == g.cursorCol:
				color = core.ColorBrightWhite
			case cell == nil && g.selected >= 0 && pulse:
				color = core.ColorYellow
			}
			dst.DrawBoxWithColor(rect, color)
			if cell != nil {
				drawPiece(dst, rect, *cell)
			}
		}
	}

	dst.DrawTextWithColor(l.paletteX, gridY, "Shapes", core.ColorBrightRed)
	for i, piece := range g.palette {
		rect := l.slotRect(i)
		color := core.ColorGray
		if i == g.selected {
			color = core.ColorBrightYellow
		}
		dst.DrawBoxWithColor(rect, color)
		drawPiece(dst, rect, piece)
		dst.DrawTextWithColor(rect.Right()+1, rect.Y+2, fmt.Sprintf("%d", i+1), color)
	}

	infoY := l.slotRect(len(g.palette)).Y
	help := "1-3: pick  Arrows: move  Enter: place"
	if g.CanExport() {
		help = "E: save house as PNG"
	}
	dst.DrawTextWithColor(l.paletteX, infoY, help, core.ColorGray)

	msgY := gridY + len(g.grid)*cellH
	if g.message != "" {
		dst.DrawTextWithColor(gridX, msgY, "Gingerbread dude: ", core.ColorBrown)
		dst.DrawTextWithColor(gridX+18, msgY, g.message, core.ColorBrightWhite)
	}
}

func drawPiece(dst *core.Screen, rect core.Rect, s Shape) {
	art := pieceArt[s.Type]
	color := pieceColors[s.Color]
	for i, line := range art {
		dst.DrawTextWithColor(rect.X+1, rect.Y+1+i, line, color)
	}
	if glyph, ok := iconGlyphs[s.Icon]; ok {
		cx, cy := rect.Center()
		dst.SetWithColor(cx, cy, glyph, core.ColorDefault)
	}
}

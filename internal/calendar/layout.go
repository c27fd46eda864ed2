package calendar

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/advent-arcade/internal/core"
)

const (
	boxH    = 3
	boxGap  = 1
	treeTop = 3 // First row of boxes, below title and subtitle
)

// Layout places every section box on a screen of a given size.
type Layout struct {
	Width, Height int
	Boxes         map[int]core.Rect
	Trunk         core.Rect
}

// NewLayout computes box positions for the tree on a width x height screen.
// Boxes shrink on narrow screens; anything that does not fit is clipped.
func (c *Calendar) NewLayout(width, height int) Layout {
	widest := rowSizes[len(rowSizes)-1]
	boxW := 6
	if widest*boxW+(widest-1)*boxGap > width {
		boxW = 4
	}

	l := Layout{Width: width, Height: height, Boxes: make(map[int]core.Rect, len(c.sections))}
	for r, row := range c.rows {
		rowW := len(row)*boxW + (len(row)-1)*boxGap
		x := (width - rowW) / 2
		y := treeTop + r*boxH
		for i, id := range row {
			l.Boxes[id] = core.NewRect(x+i*(boxW+boxGap), y, boxW, boxH)
		}
	}

	trunkW := boxW
	l.Trunk = core.NewRect((width-trunkW)/2, treeTop+len(c.rows)*boxH, trunkW, 2)
	return l
}

// SectionAt returns the section whose box contains the cell (x, y).
func (l Layout) SectionAt(x, y int) (int, bool) {
	for id, r := range l.Boxes {
		if r.Contains(x, y) {
			return id, true
		}
	}
	return 0, false
}

// Render draws the sky, then the title, tree, trunk and footer over it.
func (c *Calendar) Render(dst *core.Screen, sky *Sky) {
	w, h := dst.Width(), dst.Height()
	l := c.NewLayout(w, h)

	if sky != nil {
		sky.Render(dst)
	}

	drawCentered(dst, 0, c.Title, core.ColorBrightRed)
	drawCentered(dst, 1, c.Subtitle, core.ColorGray)

	cursor := c.Cursor()
	for _, s := range c.sections {
		box := l.Boxes[s.ID]
		color := core.ColorDimGray
		switch {
		case s.ID == cursor && s.Enabled:
			color = core.ColorBrightYellow
		case s.ID == cursor:
			color = core.ColorGray
		case s.Enabled:
			color = core.ColorBrightGreen
		}
		dst.DrawRect(box, ' ')
		dst.DrawBoxWithColor(box, color)

		label := fmt.Sprintf("%d", s.ID)
		lx := box.X + (box.W-len(label))/2
		dst.DrawTextWithColor(lx, box.Y+1, label, color)
	}

	for y := l.Trunk.Y; y < l.Trunk.Bottom(); y++ {
		for x := l.Trunk.X; x < l.Trunk.Right(); x++ {
			dst.SetWithColor(x, y, '█', core.ColorBrown)
		}
	}

	drawCentered(dst, h-1, c.Footer, core.ColorGray)
}

func drawCentered(dst *core.Screen, y int, text string, color core.Color) {
	if text == "" {
		return
	}
	x := (dst.Width() - utf8.RuneCountInString(text)) / 2
	dst.DrawTextWithColor(max(0, x), y, text, color)
}

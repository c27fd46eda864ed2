package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/advent-arcade/internal/core"
)

// palette maps core colors to ANSI 256-color codes.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBrown:         "130",
	core.ColorDimGray:       "238",
}

var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := colorStyles[c]; ok {
		return st
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single styled run.
func RenderScreen(s *core.Screen) string {
	var sb, run strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		color := core.ColorDefault
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color && run.Len() > 0 {
				sb.WriteString(styleFor(color).Render(run.String()))
				run.Reset()
			}
			color = cell.Color
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(styleFor(color).Render(run.String()))
			run.Reset()
		}
	}
	return sb.String()
}

// statusTone picks how a status message is drawn.
type statusTone int

const (
	toneInfo statusTone = iota
	toneDone
	toneFailed
)

var toneStyle = map[statusTone]struct {
	mark  string
	color core.Color
}{
	toneInfo:   {"*", core.ColorBrightYellow},
	toneDone:   {"+", core.ColorBrightGreen},
	toneFailed: {"!", core.ColorBrightRed},
}

// statusLine is a message shown over the bottom screen row for a number
// of ticks. The right end carries a label that stays while the message
// is shown, such as the day's score.
type statusLine struct {
	text  string
	tone  statusTone
	ticks int
}

func (s *statusLine) set(text string, tone statusTone, ticks int) {
	s.text, s.tone, s.ticks = text, tone, ticks
}

func (s *statusLine) clear() {
	*s = statusLine{}
}

// tick ages the message. It is gone after its last tick.
func (s *statusLine) tick() {
	if s.ticks <= 0 {
		return
	}
	s.ticks--
	if s.ticks == 0 {
		s.clear()
	}
}

// draw blanks the last row and writes the message, then label flush right
// when both fit.
func (s statusLine) draw(dst *core.Screen, label string) {
	if s.text == "" || dst.Height() == 0 {
		return
	}
	y := dst.Height() - 1
	for x := range dst.Width() {
		dst.SetWithColor(x, y, ' ', core.ColorDefault)
	}

	ts := toneStyle[s.tone]
	msg := ts.mark + " " + s.text
	dst.DrawTextWithColor(1, y, msg, ts.color)

	n := len([]rune(label))
	if label != "" && 1+len([]rune(msg))+2+n < dst.Width() {
		dst.DrawTextWithColor(dst.Width()-1-n, y, label, core.ColorGray)
	}
}

package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetWithColor(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetWithColor(3, 4, '★', ColorYellow)

	c := s.GetCell(3, 4)
	if c.Rune != '★' || c.Color != ColorYellow {
		t.Errorf("GetCell(3, 4) = %+v, expected yellow star", c)
	}

	// Out of bounds writes are dropped, reads return blank
	s.SetWithColor(-1, 0, 'X', ColorRed)
	s.SetWithColor(0, 10, 'X', ColorRed)
	if s.GetCell(-1, 0) != blank || s.GetCell(0, 10) != blank {
		t.Error("out of bounds cells should read as blank")
	}
}

func TestScreenDrawTextClipsAndCountsRunes(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextWithColor(5, 0, "héllo", ColorGreen)

	if s.Get(5, 0) != 'h' || s.Get(6, 0) != 'é' || s.Get(7, 0) != 'l' {
		t.Errorf("row 0 = %q, expected clipped text starting at 5", s.Row(0))
	}
	if s.GetCell(6, 0).Color != ColorGreen {
		t.Error("text color not applied")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "Hi")

	if s.Get(9, 1) != 'H' || s.Get(10, 1) != 'i' {
		t.Errorf("row 1 = %q, expected centered text", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBoxWithColor(NewRect(1, 1, 5, 4), ColorRed)

	corners := map[Point]rune{
		{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘',
	}
	for p, want := range corners {
		if got := s.Get(p.X, p.Y); got != want {
			t.Errorf("corner %v = %q, expected %q", p, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
	if s.GetCell(1, 1).Color != ColorRed {
		t.Error("box color not applied")
	}

	// Degenerate boxes draw nothing
	s.Clear()
	s.DrawBox(NewRect(0, 0, 1, 3))
	if strings.TrimSpace(s.String()) != "" {
		t.Error("1-wide box should not draw")
	}
}

func TestScreenLinesAndRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawHLine(2, 2, 5, '-')
	s.DrawVLine(8, 1, 4, '|')
	s.DrawRect(NewRect(0, 6, 3, 2), '#')

	if s.Row(2)[2:7] != "-----" {
		t.Errorf("row 2 = %q", s.Row(2))
	}
	for y := 1; y < 5; y++ {
		if s.Get(8, y) != '|' {
			t.Errorf("vertical line missing at y=%d", y)
		}
	}
	if s.Row(6)[:3] != "###" || s.Row(7)[:3] != "###" {
		t.Error("rect fill missing")
	}
}

func TestScreenStringAndRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
	if got := s.Row(-1); got != "     " {
		t.Errorf("Row(-1) = %q, expected spaces", got)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(4, 2)
	if s.Row(0) != "Hell" {
		t.Errorf("after shrink row 0 = %q", s.Row(0))
	}

	s.Resize(12, 5)
	if !strings.HasPrefix(s.Row(0), "Hell ") {
		t.Errorf("after grow row 0 = %q", s.Row(0))
	}

	s.Resize(-3, -3)
	if s.Width() != 0 || s.Height() != 0 {
		t.Error("negative resize should clamp to zero")
	}
}

func TestDrawOverlay(t *testing.T) {
	s := NewScreen(30, 9)
	s.Fill('x')
	s.DrawOverlay("Paused", "Press P")

	if got := s.Get(11, 3); got != 'P' {
		t.Errorf("overlay title start = %q, want 'P'", got)
	}
	if got := s.Get(9, 2); got != '┌' {
		t.Errorf("overlay corner = %q, want '┌'", got)
	}
	if got := s.Get(0, 0); got != 'x' {
		t.Errorf("outside overlay = %q, want 'x'", got)
	}
}

func TestDrawHUD(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawHUD(0, "Score: 1", "9s")

	if got := s.Row(0); got != " Score: 1        9s " {
		t.Errorf("HUD row = %q", got)
	}
	if got := s.Get(5, 1); got != '─' {
		t.Errorf("separator = %q, want '─'", got)
	}
}

package core

// DrawOverlay draws a centered box with one or two lines of text,
// clearing whatever lies underneath it.
func (s *Screen) DrawOverlay(line1, line2 string) {
	maxLen := max(runeLen(line1), runeLen(line2))
	boxW := maxLen + 4
	boxH := 5
	box := NewRect((s.width-boxW)/2, (s.height-boxH)/2, boxW, boxH)

	s.DrawRect(box, ' ')
	s.DrawBoxWithColor(box, ColorBrightWhite)
	s.DrawTextWithColor(box.X+(boxW-runeLen(line1))/2, box.Y+1, line1, ColorBrightYellow)
	if line2 != "" {
		s.DrawText(box.X+(boxW-runeLen(line2))/2, box.Y+3, line2)
	}
}

// DrawHUD writes left-aligned and right-aligned text on row y and a
// separator line below it.
func (s *Screen) DrawHUD(y int, left, right string) {
	s.DrawTextWithColor(1, y, left, ColorBrightWhite)
	if right != "" {
		s.DrawTextWithColor(s.width-runeLen(right)-1, y, right, ColorCyan)
	}
	for x := 0; x < s.width; x++ {
		s.SetWithColor(x, y+1, '─', ColorGray)
	}
}

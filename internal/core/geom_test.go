package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"apart vertically", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"touching edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"single cell overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFIntersects(t *testing.T) {
	sprite := RectF{X: 10, Y: 5, W: 8, H: 4}

	tests := []struct {
		name     string
		other    RectF
		expected bool
	}{
		{"overlap", RectF{X: 17.5, Y: 8.5, W: 3, H: 2}, true},
		{"touching right edge", RectF{X: 18, Y: 5, W: 3, H: 2}, false},
		{"touching bottom edge", RectF{X: 10, Y: 9, W: 3, H: 2}, false},
		{"just inside bottom edge", RectF{X: 10, Y: 8.99, W: 3, H: 2}, true},
		{"left of sprite", RectF{X: 6.9, Y: 5, W: 3, H: 2}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := sprite.Intersects(tc.other); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContainsAndCenter(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	if !r.Contains(10, 10) || r.Contains(30, 25) || r.Contains(5, 15) {
		t.Error("Contains() edge handling wrong")
	}
	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
	if cx, cy := r.Center(); cx != 20 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (20, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampFPrefersLowerBound(t *testing.T) {
	if got := ClampF(15.5, 0, 10); got != 10 {
		t.Errorf("ClampF above = %f", got)
	}
	if got := ClampF(-1, 0, 10); got != 0 {
		t.Errorf("ClampF below = %f", got)
	}
	// Field narrower than the entity: max < min
	if got := ClampF(3, 0, -4); got != 0 {
		t.Errorf("ClampF with inverted bounds = %f, expected 0", got)
	}
}

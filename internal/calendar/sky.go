package calendar

import (
	"math/rand"

	"github.com/vovakirdan/advent-arcade/internal/core"
)

// cellsPerFlake sets snow density; the flake count is capped by config.
const cellsPerFlake = 12

// Star twinkles in place; Delay offsets its phase.
type Star struct {
	X, Y   int
	Delay  int
	Period int
}

// Bright reports whether the star is in the lit half of its cycle.
func (s Star) Bright(tick int) bool {
	if s.Period <= 0 {
		return true
	}
	return ((tick+s.Delay)/s.Period)%2 == 0
}

// Flake is a falling snowflake in fractional cells.
type Flake struct {
	X, Y  float64
	Speed float64
	Drift float64
}

// Sky is the animated background of the landing page.
type Sky struct {
	rng      *rand.Rand
	tick     int
	width    int
	height   int
	maxStars int
	maxFlake int
	stars    []Star
	flakes   []Flake
}

// NewSky creates a sky with up to stars stars and maxFlakes flakes.
func NewSky(stars, maxFlakes int, seed int64) *Sky {
	return &Sky{
		rng:      rand.New(rand.NewSource(seed)),
		maxStars: max(0, stars),
		maxFlake: max(0, maxFlakes),
	}
}

// Resize regenerates the sky for a new screen size.
func (s *Sky) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.stars = s.stars[:0]
	s.flakes = s.flakes[:0]
	if width <= 0 || height <= 0 {
		return
	}

	for i := 0; i < s.maxStars; i++ {
		s.stars = append(s.stars, Star{
			X:      s.rng.Intn(width),
			Y:      s.rng.Intn(height),
			Delay:  s.rng.Intn(120),
			Period: 30 + s.rng.Intn(60),
		})
	}

	n := min(s.maxFlake, width*height/cellsPerFlake)
	for i := 0; i < n; i++ {
		s.flakes = append(s.flakes, s.newFlake(s.rng.Float64()*float64(height)))
	}
}

func (s *Sky) newFlake(y float64) Flake {
	return Flake{
		X:     s.rng.Float64() * float64(s.width),
		Y:     y,
		Speed: 0.05 + s.rng.Float64()*0.15,
		Drift: (s.rng.Float64() - 0.5) * 0.1,
	}
}

// Step advances the animation by one tick.
func (s *Sky) Step() {
	s.tick++
	w := float64(s.width)
	for i := range s.flakes {
		f := &s.flakes[i]
		f.Y += f.Speed
		f.X += f.Drift
		if f.X < 0 {
			f.X += w
		} else if f.X >= w {
			f.X -= w
		}
		if f.X < 0 || f.X >= w {
			f.X = 0
		}
		if f.Y >= float64(s.height) {
			s.flakes[i] = s.newFlake(0)
		}
	}
}

// Stars returns the current stars.
func (s *Sky) Stars() []Star { return s.stars }

// Flakes returns the current snowflakes.
func (s *Sky) Flakes() []Flake { return s.flakes }

// Tick returns the number of steps taken.
func (s *Sky) Tick() int { return s.tick }

// Render draws the sky on empty cells only.
func (s *Sky) Render(dst *core.Screen) {
	for _, st := range s.stars {
		if dst.Get(st.X, st.Y) != ' ' {
			continue
		}
		if st.Bright(s.tick) {
			dst.SetWithColor(st.X, st.Y, '+', core.ColorBrightYellow)
		} else {
			dst.SetWithColor(st.X, st.Y, '.', core.ColorDimGray)
		}
	}
	for _, f := range s.flakes {
		x, y := int(f.X), int(f.Y)
		if dst.Get(x, y) != ' ' {
			continue
		}
		dst.SetWithColor(x, y, '*', core.ColorBrightWhite)
	}
}

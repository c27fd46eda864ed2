// Package config provides YAML-based configuration loading for the advent
// calendar and its day games.
package config

import "time"

// InputConfig tunes how key presses map to held keys.
type InputConfig struct {
	// HoldWindow is how long a key counts as held after its first press.
	// Terminals never report key releases, so it has to outlast the delay
	// before auto-repeat starts.
	HoldWindow time.Duration `yaml:"hold_window"`
	// RepeatWindow is how long a key counts as held after each auto-repeat.
	// It has to outlast the auto-repeat interval.
	RepeatWindow time.Duration `yaml:"repeat_window"`
}

// GiftsConfig contains all configuration for the day 1 gift run.
type GiftsConfig struct {
	Player    GiftsPlayer   `yaml:"player"`
	Gifts     GiftsSpawning `yaml:"gifts"`
	Countdown CountdownDate `yaml:"countdown"`
	Input     InputConfig   `yaml:"input"`
}

// GiftsPlayer defines the Santa sprite.
type GiftsPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	SpeedX float64 `yaml:"speed_x"` // Cells per tick
	SpeedY float64 `yaml:"speed_y"` // Cells per tick
	Frames int     `yaml:"frames"`  // Animation frame count
}

// GiftsSpawning defines gift pickups.
type GiftsSpawning struct {
	Width         float64       `yaml:"width"`
	Height        float64       `yaml:"height"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	RemoveDelay   time.Duration `yaml:"remove_delay"`
}

// CountdownDate is the yearly date the countdown runs to.
type CountdownDate struct {
	Month int `yaml:"month"`
	Day   int `yaml:"day"`
}

// SnowmanConfig contains all configuration for the day 2 snowman game.
type SnowmanConfig struct {
	Player SnowmanPlayer `yaml:"player"`
	Throw  SnowmanThrow  `yaml:"throw"`
	Input  InputConfig   `yaml:"input"`
}

// SnowmanPlayer defines the snowman sprite.
type SnowmanPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	StepX  float64 `yaml:"step_x"`
	StepY  float64 `yaml:"step_y"`
}

// SnowmanThrow defines charge and snowball physics.
type SnowmanThrow struct {
	MaxCharge     time.Duration `yaml:"max_charge"`
	SnowballSpeed float64       `yaml:"snowball_speed"` // Cells per tick at full charge
	Gravity       float64       `yaml:"gravity"`        // Added to vertical velocity per tick
	VerticalScale float64       `yaml:"vertical_scale"` // Cell aspect correction for vertical speed
}

// GingerbreadConfig contains all configuration for the day 3 house builder.
type GingerbreadConfig struct {
	Grid     GingerbreadGrid     `yaml:"grid"`
	Messages GingerbreadMessages `yaml:"messages"`
	Export   GingerbreadExport   `yaml:"export"`
}

// GingerbreadGrid defines the board and the shape supply.
type GingerbreadGrid struct {
	Rows        int `yaml:"rows"`
	Cols        int `yaml:"cols"`
	TotalShapes int `yaml:"total_shapes"`
	PaletteSize int `yaml:"palette_size"`
}

// GingerbreadMessages holds the flavor texts shown after placements.
type GingerbreadMessages struct {
	Jokes      []string `yaml:"jokes"`
	Completion string   `yaml:"completion"`
}

// GingerbreadExport defines the rendered image.
type GingerbreadExport struct {
	CellPixels int    `yaml:"cell_pixels"`
	Dir        string `yaml:"dir"`
}

// CalendarConfig contains the landing page layout and sections.
type CalendarConfig struct {
	Title      string          `yaml:"title"`
	Subtitle   string          `yaml:"subtitle"`
	Footer     string          `yaml:"footer"`
	Stars      int             `yaml:"stars"`
	Snowflakes int             `yaml:"snowflakes"`
	Sections   []SectionConfig `yaml:"sections"`
}

// SectionConfig overrides one calendar section.
type SectionConfig struct {
	ID      int    `yaml:"id"`
	Enabled bool   `yaml:"enabled"`
	Target  string `yaml:"target"`
}

package config

import (
	_ "embed"
	"fmt"
	"time"
)

//go:embed defaults/gifts.yaml
var defaultGiftsYAML []byte

//go:embed defaults/snowman.yaml
var defaultSnowmanYAML []byte

//go:embed defaults/gingerbread.yaml
var defaultGingerbreadYAML []byte

//go:embed defaults/calendar.yaml
var defaultCalendarYAML []byte

// SectionCount is the number of days on the calendar.
const SectionCount = 25

// DefaultGiftsConfig returns the built-in day 1 configuration.
func DefaultGiftsConfig() GiftsConfig {
	return GiftsConfig{
		Player: GiftsPlayer{
			Width:  8,
			Height: 4,
			StartX: 10,
			StartY: 4,
			SpeedX: 0.5,
			SpeedY: 0.25,
			Frames: 10,
		},
		Gifts: GiftsSpawning{
			Width:         3,
			Height:        2,
			SpawnInterval: 2 * time.Second,
			RemoveDelay:   500 * time.Millisecond,
		},
		Countdown: CountdownDate{Month: 12, Day: 25},
		Input:     InputConfig{HoldWindow: 700 * time.Millisecond, RepeatWindow: 150 * time.Millisecond},
	}
}

// DefaultSnowmanConfig returns the built-in day 2 configuration.
func DefaultSnowmanConfig() SnowmanConfig {
	return SnowmanConfig{
		Player: SnowmanPlayer{
			Width:  9,
			Height: 7,
			StartX: 10,
			StartY: 6,
			StepX:  0.6,
			StepY:  0.3,
		},
		Throw: SnowmanThrow{
			MaxCharge:     2 * time.Second,
			SnowballSpeed: 1.25,
			Gravity:       0.0125,
			VerticalScale: 0.5,
		},
		Input: InputConfig{HoldWindow: 700 * time.Millisecond, RepeatWindow: 150 * time.Millisecond},
	}
}

// DefaultGingerbreadConfig returns the built-in day 3 configuration.
func DefaultGingerbreadConfig() GingerbreadConfig {
	return GingerbreadConfig{
		Grid: GingerbreadGrid{Rows: 4, Cols: 4, TotalShapes: 10, PaletteSize: 3},
		Messages: GingerbreadMessages{
			Completion: "Thanks for building the house!",
			Jokes: []string{
				"What does a gingerbread man put on his bed? Cookie sheets!",
				"Why did Santa's helper see the doctor? Because he had low elf esteem!",
				"What do you call an elf who sings? A wrapper!",
				"What kind of photos do elves take? Elfies!",
				"What do snowmen eat for breakfast? Frosted Flakes!",
				"What do you call a scared snowman? A snow-coward!",
				"What do you get when you cross a snowman with a vampire? Frostbite!",
				"Why don't gingerbread men tell jokes? They're always baked!",
				"What did the gingerbread man say when he broke his leg? Oh snap!",
				"What's a gingerbread man's favorite school subject? Cookie-ng class!",
			},
		},
		Export: GingerbreadExport{CellPixels: 80, Dir: "~/.advent/exports"},
	}
}

// DefaultCalendarConfig returns the built-in landing page configuration:
// 25 sections with only the first two enabled.
func DefaultCalendarConfig() CalendarConfig {
	sections := make([]SectionConfig, SectionCount)
	for i := range sections {
		sections[i] = SectionConfig{
			ID:      i + 1,
			Enabled: i < 2,
			Target:  fmt.Sprintf("day%d", i+1),
		}
	}
	return CalendarConfig{
		Title:      "Advent of Prompt",
		Subtitle:   "25 days of tiny games",
		Footer:     "One door a day until Christmas",
		Stars:      50,
		Snowflakes: 200,
		Sections:   sections,
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "gifts":
		return defaultGiftsYAML
	case "snowman":
		return defaultSnowmanYAML
	case "gingerbread":
		return defaultGingerbreadYAML
	case "calendar":
		return defaultCalendarYAML
	default:
		return nil
	}
}

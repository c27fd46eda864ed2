package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	userDirMu sync.RWMutex
	userDir   string // overrides ~/.advent/configs when set
)

// SetUserDir overrides the user config directory searched by the loaders.
// An empty dir restores the default ~/.advent/configs.
func SetUserDir(dir string) {
	userDirMu.Lock()
	defer userDirMu.Unlock()
	userDir = dir
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	userDirMu.RLock()
	dir := userDir
	userDirMu.RUnlock()

	if dir != "" {
		return filepath.Join(dir, filename)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".advent", "configs", filename)
}

// load decodes the first readable config for name onto base.
// Search order: customPath -> user dir -> ./configs -> embedded default.
// Only an explicit customPath turns read/parse failures into errors; the
// other locations are optional and skipped when broken.
func load[T any](name, customPath string, base T) (T, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg := base
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return base, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := name + ".yaml"
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := base
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := base
	if err := yaml.Unmarshal(GetDefaultYAML(name), &cfg); err != nil {
		return base, nil
	}
	return cfg, nil
}

// LoadGifts loads the day 1 configuration.
func LoadGifts(customPath string) (GiftsConfig, error) {
	cfg, err := load("gifts", customPath, DefaultGiftsConfig())
	if err != nil {
		return cfg, err
	}
	return cfg.normalized(), nil
}

// LoadSnowman loads the day 2 configuration.
func LoadSnowman(customPath string) (SnowmanConfig, error) {
	cfg, err := load("snowman", customPath, DefaultSnowmanConfig())
	if err != nil {
		return cfg, err
	}
	return cfg.normalized(), nil
}

// LoadGingerbread loads the day 3 configuration.
func LoadGingerbread(customPath string) (GingerbreadConfig, error) {
	cfg, err := load("gingerbread", customPath, DefaultGingerbreadConfig())
	if err != nil {
		return cfg, err
	}
	return cfg.normalized(), nil
}

// LoadCalendar loads the landing page configuration. Section entries in the
// YAML override the defaults by ID; the result always has SectionCount
// sections in ID order.
func LoadCalendar(customPath string) (CalendarConfig, error) {
	base := DefaultCalendarConfig()
	defaults := base.Sections

	cfg, err := load("calendar", customPath, CalendarConfig{
		Title:      base.Title,
		Subtitle:   base.Subtitle,
		Footer:     base.Footer,
		Stars:      base.Stars,
		Snowflakes: base.Snowflakes,
	})
	if err != nil {
		return base, err
	}

	merged := make([]SectionConfig, len(defaults))
	copy(merged, defaults)
	for _, s := range cfg.Sections {
		if s.ID < 1 || s.ID > SectionCount {
			continue
		}
		if s.Target == "" {
			s.Target = merged[s.ID-1].Target
		}
		merged[s.ID-1] = s
	}
	cfg.Sections = merged

	if cfg.Stars < 0 {
		cfg.Stars = 0
	}
	if cfg.Snowflakes < 0 {
		cfg.Snowflakes = 0
	}
	return cfg, nil
}

// normalized replaces unusable values with defaults.
func (c GiftsConfig) normalized() GiftsConfig {
	def := DefaultGiftsConfig()
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		c.Player.Width, c.Player.Height = def.Player.Width, def.Player.Height
	}
	if c.Player.Frames < 1 {
		c.Player.Frames = def.Player.Frames
	}
	if c.Gifts.Width <= 0 || c.Gifts.Height <= 0 {
		c.Gifts.Width, c.Gifts.Height = def.Gifts.Width, def.Gifts.Height
	}
	if c.Gifts.SpawnInterval <= 0 {
		c.Gifts.SpawnInterval = def.Gifts.SpawnInterval
	}
	if c.Gifts.RemoveDelay < 0 {
		c.Gifts.RemoveDelay = def.Gifts.RemoveDelay
	}
	if c.Countdown.Month < 1 || c.Countdown.Month > 12 || c.Countdown.Day < 1 || c.Countdown.Day > 31 {
		c.Countdown = def.Countdown
	}
	return c
}

func (c SnowmanConfig) normalized() SnowmanConfig {
	def := DefaultSnowmanConfig()
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		c.Player.Width, c.Player.Height = def.Player.Width, def.Player.Height
	}
	if c.Throw.MaxCharge <= 0 {
		c.Throw.MaxCharge = def.Throw.MaxCharge
	}
	if c.Throw.VerticalScale <= 0 {
		c.Throw.VerticalScale = def.Throw.VerticalScale
	}
	return c
}

func (c GingerbreadConfig) normalized() GingerbreadConfig {
	def := DefaultGingerbreadConfig()
	if c.Grid.Rows < 1 || c.Grid.Cols < 1 {
		c.Grid.Rows, c.Grid.Cols = def.Grid.Rows, def.Grid.Cols
	}
	if c.Grid.TotalShapes < 1 {
		c.Grid.TotalShapes = def.Grid.TotalShapes
	}
	// Every shape needs a cell of its own.
	c.Grid.TotalShapes = min(c.Grid.TotalShapes, c.Grid.Rows*c.Grid.Cols)
	if c.Grid.PaletteSize < 1 {
		c.Grid.PaletteSize = def.Grid.PaletteSize
	}
	if c.Messages.Completion == "" {
		c.Messages.Completion = def.Messages.Completion
	}
	if c.Export.CellPixels < 8 {
		c.Export.CellPixels = def.Export.CellPixels
	}
	if c.Export.Dir == "" {
		c.Export.Dir = def.Export.Dir
	}
	return c
}

package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/advent-arcade/internal/config"
	"github.com/vovakirdan/advent-arcade/internal/storage"
)

// Options carries the shared dependencies of every screen.
type Options struct {
	// Store persists scores and export records. Nil disables persistence.
	Store *storage.Store

	// Logger receives platform events. Nil discards them.
	Logger *log.Logger

	// ExportDir overrides where exported files go. When empty, the game's
	// configured directory is used, then ~/.advent/exports.
	ExportDir string

	// ScreenshotDir is where ctrl+s text screenshots go.
	// Defaults to ~/.advent/screenshots.
	ScreenshotDir string

	// Calendar configures the landing page.
	Calendar config.CalendarConfig
}

const defaultExportDir = "~/.advent/exports"

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.ScreenshotDir == "" {
		o.ScreenshotDir = "~/.advent/screenshots"
	}
	if len(o.Calendar.Sections) == 0 {
		o.Calendar = config.DefaultCalendarConfig()
	}
	return o
}

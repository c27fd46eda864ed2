package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/advent-arcade/internal/config"
	"github.com/vovakirdan/advent-arcade/internal/platform/tui"
)

var flagCalendarConfig string

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Open the advent calendar",
	Long: `Open the advent calendar landing page.

Each numbered door on the tree leads to a day's game. Doors that are
still closed do nothing. Leaving a game brings you back to the tree.

Controls:
  Arrows/hjkl/wasd - Move between doors
  Enter/Space      - Open door (mouse clicks work too)
  Tab              - High scores
  Q                - Quit

Examples:
  advent calendar
  advent calendar --fps 30
  advent calendar --config ./calendar.yaml`,
	Run: runCalendar,
}

func init() {
	calendarCmd.Flags().StringVar(&flagCalendarConfig, "config", "", "Path to custom calendar config YAML")
}

func runCalendar(_ *cobra.Command, _ []string) {
	calCfg, err := config.LoadCalendar(flagCalendarConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading calendar config: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	opts := tui.Options{
		Store:    store,
		Logger:   logger,
		Calendar: calCfg,
	}
	runErr := tui.RunSession(runtimeConfig(), opts, uuid.NewString())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

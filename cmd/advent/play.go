package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/advent-arcade/internal/games/gifts"
	"github.com/vovakirdan/advent-arcade/internal/games/gingerbread"
	"github.com/vovakirdan/advent-arcade/internal/games/snowman"
	"github.com/vovakirdan/advent-arcade/internal/platform/tui"
	"github.com/vovakirdan/advent-arcade/internal/registry"
)

var (
	flagConfig    string
	flagExportDir string
)

var playCmd = &cobra.Command{
	Use:   "play <day>",
	Short: "Play a day's game",
	Long: `Start playing the specified day's game directly, skipping the calendar.

Controls:
  Arrows/WASD - Move
  Space       - Charge and throw (day2), place a piece (day3)
  1/2/3       - Pick a palette piece (day3)
  Enter       - Place a piece (day3)
  E           - Save the finished house as PNG (day3)
  P           - Pause (day1)
  R           - Restart
  Esc/B       - Leave
  Ctrl+S      - Text screenshot
  Q/Ctrl+C    - Quit

Examples:
  advent play day1
  advent play day2 --fps 30
  advent play day3 --export-dir ./pictures
  advent play day1 --config ./my-gifts.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagExportDir, "export-dir", "", "Directory for exported pictures")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'advent list' to see available games.")
		os.Exit(1)
	}

	// Set config path for the game before creation
	switch gameID {
	case gifts.ID:
		gifts.SetConfigPath(flagConfig)
	case snowman.ID:
		snowman.SetConfigPath(flagConfig)
	case gingerbread.ID:
		gingerbread.SetConfigPath(flagConfig)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	opts := tui.Options{
		Store:     store,
		Logger:    logger,
		ExportDir: flagExportDir,
	}
	runErr := tui.Run(game, runtimeConfig(), opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// advent is a terminal advent calendar with a small game behind each door.
//
// Usage:
//
//	advent                    - Open the calendar (same as 'advent calendar')
//	advent calendar           - Open the calendar landing page
//	advent play <day>         - Play a day's game directly
//	advent list               - List available games
//	advent scores <day>       - Show high scores for a game
//	advent exports            - List exported files
//	advent serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.advent/scores.db)
//	--log-file <path>    - Set log file (default: ~/.advent/advent.log)
//	--config-dir <path>  - Directory with YAML overrides (default: ~/.advent/configs)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/advent-arcade/internal/config"
	"github.com/vovakirdan/advent-arcade/internal/core"
	// Import games to register them
	_ "github.com/vovakirdan/advent-arcade/internal/games/gifts"
	_ "github.com/vovakirdan/advent-arcade/internal/games/gingerbread"
	_ "github.com/vovakirdan/advent-arcade/internal/games/snowman"
	"github.com/vovakirdan/advent-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagLogFile   string
	flagConfigDir string

	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "Advent Arcade - an advent calendar of terminal games",
	Long: `Advent Arcade is an advent calendar for the terminal. Each open door
leads to a small game: collect Santa's gifts, throw snowballs, or build a
gingerbread house and save it as a picture.

Available commands:
  calendar - Open the calendar (default)
  play     - Play a specific day directly
  list     - Show all available games
  scores   - View high scores
  exports  - List saved pictures
  serve    - Start SSH server for remote play

Examples:
  advent
  advent play day1
  advent play day3 --config ./my-house.yaml
  advent serve --ssh :2222
  advent scores day2`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	Run:               runCalendar,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.advent/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.advent/advent.log", "Path to log file (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Directory with YAML config overrides")

	// Add subcommands
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(exportsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup applies the global flags shared by every command.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagConfigDir != "" {
		dir, err := storage.ExpandPath(flagConfigDir)
		if err != nil {
			return err
		}
		config.SetUserDir(dir)
	}
	return openLog(flagLogFile)
}

// openLog sends the package logger to path. The terminal belongs to the
// UI, so interactive commands never log to stdout or stderr.
func openLog(path string) error {
	if path == "" {
		return nil
	}
	path, err := storage.ExpandPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "advent",
		Level:           log.DebugLevel,
	})
	return nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
	}
}

// runtimeConfig builds the simulation config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. The games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/advent-arcade/internal/storage"
)

var (
	flagExportsGame  string
	flagExportsLimit int
)

var exportsCmd = &cobra.Command{
	Use:   "exports",
	Short: "List saved pictures",
	Long: `List files saved by games, newest first.

Examples:
  advent exports
  advent exports --game day3 --limit 5`,
	Args: cobra.NoArgs,
	Run:  runExports,
}

func init() {
	exportsCmd.Flags().StringVar(&flagExportsGame, "game", "", "Only show exports from this game")
	exportsCmd.Flags().IntVar(&flagExportsLimit, "limit", 20, "Maximum number of exports to show")
}

func runExports(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	exports, err := store.RecentExports(flagExportsGame, flagExportsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving exports: %v\n", err)
		return
	}

	if len(exports) == 0 {
		fmt.Println("Nothing exported yet.")
		fmt.Println()
		fmt.Println("Finish a gingerbread house in 'advent play day3' and press E to save it.")
		return
	}

	fmt.Printf("  %-6s  %-16s  %s\n", "Game", "Date", "File")
	fmt.Printf("  %-6s  %-16s  %s\n", "----", "----", "----")
	for _, e := range exports {
		missing := ""
		if _, err := os.Stat(e.Path); err != nil {
			missing = "  (missing)"
		}
		fmt.Printf("  %-6s  %-16s  %s%s\n", e.GameID, e.CreatedAt.Format("2006-01-02 15:04"), e.Path, missing)
	}
}

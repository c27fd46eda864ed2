package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/advent-arcade/internal/calendar"
	"github.com/vovakirdan/advent-arcade/internal/config"
	"github.com/vovakirdan/advent-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game and the calendar door that opens it.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	calCfg, err := config.LoadCalendar("")
	if err != nil {
		calCfg = config.DefaultCalendarConfig()
	}
	doors := make(map[string]calendar.Section)
	for _, s := range calendar.New(calCfg).Sections() {
		doors[s.Target] = s
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Door", "Title")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "----", "-----")

	// Print games
	for _, g := range games {
		door := "-"
		if s, ok := doors[g.ID]; ok {
			door = fmt.Sprintf("%d", s.ID)
			if !s.Enabled {
				door += " (shut)"
			}
		}
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, g.ID, door, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'advent play <id>' to play a game.")
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quotient/internal/games/quotient"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the built-in campaign plus any levels found in the user levels
directory, in play order.`,
	Run: runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) {
	if _, _, err := applySettings(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	entries, err := quotient.AvailableLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxNameLen := 4
	for _, e := range entries {
		if len(e.Level.ID) > maxIDLen {
			maxIDLen = len(e.Level.ID)
		}
		if len(e.Level.Name) > maxNameLen {
			maxNameLen = len(e.Level.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %-3s  %-6s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "HP", "Spawns", "Source")
	fmt.Printf("  %-*s  %-*s  %-3s  %-6s  %s\n", maxIDLen, "--", maxNameLen, "----", "--", "------", "------")

	// Print levels
	for _, e := range entries {
		source := "builtin"
		if e.FilePath != "" {
			source = e.FilePath
		}
		fmt.Printf("  %-*s  %-*s  %-3d  %-6d  %s\n",
			maxIDLen, e.Level.ID, maxNameLen, e.Level.Name,
			e.Level.StartingHP, len(e.Level.Sequence), source)
	}

	fmt.Println()
	fmt.Println("Run 'quotient play <id>' to play a level.")
}

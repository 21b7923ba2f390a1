package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quotient/internal/games/quotient"
	"github.com/vovakirdan/quotient/internal/platform/tui"
	"github.com/vovakirdan/quotient/internal/registry"
	"github.com/vovakirdan/quotient/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Quotient with an interactive menu",
	Long: `Start Quotient in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode. After a run
ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  quotient menu
  quotient menu --fps 30
  quotient menu --db ./results.db`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	cfg, dbPath, err := applySettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open the results store
	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from the scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		// The campaign goes through the level picker first
		if gameID == "quotient" {
			selection, updatedCfg, selErr := tui.RunQuotientLevelSelector(store, cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			cfg = updatedCfg

			// User pressed back or quit
			if selection == nil {
				continue
			}

			if selection.Level > 0 {
				quotient.SetStartLevel(selection.Level)
			}
		}

		// Create game instance
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Update seed for each run
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}

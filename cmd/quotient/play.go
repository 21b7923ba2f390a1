package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quotient/internal/games/quotient"
	"github.com/vovakirdan/quotient/internal/platform/tui"
	"github.com/vovakirdan/quotient/internal/registry"
	"github.com/vovakirdan/quotient/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the campaign or a single level",
	Long: `Start the campaign from the level picker, or jump straight into one
level by giving its id.

Controls:
  WASD/Arrows - Move the cursor
  Space       - Place a tower, or upgrade the one under the cursor
  P           - Pause
  R           - Restart (after the run ends)
  Q/Ctrl+C    - Quit

A tower divides every invader that arrives next to it, as long as the
tower's value divides the invader's exactly. Each division wears the
tower down by one point. Placing and upgrading towers spends health,
and every invader that escapes through the exit costs its value.
Outlast the whole spawn queue to finish the level.

Difficulty options:
  easy   - Slower ticks, more time to build
  normal - The level's own pacing
  hard   - Faster ticks
  fixed  - The level's own pacing, pinned

Examples:
  quotient play
  quotient play 03-switchback
  quotient play --difficulty easy
  quotient play 01-first-steps --config ./quotient.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, dbPath, err := applySettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open the results store first: the level picker shows earned stars
	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	if len(args) == 1 {
		levelID := args[0]
		if !levelExists(levelID) {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
			fmt.Fprintln(os.Stderr, "Run 'quotient levels' to see available levels.")
			if store != nil {
				store.Close()
			}
			os.Exit(1)
		}
		quotient.SetLevelID(levelID)
	} else {
		// No level given: show the picker
		selection, updatedCfg, selErr := tui.RunQuotientLevelSelector(store, cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			if store != nil {
				store.Close()
			}
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			if store != nil {
				store.Close()
			}
			return
		}

		if selection.Level > 0 {
			quotient.SetStartLevel(selection.Level)
		}
	}

	// Create game instance
	game, err := registry.Create("quotient")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// levelExists reports whether a level id resolves against the built-in
// campaign or the user levels directory.
func levelExists(id string) bool {
	all, err := quotient.AvailableLevels()
	if err != nil {
		return false
	}
	for _, e := range all {
		if e.Level.ID == id {
			return true
		}
	}
	return false
}

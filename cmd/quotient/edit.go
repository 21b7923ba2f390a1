package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quotient/internal/games/quotient"
	"github.com/vovakirdan/quotient/internal/platform/tui"
	"github.com/vovakirdan/quotient/internal/registry"
)

var editCmd = &cobra.Command{
	Use:   "edit [level]",
	Short: "Open the level editor",
	Long: `Open the level editor on a blank draft, on an existing level, or on a
new draft under the id you name.

Controls:
  WASD/Arrows - Move the cursor
  Space       - Toggle wall / path under the cursor
  I           - Move the spawn cell to the cursor
  O           - Move the exit cell to the cursor
  Enter       - Test play the draft (Enter again returns to editing)
  Ctrl+S      - Save the draft
  Q/Ctrl+C    - Quit

Saved drafts land in the user levels directory (see --levels-dir) and
show up in 'quotient play' and 'quotient levels' next to the built-in
campaign. Test play runs never count towards the scoreboard.

Examples:
  quotient edit                # Blank draft, saved as draft.yaml
  quotient edit 02-the-bend    # Rework a campaign level
  quotient edit my-gauntlet    # New draft saved as my-gauntlet.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runEdit,
}

func runEdit(cmd *cobra.Command, args []string) {
	cfg, _, err := applySettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(args) == 1 {
		quotient.SetEditLevelID(args[0])
	}

	game, err := registry.Create("quotient_editor")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating editor: %v\n", err)
		os.Exit(1)
	}

	// The editor records no results, so it runs without a store
	if runErr := tui.Run(game, nil, cfg); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", runErr)
		os.Exit(1)
	}
}

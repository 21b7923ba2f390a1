// quotient is a TUI tower-defense platform where towers divide the
// invaders instead of shooting them.
//
// Usage:
//
//	quotient play [level]    - Play the campaign or a single level
//	quotient edit [level]    - Open the level editor
//	quotient menu            - Start menu to pick modes interactively
//	quotient levels          - List available levels
//	quotient serve           - Start SSH server for remote play
//	quotient scores [level]  - Show best results
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.quotient/results.db)
//	--config <path>      - Path to a platform config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--levels-dir <path>  - Directory with user-authored levels
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quotient/internal/config"
	"github.com/vovakirdan/quotient/internal/core"
	"github.com/vovakirdan/quotient/internal/games/quotient"
	"github.com/vovakirdan/quotient/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quotient",
	Short: "Quotient - Divide the invaders down to nothing",
	Long: `Quotient is a terminal tower defense built on integer division. Invaders
carry numbers and march from the spawn cell to the exit; your towers
divide every invader that passes them. Wear a number down to 1 and it
is solved. Let it escape and it costs you its value in health.

Available commands:
  play     - Play the campaign or a single level
  edit     - Build and test your own levels
  menu     - Interactive mode picker
  levels   - List the campaign and your own levels
  serve    - Start SSH server for remote play
  scores   - View best results

Examples:
  quotient play
  quotient play 03-switchback
  quotient edit my-gauntlet
  quotient menu
  quotient serve --ssh :2222
  quotient scores 01-first-steps`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.quotient/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to platform config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory with user-authored levels")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// applySettings loads the platform config, overlays the command-line
// flags on top of it, and primes the game package and theme. Returns
// the runtime config and the resolved database path.
func applySettings(cmd *cobra.Command) (core.RuntimeConfig, string, error) {
	qcfg, err := config.LoadQuotient(flagConfig)
	if err != nil {
		return core.RuntimeConfig{}, "", err
	}

	// An explicit flag wins over the config file
	difficulty := qcfg.Game.Difficulty
	if flagDifficulty != "" {
		difficulty = flagDifficulty
	}
	if _, err := config.ParsePreset(difficulty); err != nil {
		return core.RuntimeConfig{}, "", err
	}

	fps := qcfg.Game.FPS
	if cmd.Flags().Changed("fps") {
		fps = flagFPS
	}
	seed := qcfg.Game.Seed
	if cmd.Flags().Changed("seed") {
		seed = flagSeed
	}
	dbPath := qcfg.DatabasePath()
	if cmd.Flags().Changed("db") {
		dbPath = flagDBPath
	}
	levelsDir := qcfg.UserLevelsDir()
	if flagLevelsDir != "" {
		levelsDir = flagLevelsDir
	}

	tui.SetQuotientTheme(tui.ThemeByName(qcfg.Display.Theme))
	quotient.SetDifficultyPreset(difficulty)
	quotient.SetUserLevelsDir(levelsDir)

	// Terminal size, with sane defaults when not a terminal
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: fps,
		Seed:     seed,
	}, dbPath, nil
}

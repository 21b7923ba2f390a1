package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quotient/internal/games/quotient"
	"github.com/vovakirdan/quotient/internal/storage"
)

var flagClearResults bool

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show best results",
	Long: `Display the top 10 results for a level, or a per-level summary of
everything played so far when no level is given.

Examples:
  quotient scores
  quotient scores 01-first-steps
  quotient scores 01-first-steps --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearResults, "clear", false, "Delete the recorded results for the level")
}

func runScores(cmd *cobra.Command, args []string) {
	_, dbPath, err := applySettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClearResults {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a level id")
			os.Exit(1)
		}
		printLevelSummary(store)
		return
	}

	levelID := args[0]

	if flagClearResults {
		if err := store.ClearResults(levelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared results for %s\n", levelID)
		return
	}

	// Results outlive their level file, so an unknown id is not an
	// error; the level name just falls back to the id.
	title := levelID
	if all, lvlErr := quotient.AvailableLevels(); lvlErr == nil {
		for _, e := range all {
			if e.Level.ID == levelID {
				title = e.Level.Name
				break
			}
		}
	}

	results, err := store.TopResults(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Results - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'quotient play %s' to set the first one!\n", levelID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-7s  %-5s  %-6s  %-4s  %-6s  %s\n", "Rank", "Score", "Stars", "Result", "HP", "Ticks", "Date")
	fmt.Printf("  %-4s  %-7s  %-5s  %-6s  %-4s  %-6s  %s\n", "----", "-----", "-----", "------", "--", "-----", "----")

	// Print results
	for i, r := range results {
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-7d  %-5d  %-6s  %-4d  %-6d  %s\n",
			i+1, r.Score, r.Stars, outcome, r.HPLeft, r.DurationTicks, dateStr)
	}

	// Show the aggregate line
	fmt.Println()
	if stats, statsErr := store.GetLevelStats(levelID); statsErr == nil && stats.Plays > 0 {
		fmt.Printf("Plays: %d  Wins: %d  Best stars: %d  Best score: %d  Average: %.1f\n",
			stats.Plays, stats.Wins, stats.BestStars, stats.BestScore, stats.AvgScore)
	}
}

// printLevelSummary renders one aggregate row per level ever played.
func printLevelSummary(store *storage.Store) {
	stats, err := store.GetAllLevelStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Println("Play 'quotient play' to set the first one!")
		return
	}

	ids := make([]string, 0, len(stats))
	maxIDLen := 5 // "Level" header
	for id := range stats {
		ids = append(ids, id)
		if len(id) > maxIDLen {
			maxIDLen = len(id)
		}
	}
	sort.Strings(ids)

	fmt.Println("Results by level:")
	fmt.Println()
	fmt.Printf("  %-*s  %-5s  %-4s  %-5s  %-7s  %s\n", maxIDLen, "Level", "Plays", "Wins", "Stars", "Best", "Last Played")
	fmt.Printf("  %-*s  %-5s  %-4s  %-5s  %-7s  %s\n", maxIDLen, "-----", "-----", "----", "-----", "----", "-----------")

	for _, id := range ids {
		st := stats[id]
		fmt.Printf("  %-*s  %-5d  %-4d  %-5d  %-7d  %s\n",
			maxIDLen, id, st.Plays, st.Wins, st.BestStars, st.BestScore,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'quotient scores <id>' for a level's full table.")
}

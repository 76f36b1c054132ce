package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flap/internal/games/flap"
	"github.com/vovakirdan/flap/internal/storage"
)

var (
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores and overall statistics.

Examples:
  flap scores
  flap scores --limit 25
  flap scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(flap.GameID); err != nil {
			fail("%v", err)
		}
		fmt.Println("All scores cleared.")
		return
	}

	scores, err := store.TopScores(flap.GameID, flagLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Println("High Scores - Flap")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flap play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "Rank", "Score", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "----", "-----", "----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-6d  %-8s  %s\n",
			i+1, entry.Score, entry.Duration.Round(time.Second), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(flap.GameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d  |  Rounds: %d  |  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	fmt.Printf("Longest round: %s  |  Time played: %s\n",
		stats.LongestRun.Round(time.Second), stats.TotalPlayed.Round(time.Second))
}

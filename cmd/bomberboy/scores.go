package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bomberboy/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top scores and the most recent match results.

Examples:
  bomberboy scores
  bomberboy scores --limit 25
  bomberboy scores --clear alice`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().StringVar(&flagScoresClear, "clear", "", "Delete all scores for the given player")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear != "" {
		if err := store.ClearScores(flagScoresClear); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", flagScoresClear)
		return
	}

	scores, err := store.TopScores(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bomberboy play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n",
			i+1, entry.Player, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	matches, err := store.RecentMatches(flagScoresLimit)
	if err != nil || len(matches) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent Matches")
	fmt.Println()
	fmt.Printf("  %-16s  %-7s  %-14s  %-6s  %s\n", "When", "Players", "Winner", "End", "Time")
	for _, m := range matches {
		winner := m.Winner
		if winner == "" {
			winner = "-"
		}
		fmt.Printf("  %-16s  %-7d  %-14s  %-6s  %ds\n",
			m.CreatedAt.Format("2006-01-02 15:04"), m.Players, winner, m.EndReason, m.Duration)
	}
}

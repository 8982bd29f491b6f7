// bomberboy is a terminal bomb-laying arcade game for one or two players.
//
// Usage:
//
//	bomberboy play           - Jump straight into a match
//	bomberboy menu           - Start at the main menu
//	bomberboy serve          - Start SSH server for remote play
//	bomberboy scores         - Show the leaderboard
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible maps
//	--db <path>     - Set database path (default: ~/.bomberboy/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bomberboy",
	Short: "BomberBoy - a bomb-laying arcade game in your terminal",
	Long: `BomberBoy is a terminal arcade game: drop bombs, blast blocks,
grab the powerups hidden beneath them, and find the exit - or take out
the other player in a local duel.

Available commands:
  play     - Jump straight into a match
  menu     - Interactive main menu
  serve    - Start SSH server for remote play
  scores   - View the leaderboard

Examples:
  bomberboy play
  bomberboy play --players 2 --difficulty hard
  bomberboy menu
  bomberboy serve --ssh :2222
  bomberboy scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bomberboy/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

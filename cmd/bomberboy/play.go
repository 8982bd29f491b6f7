package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bomberboy/internal/config"
	"bomberboy/internal/core"
	"bomberboy/internal/platform/tui"
	"bomberboy/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPlayers    int
	flagName       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Jump straight into a match",
	Long: `Start a match immediately, skipping the menu.

Controls:
  Arrows/WASD - Move
  Space       - Drop bomb
  P           - Pause
  Esc         - Back to menu
  Q/Ctrl+C    - Quit

Two-player duels split the keyboard: player one uses the arrow keys and
space, player two uses WASD and x.

Difficulty presets:
  easy   - Fewer blocks, slow fuses
  normal - The classic balance
  hard   - Dense blocks, short fuses

Examples:
  bomberboy play
  bomberboy play --difficulty hard
  bomberboy play --players 2
  bomberboy play --config ./my-rules.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagPlayers, "players", 1, "Number of local players (1 or 2)")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name for the leaderboard")
}

// terminalSize returns the current terminal dimensions with a fallback.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// playerName resolves the leaderboard name from the flag or the OS user.
func playerName() string {
	if flagName != "" {
		return flagName
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagPlayers < 1 || flagPlayers > 2 {
		fmt.Fprintln(os.Stderr, "Error: --players must be 1 or 2")
		os.Exit(1)
	}

	difficulty := config.DifficultyPreset(flagDifficulty)
	switch difficulty {
	case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard:
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.RunMatch(gameCfg, rt, flagPlayers, difficulty, store, playerName())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game. Without flags an interactive picker asks for
difficulty and starting level first.

Controls:
  Left/Right or H/L  - Move piece
  Down or J          - Soft drop
  Up or X            - Rotate clockwise
  Z                  - Rotate counter-clockwise
  Space              - Hard drop
  P                  - Pause
  R                  - Restart
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Slow gravity, long lock delay
  normal - Classic feel
  hard   - Fast gravity, snappy auto-shift
  fixed  - Use the config file values untouched

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --difficulty easy --level 3
  tetris play --config ./my-tetris.yaml --difficulty fixed`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", -1, "Starting level 0-9 (skips the interactive picker)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for the picker
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	tetris.SetConfigPath(flagConfig)

	// Flags skip the picker; otherwise ask interactively.
	if flagDifficulty != "" || flagLevel >= 0 {
		tetris.SetDifficultyPreset(flagDifficulty)
		if flagLevel >= 0 {
			tetris.SetStartLevel(flagLevel)
		}
	} else {
		selection, selErr := tui.RunTetrisMenu(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}

		// User pressed back or quit
		if selection == nil {
			return
		}

		tetris.SetDifficultyPreset(selection.Difficulty)
		tetris.SetStartLevel(selection.StartLevel)
	}

	game, err := registry.Create("tetris")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

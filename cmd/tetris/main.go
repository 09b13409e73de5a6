// tetris is a terminal Tetris with a classic NES-style feel.
//
// Usage:
//
//	tetris play              - Play (interactive difficulty/level picker)
//	tetris scores            - Show high scores
//	tetris list              - List available games
//	tetris serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tetris/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
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
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A terminal Tetris with classic gameplay: SRS rotation with wall
kicks, DAS/ARR auto-shift, NES-style randomizer and scoring.

Available commands:
  play     - Play the game
  scores   - View high scores
  list     - Show registered games
  serve    - Start SSH server for remote play

Examples:
  tetris play
  tetris play --difficulty hard --level 5
  tetris scores
  tetris serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
}

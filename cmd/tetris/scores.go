package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagTop         int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

Examples:
  tetris scores
  tetris scores --top 25
  tetris scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagTop, "top", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse scores in a full-screen table")
}

func runScores(cmd *cobra.Command, args []string) {
	const gameID = "tetris"

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, sbErr := tui.RunScoreboard(store, gameID, width, height); sbErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(gameID, flagTop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Tetris")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "Rank", "Score", "Lines", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-6d  %s\n", i+1, entry.Score, entry.Lines, entry.Level, dateStr)
	}

	fmt.Println()
	if highScore, hsErr := store.HighScore(gameID); hsErr == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexmines/internal/config"
	"github.com/vovakirdan/hexmines/internal/registry"
	"github.com/vovakirdan/hexmines/internal/storage"
)

var flagRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores and win rates",
	Long: `Display the top 10 scores, play statistics and win rate per difficulty
for a board variant (default: hexmines), followed by the most recent games.

Examples:
  hexmines scores
  hexmines scores hexmines_pointy
  hexmines scores --recent 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent games to show (0 to hide)")
}

func runScores(_ *cobra.Command, args []string) error {
	boardID := "hexmines"
	if len(args) > 0 {
		boardID = args[0]
	}

	if !registry.Exists(boardID) {
		return fmt.Errorf("unknown board %q (run 'hexmines list' to see available boards)", boardID)
	}

	game, err := registry.Create(boardID)
	if err != nil {
		return fmt.Errorf("creating board: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(boardID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hexmines play %s' to set the first high score!\n", boardID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(boardID); err == nil && stats != nil {
		fmt.Printf("Best: %d   Games scored: %d   Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}

	printWinRates(store, boardID)

	if flagRecent > 0 {
		printRecent(store, boardID, flagRecent)
	}
	return nil
}

func printWinRates(store *storage.Store, boardID string) {
	fmt.Println()
	fmt.Println("Win rate:")
	for _, p := range config.Presets() {
		ws, err := store.WinRate(boardID, string(p))
		if err != nil {
			logger.Warn("reading win rate", "difficulty", p, "error", err)
			return
		}
		if ws.Played == 0 {
			continue
		}
		fmt.Printf("  %-10s  %3d/%-3d  %5.1f%%\n", p.Title(), ws.Won, ws.Played, ws.Rate()*100)
	}
}

func printRecent(store *storage.Store, boardID string, limit int) {
	// Results of other boards are filtered out, so over-fetch a little
	results, err := store.RecentResults(limit * 4)
	if err != nil {
		logger.Warn("reading recent games", "error", err)
		return
	}

	fmt.Println()
	fmt.Println("Recent games:")
	shown := 0
	for _, r := range results {
		if r.GameID != boardID {
			continue
		}
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		fmt.Printf("  %s  %-10s  %dx%d  %-4s  %6d  %ds\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Difficulty, r.Columns, r.Rows, outcome, r.Score, r.DurationSecs)
		shown++
		if shown == limit {
			break
		}
	}
	if shown == 0 {
		fmt.Println("  none")
	}
}

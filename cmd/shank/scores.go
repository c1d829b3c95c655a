package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shank/internal/shank"
	"github.com/vovakirdan/tui-shank/internal/storage"
)

var (
	flagLimit  int
	flagPlayer string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best recorded runs, or the latest runs of one player.

Examples:
  shank scores
  shank scores --limit 25
  shank scores --player alice
  shank scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show this player's latest runs")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history (settings are kept)")
}

func runScores(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Fprintln(out, "Run history cleared.")
		return nil
	}

	var runs []storage.Run
	if flagPlayer != "" {
		runs, err = store.PlayerRuns(flagPlayer, flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	if flagPlayer != "" {
		fmt.Fprintf(out, "Latest runs - %s\n", flagPlayer)
	} else {
		fmt.Fprintln(out, "High Scores")
	}
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'shank play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-8s  %s\n", "Rank", "Player", "Score", "Level", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-8s  %s\n", "----", "------", "-----", "-----", "----")

	for i, r := range runs {
		level := fmt.Sprintf("%d/%d", r.Level, shank.LevelCount())
		if r.Completed {
			level = "cleared"
		}
		fmt.Fprintf(out, "  %-4d  %-12s  %-6d  %-8s  %s\n",
			i+1, r.Player, r.Score, level, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Runs: %d  Cleared: %d  Best: %d  Average: %.1f\n",
		stats.Runs, stats.Completed, stats.HighScore, stats.AvgScore)
	fmt.Fprintf(out, "Local best score: %d\n", shank.LoadBestScore(store, nil))
	return nil
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/archiquiz/internal/application/handlers"
	"github.com/ersonp/archiquiz/internal/domain/services"
)

func newStatsCmd() *cobra.Command {
	var (
		reset   bool
		history int
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show or reset the player's score",
		Long: `Shows the running score, per-kind accuracy and recent answers of a player.

Examples:
  archiquiz stats
  archiquiz stats --history 20
  archiquiz --player anna stats --reset`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, reset, history)
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Reset the score (history is kept)")
	cmd.Flags().IntVar(&history, "history", DefaultHistoryLimit, "Number of recent answers to show (0 hides them)")

	return cmd
}

func runStats(cmd *cobra.Command, reset bool, history int) error {
	if history > MaxHistoryLimit {
		return fmt.Errorf("history must be at most %d, got %d", MaxHistoryLimit, history)
	}

	ctx := cmd.Context()
	return withStatsHandler(ctx, func(handler *handlers.StatsHandler) error {
		if reset {
			if err := handler.Reset(ctx); err != nil {
				return err
			}
			fmt.Println("Score reset.")
			return nil
		}

		report, err := handler.Report(ctx, history)
		if err != nil {
			return err
		}
		displayReport(os.Stdout, report)
		return nil
	})
}

func displayReport(w io.Writer, r *services.StatsReport) {
	s := r.Stats
	fmt.Fprintf(w, "Score: %d/%d  Streak: %d  Best: %d\n", s.Score, s.Total, s.Streak, s.BestStreak)

	if len(r.ByKind) > 0 {
		fmt.Fprintln(w, "\nBy kind:")
		for _, k := range r.ByKind {
			fmt.Fprintf(w, "  %-15s %d/%d (%.0f%%)\n", k.Kind, k.Correct, k.Attempts, k.Accuracy()*100)
		}
	}

	if len(r.History) > 0 {
		fmt.Fprintln(w, "\nRecent answers:")
		for _, a := range r.History {
			mark := "✗"
			if a.Correct {
				mark = "✓"
			}
			fmt.Fprintf(w, "  %s %s  %-20s %-15s %-6s %q\n", mark, a.CreatedAt.Format("2006-01-02 15:04"), a.BuildingID, a.Kind, a.Presentation, a.Input)
		}
	}
}

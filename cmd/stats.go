package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/kosakata/internal/quiz"
	"github.com/abhisek/kosakata/internal/screens/stats"
	"github.com/abhisek/kosakata/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-word results, hardest words first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		all, _ := cmd.Flags().GetBool("all")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := context.Background()
		svc := d.sessions(ctx)

		var rows [][]string
		for _, r := range svc.Ledger().ByWrong() {
			if !all && r.Attempts() == 0 {
				continue
			}
			if limit > 0 && len(rows) == limit {
				break
			}
			rows = append(rows, stats.Row(r, svc.Vocab()))
		}

		if len(rows) == 0 {
			fmt.Println("No answers recorded yet.")
		} else {
			fmt.Println(stats.Table(rows).Render())
			correct, wrong := svc.Ledger().Totals()
			fmt.Printf("%d correct, %d wrong overall\n", correct, wrong)
		}

		events := d.events()
		if events == nil {
			return nil
		}
		sessions, err := events.QuerySessionSummaries(ctx, store.QueryOpts{Limit: 5})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) == 0 {
			return nil
		}
		fmt.Println()
		fmt.Println("Recent quizzes")
		for _, s := range sessions {
			label := s.Direction
			if dir, err := quiz.ParseDirection(s.Direction); err == nil {
				label = dir.Label()
			}
			fmt.Printf("  %s  %-18s  %3d/%-3d  %3.0f%%\n",
				s.Timestamp.Local().Format("2006-01-02 15:04"), label, s.Correct, s.Questions, s.Accuracy()*100)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of words to show (0 for all)")
	statsCmd.Flags().Bool("all", false, "Include words that were never asked")
}

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/kosakata/internal/ledger"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the attempt ledger and, optionally, quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		withEvents, _ := cmd.Flags().GetBool("history")
		if !yes {
			return errors.New("this erases all recorded answers; re-run with --yes to confirm")
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := context.Background()
		repo := d.ledgerRepo()
		if repo == nil {
			_, err := d.requireStore()
			return err
		}
		if err := repo.Save(ctx, ledger.New()); err != nil {
			return fmt.Errorf("reset ledger: %w", err)
		}
		fmt.Println("Ledger cleared.")

		if withEvents {
			st, err := d.requireStore()
			if err != nil {
				return err
			}
			if err := st.ResetEvents(ctx); err != nil {
				return fmt.Errorf("reset history: %w", err)
			}
			fmt.Println("Quiz history cleared.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
	resetCmd.Flags().Bool("history", false, "Also delete quiz and LLM history from the database")
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/durgas/budgetai/internal/cli"
	"github.com/durgas/budgetai/internal/seed"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample dataset",
		Long:  `Load a small demonstration dataset: a salary deposit, two expenses, and a monthly budget.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := seed.Load(ctx, store, time.Now().UTC()); err != nil {
				return fmt.Errorf("failed to load sample data: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Sample data loaded. Try 'budgetai summary'."))
			return nil
		},
	}
}

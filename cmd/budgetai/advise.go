package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/durgas/budgetai/internal/advisor"
	"github.com/durgas/budgetai/internal/cli"
)

func adviseCmd() *cobra.Command {
	var income float64

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Generate budget recommendations",
		Long: `Generate rule-based recommendations from your transaction history.
The monthly income figure defaults to this month's recorded income
transactions and can be overridden with --income.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			transactions, _, err := loadCollections(ctx, store)
			if err != nil {
				return err
			}

			now := time.Now()
			if income == 0 {
				income = monthlyIncome(transactions, now)
			}

			recommendations := advisor.Recommendations(transactions, income, now)

			fmt.Println(cli.TitleStyle.Render(cli.BulbIcon + " Recommendations"))
			for _, rec := range recommendations {
				fmt.Printf("  [%s] %s\n", cli.BoldStyle.Render(string(rec.Type)), rec.Message)
			}

			fmt.Println()
			fmt.Println(cli.TitleStyle.Render(cli.BulbIcon + " Insights"))
			for _, insight := range advisor.Insights(transactions) {
				fmt.Printf("  • %s\n", cli.SubtleStyle.Render(insight))
			}

			return nil
		},
	}

	cmd.Flags().Float64Var(&income, "income", 0, "monthly income (default: this month's recorded income)")

	return cmd
}

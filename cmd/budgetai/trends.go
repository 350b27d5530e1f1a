package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/durgas/budgetai/internal/cli"
	"github.com/durgas/budgetai/internal/engine"
)

func trendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trends",
		Short: "Show spending totals for the last six months",
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

			trends := engine.SpendingTrends(transactions, time.Now())

			var max float64
			for _, trend := range trends {
				if trend.Amount > max {
					max = trend.Amount
				}
			}

			fmt.Println(cli.TitleStyle.Render(cli.ChartIcon + " Spending trend"))
			for _, trend := range trends {
				share := 0.0
				if max > 0 {
					share = trend.Amount / max
				}
				fmt.Printf("  %-9s %s %s\n", trend.Period, cli.Bar(share, 30), cli.FormatMoney(trend.Amount))
			}

			return nil
		},
	}
}

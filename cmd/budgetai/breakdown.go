package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/durgas/budgetai/internal/cli"
	"github.com/durgas/budgetai/internal/engine"
)

func breakdownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "breakdown",
		Short: "Show this month's spending by category",
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
			breakdown := engine.Breakdown(transactions, now)
			if len(breakdown) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No expenses recorded this month."))
				return nil
			}

			// Largest share first for display.
			sort.SliceStable(breakdown, func(i, j int) bool {
				return breakdown[i].Amount > breakdown[j].Amount
			})

			fmt.Println(cli.TitleStyle.Render(cli.ChartIcon + " " + now.Format("January 2006") + " breakdown"))
			for _, entry := range breakdown {
				fmt.Printf("  %-15s %s %5.1f%%  %s\n",
					cli.FormatCategory(entry.Category),
					cli.Bar(entry.Percentage/100, 30),
					entry.Percentage,
					cli.FormatMoney(entry.Amount))
			}

			return nil
		},
	}
}

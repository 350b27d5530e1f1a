package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/durgas/budgetai/internal/cli"
	"github.com/durgas/budgetai/internal/engine"
	"github.com/durgas/budgetai/internal/model"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the daily limit and monthly budget summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			transactions, budgets, err := loadCollections(ctx, store)
			if err != nil {
				return err
			}

			now := time.Now()
			limit := engine.DailyLimit(transactions, budgets, now)
			summary := engine.MonthlySummary(transactions, budgets, now)

			if limit == nil && summary == nil {
				fmt.Println(cli.SubtleStyle.Render("No monthly budget set. Use 'budgetai budgets add --period monthly' to create one."))
				return nil
			}

			if limit != nil {
				fmt.Println(cli.FormatTitle("Daily spending limit"))
				fmt.Printf("  %s per day for %s\n", cli.FormatMoney(limit.Amount), limit.Date.Format("Mon, Jan 2 2006"))
				fmt.Printf("  Remaining today: %s\n\n", cli.FormatRemaining(limit.Remaining, limit.Amount))
			}

			if summary != nil {
				fmt.Println(cli.FormatTitle(now.Format("January 2006") + " summary"))
				fmt.Printf("  Budget: %s  Spent: %s  Remaining: %s\n\n",
					cli.FormatMoney(summary.TotalBudget),
					cli.FormatMoney(summary.TotalSpent),
					cli.FormatRemaining(summary.Remaining, summary.TotalBudget))

				if len(summary.Categories) > 0 {
					printCategoryTable(summary)
				}
			}

			return nil
		},
	}
}

// printCategoryTable renders per-category budget usage, heaviest spender
// first.
func printCategoryTable(summary *model.MonthlyBudgetSummary) {
	categories := make([]model.Category, 0, len(summary.Categories))
	for category := range summary.Categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return summary.Categories[categories[i]].Spent > summary.Categories[categories[j]].Spent
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
		cli.BoldStyle.Render("Category"),
		cli.BoldStyle.Render("Budget"),
		cli.BoldStyle.Render("Spent"),
		cli.BoldStyle.Render("Remaining"),
		"")

	for _, category := range categories {
		entry := summary.Categories[category]
		share := 0.0
		if entry.Budget > 0 {
			share = entry.Spent / entry.Budget
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
			cli.FormatCategory(category),
			cli.FormatMoney(entry.Budget),
			cli.FormatMoney(entry.Spent),
			cli.FormatRemaining(entry.Remaining, entry.Budget),
			cli.Bar(share, 20))
	}
}

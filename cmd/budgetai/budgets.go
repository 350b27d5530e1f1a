package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/durgas/budgetai/internal/cli"
	"github.com/durgas/budgetai/internal/model"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage budgets",
		Long: `Add, list, and delete budgets. Only monthly budgets drive the
daily limit and monthly summary; other periods are stored but inert.`,
	}

	cmd.AddCommand(addBudgetCmd())
	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(deleteBudgetCmd())

	return cmd
}

func addBudgetCmd() *cobra.Command {
	var (
		amount     float64
		period     string
		start      string
		end        string
		categories []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			now := time.Now().UTC()

			startDate, err := parseDate(start, now)
			if err != nil {
				return err
			}
			endDate, err := parseDate(end, startDate.AddDate(0, 1, 0))
			if err != nil {
				return err
			}

			var restricted []model.Category
			for _, name := range categories {
				category := model.Category(strings.TrimSpace(name))
				if !category.IsValid() {
					return fmt.Errorf("unknown category %q (valid: %s)", name, categoryList())
				}
				restricted = append(restricted, category)
			}

			budget := model.Budget{
				ID:         uuid.NewString(),
				Amount:     amount,
				Period:     model.BudgetPeriod(period),
				StartDate:  startDate,
				EndDate:    endDate,
				Categories: restricted,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := budget.Validate(); err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveBudget(ctx, &budget); err != nil {
				return fmt.Errorf("failed to save budget: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created %s budget of %s",
				budget.Period, cli.FormatMoney(budget.Amount))))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "budget amount (required)")
	cmd.Flags().StringVar(&period, "period", string(model.PeriodMonthly), "daily, weekly, monthly, or yearly")
	cmd.Flags().StringVar(&start, "start", "", "start date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&end, "end", "", "end date as YYYY-MM-DD (default: one month after start)")
	cmd.Flags().StringSliceVar(&categories, "categories", nil, "optional category restriction")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			budgets, err := store.GetBudgets(ctx)
			if err != nil {
				return fmt.Errorf("failed to list budgets: %w", err)
			}

			if len(budgets) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No budgets found. Use 'budgetai budgets add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Period"),
				cli.BoldStyle.Render("Amount"),
				cli.BoldStyle.Render("Start"),
				cli.BoldStyle.Render("End"),
				cli.BoldStyle.Render("Categories"),
				cli.BoldStyle.Render("ID"))

			for i := range budgets {
				budget := &budgets[i]
				restriction := "all"
				if len(budget.Categories) > 0 {
					names := make([]string, 0, len(budget.Categories))
					for _, category := range budget.Categories {
						names = append(names, cli.FormatCategory(category))
					}
					restriction = strings.Join(names, ", ")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					budget.Period,
					cli.FormatMoney(budget.Amount),
					budget.StartDate.Format("2006-01-02"),
					budget.EndDate.Format("2006-01-02"),
					restriction,
					cli.SubtleStyle.Render(budget.ID))
			}

			return nil
		},
	}
}

func deleteBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteBudget(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Budget deleted"))
			return nil
		},
	}
}

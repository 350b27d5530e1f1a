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
	"github.com/durgas/budgetai/internal/service"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"txn"},
		Short:   "Manage transactions",
		Long:    `Add, list, and delete income and expense transactions.`,
	}

	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(deleteTransactionCmd())

	return cmd
}

func addTransactionCmd() *cobra.Command {
	var (
		amount      float64
		kind        string
		category    string
		description string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			occurred, err := parseDate(date, time.Now())
			if err != nil {
				return err
			}

			cat := model.Category(category)
			if !cat.IsValid() {
				return fmt.Errorf("unknown category %q (valid: %s)", category, categoryList())
			}

			now := time.Now().UTC()
			txn := model.Transaction{
				ID:          uuid.NewString(),
				Amount:      amount,
				Kind:        model.TransactionKind(kind),
				Category:    cat,
				Description: description,
				OccurredAt:  occurred,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := txn.Validate(); err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveTransaction(ctx, &txn); err != nil {
				return fmt.Errorf("failed to save transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s of %s in %s",
				txn.Kind, cli.FormatMoney(txn.Amount), cli.FormatCategory(txn.Category))))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "transaction amount (required)")
	cmd.Flags().StringVar(&kind, "kind", string(model.KindExpense), "income or expense")
	cmd.Flags().StringVar(&category, "category", "", "transaction category (required)")
	cmd.Flags().StringVar(&description, "description", "", "what the money was for")
	cmd.Flags().StringVar(&date, "date", "", "occurrence date as YYYY-MM-DD (default: today)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	var (
		category string
		kind     string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			filter := service.TransactionFilter{
				Category: model.Category(category),
				Kind:     model.TransactionKind(kind),
				Limit:    limit,
			}
			transactions, err := store.GetTransactions(ctx, filter)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			if len(transactions) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions found. Use 'budgetai transactions add' to record one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Date"),
				cli.BoldStyle.Render("Kind"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Amount"),
				cli.BoldStyle.Render("Description"),
				cli.BoldStyle.Render("ID"))

			for i := range transactions {
				txn := &transactions[i]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					txn.OccurredAt.Format("2006-01-02"),
					txn.Kind,
					cli.FormatCategory(txn.Category),
					cli.FormatMoney(txn.Amount),
					txn.Description,
					cli.SubtleStyle.Render(txn.ID))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().StringVar(&kind, "kind", "", "filter by kind (income, expense)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum rows to show (0 = all)")

	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteTransaction(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Transaction deleted"))
			return nil
		},
	}
}

func categoryList() string {
	names := make([]string, 0, len(model.AllCategories()))
	for _, category := range model.AllCategories() {
		names = append(names, string(category))
	}
	return strings.Join(names, ", ")
}

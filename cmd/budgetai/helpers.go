package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/durgas/budgetai/internal/common"
	"github.com/durgas/budgetai/internal/config"
	"github.com/durgas/budgetai/internal/model"
	"github.com/durgas/budgetai/internal/service"
	"github.com/durgas/budgetai/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := config.DatabasePath(viper.GetString("database.path"))

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError("could not open the budget database", err)
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadCollections reads the full transaction and budget collections that
// the derivation engine consumes.
func loadCollections(ctx context.Context, store service.Storage) ([]model.Transaction, []model.Budget, error) {
	transactions, err := store.GetTransactions(ctx, service.TransactionFilter{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	budgets, err := store.GetBudgets(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load budgets: %w", err)
	}
	return transactions, budgets, nil
}

// monthlyIncome sums income transactions for the calendar month containing
// now. The advisor takes this as its income figure.
func monthlyIncome(transactions []model.Transaction, now time.Time) float64 {
	var income float64
	for i := range transactions {
		t := &transactions[i]
		if t.Kind == model.KindIncome && t.OccurredIn(now.Month(), now.Year()) {
			income += t.Amount
		}
	}
	return income
}

// parseDate parses a YYYY-MM-DD flag value, defaulting to now when empty.
func parseDate(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", value, err)
	}
	return parsed, nil
}

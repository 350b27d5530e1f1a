// Package seed provides the demonstration dataset: a salary deposit, a
// couple of expenses, and a monthly budget, dated relative to "now" so the
// derived views always have current-month activity to show.
package seed

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/durgas/budgetai/internal/model"
	"github.com/durgas/budgetai/internal/service"
)

// Transactions returns the sample transaction set.
func Transactions(now time.Time) []model.Transaction {
	return []model.Transaction{
		{
			ID:          uuid.NewString(),
			Amount:      3000,
			Kind:        model.KindIncome,
			Category:    model.CategorySalary,
			Description: "Monthly salary",
			OccurredAt:  now,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Amount:      50,
			Kind:        model.KindExpense,
			Category:    model.CategoryFood,
			Description: "Grocery shopping",
			OccurredAt:  now,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Amount:      30,
			Kind:        model.KindExpense,
			Category:    model.CategoryTransportation,
			Description: "Uber ride",
			OccurredAt:  now,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// Budgets returns the sample budget set: a single 2000 monthly budget
// covering the month containing now.
func Budgets(now time.Time) []model.Budget {
	return []model.Budget{
		{
			ID:        uuid.NewString(),
			Amount:    2000,
			Period:    model.PeriodMonthly,
			StartDate: now,
			EndDate:   now.AddDate(0, 1, 0),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// Load writes the sample dataset into storage.
func Load(ctx context.Context, store service.Storage, now time.Time) error {
	if err := store.SaveTransactions(ctx, Transactions(now)); err != nil {
		return err
	}
	for _, budget := range Budgets(now) {
		budget := budget
		if err := store.SaveBudget(ctx, &budget); err != nil {
			return err
		}
	}
	return nil
}

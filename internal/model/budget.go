package model

import (
	"fmt"
	"time"
)

// BudgetPeriod is a budget's renewal cadence.
type BudgetPeriod string

const (
	// PeriodDaily renews every day.
	PeriodDaily BudgetPeriod = "daily"
	// PeriodWeekly renews every week.
	PeriodWeekly BudgetPeriod = "weekly"
	// PeriodMonthly renews every calendar month. Only monthly budgets
	// participate in derived views; other periods are stored but inert.
	PeriodMonthly BudgetPeriod = "monthly"
	// PeriodYearly renews every year.
	PeriodYearly BudgetPeriod = "yearly"
)

// Budget represents a spending target over a period. Categories optionally
// restricts the budget to a subset of categories; empty means all.
type Budget struct {
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ID         string
	Period     BudgetPeriod
	Categories []Category
	Amount     float64
}

// Validate checks the structural invariants of a budget.
func (b *Budget) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("budget: missing ID")
	}
	if b.Amount < 0 {
		return fmt.Errorf("budget %s: amount must be non-negative, got %.2f", b.ID, b.Amount)
	}
	switch b.Period {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
	default:
		return fmt.Errorf("budget %s: invalid period %q", b.ID, b.Period)
	}
	return nil
}

// FirstMonthly returns the first budget with a monthly period, in stored
// order, or nil when none exists. Multiple monthly budgets are legal; the
// first one wins.
func FirstMonthly(budgets []Budget) *Budget {
	for i := range budgets {
		if budgets[i].Period == PeriodMonthly {
			return &budgets[i]
		}
	}
	return nil
}

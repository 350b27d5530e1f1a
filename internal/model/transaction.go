// Package model defines the core domain types for the budgetai application.
package model

import (
	"fmt"
	"time"
)

// TransactionKind is the direction of money movement for a transaction.
type TransactionKind string

const (
	// KindIncome marks money coming in.
	KindIncome TransactionKind = "income"
	// KindExpense marks money going out.
	KindExpense TransactionKind = "expense"
)

// Transaction represents a single financial transaction.
//
// Any category may pair with any kind; the pairing is deliberately not
// validated so that, for example, a refunded expense can be recorded as
// income against an expense category.
type Transaction struct {
	OccurredAt  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ID          string
	Description string
	Kind        TransactionKind
	Category    Category
	Amount      float64
}

// Validate checks the structural invariants of a transaction.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transaction: missing ID")
	}
	if t.Amount < 0 {
		return fmt.Errorf("transaction %s: amount must be non-negative, got %.2f", t.ID, t.Amount)
	}
	if t.Kind != KindIncome && t.Kind != KindExpense {
		return fmt.Errorf("transaction %s: invalid kind %q", t.ID, t.Kind)
	}
	if t.OccurredAt.IsZero() {
		return fmt.Errorf("transaction %s: missing date", t.ID)
	}
	return nil
}

// IsExpense reports whether the transaction is an expense.
func (t *Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}

// OccurredOn reports whether the transaction occurred on the same calendar
// day as the given time.
func (t *Transaction) OccurredOn(day time.Time) bool {
	return t.OccurredAt.Format("2006-01-02") == day.Format("2006-01-02")
}

// OccurredIn reports whether the transaction occurred in the given calendar
// month and year.
func (t *Transaction) OccurredIn(month time.Month, year int) bool {
	return t.OccurredAt.Month() == month && t.OccurredAt.Year() == year
}

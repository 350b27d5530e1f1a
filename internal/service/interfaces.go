// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/durgas/budgetai/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
// Zero values mean "no constraint".
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  model.Category
	Kind      model.TransactionKind
	Limit     int
	Offset    int
}

// Storage defines the contract for the persistence layer that owns the
// transaction and budget collections. Reads return whole collections; the
// aggregation engine derives its views from those and never writes back.
type Storage interface {
	// Transaction operations.
	SaveTransaction(ctx context.Context, txn *model.Transaction) error
	SaveTransactions(ctx context.Context, transactions []model.Transaction) error
	GetTransaction(ctx context.Context, id string) (*model.Transaction, error)
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	UpdateTransaction(ctx context.Context, txn *model.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error

	// Budget operations.
	SaveBudget(ctx context.Context, budget *model.Budget) error
	GetBudget(ctx context.Context, id string) (*model.Budget, error)
	GetBudgets(ctx context.Context) ([]model.Budget, error)
	UpdateBudget(ctx context.Context, budget *model.Budget) error
	DeleteBudget(ctx context.Context, id string) error

	// Lifecycle.
	Migrate(ctx context.Context) error
	Close() error
}

// SMSImporter extracts transactions from device messages and persists them.
type SMSImporter interface {
	Import(ctx context.Context, filter string, limit int) (imported, skipped int, err error)
}

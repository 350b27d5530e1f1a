package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/durgas/budgetai/internal/common"
	"github.com/durgas/budgetai/internal/model"
)

// SaveBudget inserts a single budget.
func (s *SQLiteStorage) SaveBudget(ctx context.Context, budget *model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBudget(budget); err != nil {
		return err
	}

	categories, err := marshalCategories(budget.Categories)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO budgets (id, amount, period, start_date, end_date, categories, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, budget.ID, budget.Amount, budget.Period, budget.StartDate, budget.EndDate,
		categories, budget.CreatedAt, budget.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: budget %s", common.ErrDuplicateEntry, budget.ID)
		}
		return fmt.Errorf("failed to save budget: %w", err)
	}

	return nil
}

// GetBudget fetches a budget by ID.
func (s *SQLiteStorage) GetBudget(ctx context.Context, id string) (*model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, amount, period, start_date, end_date, categories, created_at, updated_at
		FROM budgets WHERE id = ?
	`, id)

	budget, err := scanBudget(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: budget %s", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return budget, nil
}

// GetBudgets returns all budgets in creation order, which preserves the
// first-match semantics of the monthly budget lookup.
func (s *SQLiteStorage) GetBudgets(ctx context.Context) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, amount, period, start_date, end_date, categories, created_at, updated_at
		FROM budgets ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.Budget
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, *budget)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budgets: %w", err)
	}

	return budgets, nil
}

// UpdateBudget replaces a stored budget in place and bumps its updated_at
// timestamp.
func (s *SQLiteStorage) UpdateBudget(ctx context.Context, budget *model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBudget(budget); err != nil {
		return err
	}

	categories, err := marshalCategories(budget.Categories)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE budgets
		SET amount = ?, period = ?, start_date = ?, end_date = ?, categories = ?, updated_at = ?
		WHERE id = ?
	`, budget.Amount, budget.Period, budget.StartDate, budget.EndDate, categories, time.Now().UTC(), budget.ID)
	if err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: budget %s", common.ErrNotFound, budget.ID)
	}

	return nil
}

// DeleteBudget removes a budget by ID.
func (s *SQLiteStorage) DeleteBudget(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: budget %s", common.ErrNotFound, id)
	}

	return nil
}

func marshalCategories(categories []model.Category) (sql.NullString, error) {
	if len(categories) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(categories)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to marshal categories: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func scanBudget(row scanner) (*model.Budget, error) {
	var (
		budget     model.Budget
		categories sql.NullString
	)
	if err := row.Scan(&budget.ID, &budget.Amount, &budget.Period, &budget.StartDate,
		&budget.EndDate, &categories, &budget.CreatedAt, &budget.UpdatedAt); err != nil {
		return nil, err
	}
	if categories.Valid {
		if err := json.Unmarshal([]byte(categories.String), &budget.Categories); err != nil {
			return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
		}
	}
	return &budget, nil
}

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionValidate(t *testing.T) {
	occurred := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	valid := Transaction{ID: "t1", Amount: 50, Kind: KindExpense, Category: CategoryFood, OccurredAt: occurred}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Transaction)
	}{
		{"missing ID", func(txn *Transaction) { txn.ID = "" }},
		{"negative amount", func(txn *Transaction) { txn.Amount = -1 }},
		{"unknown kind", func(txn *Transaction) { txn.Kind = "transfer" }},
		{"zero date", func(txn *Transaction) { txn.OccurredAt = time.Time{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := valid
			tt.mutate(&txn)
			assert.Error(t, txn.Validate())
		})
	}

	t.Run("any category pairs with any kind", func(t *testing.T) {
		refund := valid
		refund.Kind = KindIncome // refund against an expense category
		assert.NoError(t, refund.Validate())
	})
}

func TestTransactionOccurred(t *testing.T) {
	morning := time.Date(2024, time.June, 15, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, time.June, 15, 22, 30, 0, 0, time.UTC)
	txn := Transaction{OccurredAt: morning}

	assert.True(t, txn.OccurredOn(evening))
	assert.False(t, txn.OccurredOn(morning.AddDate(0, 0, 1)))

	assert.True(t, txn.OccurredIn(time.June, 2024))
	assert.False(t, txn.OccurredIn(time.June, 2023))
	assert.False(t, txn.OccurredIn(time.July, 2024))
}

func TestBudgetValidate(t *testing.T) {
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	valid := Budget{ID: "b1", Amount: 2000, Period: PeriodMonthly, StartDate: start, EndDate: start.AddDate(0, 1, 0)}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.Period = "fortnightly"
	assert.Error(t, bad.Validate())

	negative := valid
	negative.Amount = -5
	assert.Error(t, negative.Validate())
}

func TestFirstMonthly(t *testing.T) {
	assert.Nil(t, FirstMonthly(nil))
	assert.Nil(t, FirstMonthly([]Budget{{ID: "b1", Period: PeriodWeekly}}))

	budgets := []Budget{
		{ID: "b1", Period: PeriodDaily},
		{ID: "b2", Period: PeriodMonthly, Amount: 2000},
		{ID: "b3", Period: PeriodMonthly, Amount: 5000},
	}
	monthly := FirstMonthly(budgets)
	require.NotNil(t, monthly)
	assert.Equal(t, "b2", monthly.ID)
}

func TestCategoryKind(t *testing.T) {
	assert.Equal(t, CategoryKindIncome, CategorySalary.Kind())
	assert.Equal(t, CategoryKindExpense, CategoryFood.Kind())
	// Unknown categories group with expenses for display.
	assert.Equal(t, CategoryKindExpense, Category("mystery").Kind())
}

func TestCategoryIsValid(t *testing.T) {
	for _, category := range AllCategories() {
		assert.True(t, category.IsValid(), category)
	}
	assert.False(t, Category("mystery").IsValid())
	assert.False(t, Category("").IsValid())

	assert.Len(t, AllCategories(), len(IncomeCategories())+len(ExpenseCategories()))
}

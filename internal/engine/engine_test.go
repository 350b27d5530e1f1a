package engine

import (
	"testing"
	"time"

	"github.com/durgas/budgetai/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// June 2024 has 30 days, which keeps the daily-limit arithmetic exact.
var june15 = time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

func expense(id string, amount float64, category model.Category, occurred time.Time) model.Transaction {
	return model.Transaction{
		ID:         id,
		Amount:     amount,
		Kind:       model.KindExpense,
		Category:   category,
		OccurredAt: occurred,
	}
}

func income(id string, amount float64, category model.Category, occurred time.Time) model.Transaction {
	return model.Transaction{
		ID:         id,
		Amount:     amount,
		Kind:       model.KindIncome,
		Category:   category,
		OccurredAt: occurred,
	}
}

func monthlyBudget(id string, amount float64) model.Budget {
	return model.Budget{
		ID:        id,
		Amount:    amount,
		Period:    model.PeriodMonthly,
		StartDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestDailyLimit(t *testing.T) {
	tests := []struct {
		name          string
		transactions  []model.Transaction
		budgets       []model.Budget
		wantNil       bool
		wantAmount    float64
		wantRemaining float64
	}{
		{
			name:    "no monthly budget yields no limit",
			budgets: []model.Budget{{ID: "b1", Amount: 500, Period: model.PeriodWeekly}},
			wantNil: true,
		},
		{
			name:          "3000 over a 30 day month is 100 per day",
			transactions:  []model.Transaction{expense("t1", 40, model.CategoryFood, june15)},
			budgets:       []model.Budget{monthlyBudget("b1", 3000)},
			wantAmount:    100,
			wantRemaining: 60,
		},
		{
			name: "overspending today goes negative",
			transactions: []model.Transaction{
				expense("t1", 50, model.CategoryFood, june15),
				expense("t2", 30, model.CategoryTransportation, june15),
			},
			budgets:       []model.Budget{monthlyBudget("b1", 2000)},
			wantAmount:    66.67,
			wantRemaining: -13.33,
		},
		{
			name: "expenses on other days do not count",
			transactions: []model.Transaction{
				expense("t1", 40, model.CategoryFood, june15.AddDate(0, 0, -1)),
				income("t2", 500, model.CategorySalary, june15),
			},
			budgets:       []model.Budget{monthlyBudget("b1", 3000)},
			wantAmount:    100,
			wantRemaining: 100,
		},
		{
			name: "first monthly budget wins over later ones",
			budgets: []model.Budget{
				{ID: "b1", Amount: 700, Period: model.PeriodDaily},
				monthlyBudget("b2", 3000),
				monthlyBudget("b3", 6000),
			},
			wantAmount:    100,
			wantRemaining: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit := DailyLimit(tt.transactions, tt.budgets, june15)
			if tt.wantNil {
				assert.Nil(t, limit)
				return
			}
			require.NotNil(t, limit)
			assert.InDelta(t, tt.wantAmount, limit.Amount, 0.005)
			assert.InDelta(t, tt.wantRemaining, limit.Remaining, 0.005)
			assert.Equal(t, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), limit.Date)
		})
	}
}

func TestMonthlySummary(t *testing.T) {
	t.Run("absent monthly budget yields no summary", func(t *testing.T) {
		summary := MonthlySummary(nil, []model.Budget{{ID: "b1", Amount: 100, Period: model.PeriodYearly}}, june15)
		assert.Nil(t, summary)
	})

	t.Run("aggregates the current month only", func(t *testing.T) {
		transactions := []model.Transaction{
			expense("t1", 300, model.CategoryFood, june15),
			expense("t2", 150, model.CategoryFood, june15.AddDate(0, 0, -10)),
			expense("t3", 200, model.CategoryHousing, june15),
			expense("t4", 999, model.CategoryFood, june15.AddDate(0, -1, 0)), // May
			income("t5", 3000, model.CategorySalary, june15),                 // income never spends
		}
		budgets := []model.Budget{monthlyBudget("b1", 2000)}

		summary := MonthlySummary(transactions, budgets, june15)
		require.NotNil(t, summary)

		assert.InDelta(t, 2000, summary.TotalBudget, 0.001)
		assert.InDelta(t, 650, summary.TotalSpent, 0.001)
		assert.InDelta(t, summary.TotalBudget-summary.TotalSpent, summary.Remaining, 0.001)

		require.Len(t, summary.Categories, 2)
		food := summary.Categories[model.CategoryFood]
		assert.InDelta(t, 400, food.Budget, 0.001) // flat 20% of 2000
		assert.InDelta(t, 450, food.Spent, 0.001)
		assert.InDelta(t, food.Budget-food.Spent, food.Remaining, 0.001)

		housing := summary.Categories[model.CategoryHousing]
		assert.InDelta(t, 400, housing.Budget, 0.001)
		assert.InDelta(t, 200, housing.Spent, 0.001)
		assert.InDelta(t, 200, housing.Remaining, 0.001)
	})

	t.Run("no activity means no category entries", func(t *testing.T) {
		summary := MonthlySummary(nil, []model.Budget{monthlyBudget("b1", 2000)}, june15)
		require.NotNil(t, summary)
		assert.Empty(t, summary.Categories)
		assert.InDelta(t, 2000, summary.Remaining, 0.001)
	})
}

func TestSpendingTrends(t *testing.T) {
	t.Run("always six entries oldest first", func(t *testing.T) {
		trends := SpendingTrends(nil, june15)
		require.Len(t, trends, 6)
		assert.Equal(t, "Jan 2024", trends[0].Period)
		assert.Equal(t, "Jun 2024", trends[5].Period)
		for _, trend := range trends {
			assert.Zero(t, trend.Amount)
		}
	})

	t.Run("spans a year boundary", func(t *testing.T) {
		feb := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
		trends := SpendingTrends(nil, feb)
		require.Len(t, trends, 6)
		want := []string{"Sep 2023", "Oct 2023", "Nov 2023", "Dec 2023", "Jan 2024", "Feb 2024"}
		for i, period := range want {
			assert.Equal(t, period, trends[i].Period)
		}
	})

	t.Run("buckets expenses by calendar month and skips income", func(t *testing.T) {
		transactions := []model.Transaction{
			expense("t1", 100, model.CategoryFood, june15),
			expense("t2", 25, model.CategoryFood, june15.AddDate(0, -1, 0)),
			expense("t3", 75, model.CategoryTravel, june15.AddDate(0, -1, 0)),
			expense("t4", 500, model.CategoryFood, june15.AddDate(0, -6, 0)), // outside window
			income("t5", 3000, model.CategorySalary, june15),
		}

		trends := SpendingTrends(transactions, june15)
		require.Len(t, trends, 6)
		assert.InDelta(t, 0, trends[0].Amount, 0.001) // Jan
		assert.InDelta(t, 100, trends[4].Amount, 0.001)
		assert.Equal(t, "May 2024", trends[4].Period)
		assert.InDelta(t, 100, trends[5].Amount, 0.001)
		assert.Equal(t, "Jun 2024", trends[5].Period)
	})
}

func TestBreakdown(t *testing.T) {
	t.Run("amounts sum to the month total and percentages to 100", func(t *testing.T) {
		transactions := []model.Transaction{
			expense("t1", 50, model.CategoryFood, june15),
			expense("t2", 30, model.CategoryTransportation, june15),
			expense("t3", 20, model.CategoryFood, june15.AddDate(0, 0, -3)),
			income("t4", 3000, model.CategorySalary, june15),
			expense("t5", 999, model.CategoryFood, june15.AddDate(0, -1, 0)), // prior month
		}

		breakdown := Breakdown(transactions, june15)
		require.Len(t, breakdown, 2)

		// First-encountered order.
		assert.Equal(t, model.CategoryFood, breakdown[0].Category)
		assert.Equal(t, model.CategoryTransportation, breakdown[1].Category)

		var amountSum, percentSum float64
		for _, entry := range breakdown {
			amountSum += entry.Amount
			percentSum += entry.Percentage
		}
		assert.InDelta(t, 100, amountSum, 0.001)
		assert.InDelta(t, 100, percentSum, 0.001)
		assert.InDelta(t, 70, breakdown[0].Amount, 0.001)
		assert.InDelta(t, 70, breakdown[0].Percentage, 0.001)
	})

	t.Run("zero total yields zero percentages, not NaN", func(t *testing.T) {
		transactions := []model.Transaction{
			expense("t1", 0, model.CategoryFood, june15),
		}
		breakdown := Breakdown(transactions, june15)
		require.Len(t, breakdown, 1)
		assert.Zero(t, breakdown[0].Amount)
		assert.Zero(t, breakdown[0].Percentage)
	})

	t.Run("no expenses yields an empty breakdown", func(t *testing.T) {
		breakdown := Breakdown([]model.Transaction{income("t1", 100, model.CategorySalary, june15)}, june15)
		assert.Empty(t, breakdown)
	})
}

func TestRecompute(t *testing.T) {
	transactions := []model.Transaction{
		income("t1", 3000, model.CategorySalary, june15),
		expense("t2", 50, model.CategoryFood, june15),
		expense("t3", 30, model.CategoryTransportation, june15),
	}
	budgets := []model.Budget{monthlyBudget("b1", 2000)}

	snapshot := Recompute(transactions, budgets, june15)
	require.NotNil(t, snapshot.DailyLimit)
	require.NotNil(t, snapshot.MonthlySummary)
	assert.Len(t, snapshot.Trends, 6)
	assert.Len(t, snapshot.Breakdown, 2)

	t.Run("idempotent for unchanged inputs", func(t *testing.T) {
		again := Recompute(transactions, budgets, june15)
		assert.Equal(t, snapshot, again)
	})

	t.Run("derived views without budgets", func(t *testing.T) {
		partial := Recompute(transactions, nil, june15)
		assert.Nil(t, partial.DailyLimit)
		assert.Nil(t, partial.MonthlySummary)
		assert.Len(t, partial.Trends, 6)
		assert.Len(t, partial.Breakdown, 2)
	})
}

func TestRemainingBudget(t *testing.T) {
	transactions := []model.Transaction{
		expense("t1", 80, model.CategoryFood, june15),
		expense("t2", 20, model.CategoryFood, june15.AddDate(0, -1, 0)),
	}

	assert.Zero(t, RemainingBudget(transactions, nil, june15))
	assert.InDelta(t, 1920, RemainingBudget(transactions, []model.Budget{monthlyBudget("b1", 2000)}, june15), 0.001)
}

func TestTransactionFilters(t *testing.T) {
	transactions := []model.Transaction{
		expense("t1", 10, model.CategoryFood, june15.AddDate(0, 0, -2)),
		expense("t2", 20, model.CategoryTravel, june15.AddDate(0, 0, -1)),
		expense("t3", 30, model.CategoryFood, june15),
	}

	byCategory := TransactionsByCategory(transactions, model.CategoryFood)
	require.Len(t, byCategory, 2)
	assert.Equal(t, "t1", byCategory[0].ID)
	assert.Equal(t, "t3", byCategory[1].ID)

	between := TransactionsBetween(transactions, june15.AddDate(0, 0, -1), june15)
	require.Len(t, between, 2)
	assert.Equal(t, "t2", between[0].ID)
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), 30},
		{time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC), 31},
		{time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC), 29}, // leap year
		{time.Date(2023, time.February, 5, 0, 0, 0, 0, time.UTC), 28},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, daysInMonth(tt.date), tt.date.Format("Jan 2006"))
	}
}

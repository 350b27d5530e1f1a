package model

import "time"

// DailySpendingLimit is the per-day allowance derived from the monthly
// budget, together with what is left of it for today. Remaining may be
// negative when today's spending already exceeds the allowance.
type DailySpendingLimit struct {
	Date      time.Time
	Amount    float64
	Remaining float64
}

// CategoryBudget is the per-category slice of a monthly budget summary.
type CategoryBudget struct {
	Budget    float64
	Spent     float64
	Remaining float64
}

// MonthlyBudgetSummary aggregates the current calendar month against the
// monthly budget. Categories holds an entry for every category that had at
// least one expense this month.
type MonthlyBudgetSummary struct {
	Categories  map[Category]CategoryBudget
	TotalBudget float64
	TotalSpent  float64
	Remaining   float64
}

// SpendingTrend is one month of total expense activity, labeled like
// "Jan 2024".
type SpendingTrend struct {
	Period string
	Amount float64
}

// CategoryBreakdown is one category's share of the current month's expenses.
type CategoryBreakdown struct {
	Category   Category
	Amount     float64
	Percentage float64
}

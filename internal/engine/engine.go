// Package engine derives budget views from the transaction and budget
// collections. Every calculator is a pure function of (transactions,
// budgets, now): nothing is cached, nothing is updated incrementally, and
// calling a calculator twice with the same inputs yields identical output.
// The owning layer calls Recompute after each mutation of the collections.
package engine

import (
	"time"

	"github.com/durgas/budgetai/internal/model"
)

// trendMonths is how many trailing calendar months the spending trend spans.
const trendMonths = 6

// categoryAllocation is the flat fraction of the monthly budget assigned to
// every active category in the monthly summary. A deliberate simplification
// carried over from the product: allocation does not depend on how many
// categories are active.
const categoryAllocation = 0.2

// Snapshot bundles the four derived views. Fields are nil or empty when the
// corresponding view has no input to derive from.
type Snapshot struct {
	DailyLimit     *model.DailySpendingLimit
	MonthlySummary *model.MonthlyBudgetSummary
	Trends         []model.SpendingTrend
	Breakdown      []model.CategoryBreakdown
}

// Recompute rebuilds every derived view from scratch.
func Recompute(transactions []model.Transaction, budgets []model.Budget, now time.Time) Snapshot {
	return Snapshot{
		DailyLimit:     DailyLimit(transactions, budgets, now),
		MonthlySummary: MonthlySummary(transactions, budgets, now),
		Trends:         SpendingTrends(transactions, now),
		Breakdown:      Breakdown(transactions, now),
	}
}

// DailyLimit derives today's spending allowance from the first monthly
// budget. Returns nil when no monthly budget exists. Remaining goes
// negative once today's expenses exceed the allowance; that is a valid,
// displayable state.
func DailyLimit(transactions []model.Transaction, budgets []model.Budget, now time.Time) *model.DailySpendingLimit {
	monthly := model.FirstMonthly(budgets)
	if monthly == nil {
		return nil
	}

	days := daysInMonth(now)
	dailyAmount := monthly.Amount / float64(days)

	var todayExpense float64
	for i := range transactions {
		t := &transactions[i]
		if t.IsExpense() && t.OccurredOn(now) {
			todayExpense += t.Amount
		}
	}

	return &model.DailySpendingLimit{
		Date:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Amount:    dailyAmount,
		Remaining: dailyAmount - todayExpense,
	}
}

// MonthlySummary aggregates the current calendar month against the first
// monthly budget. Returns nil when no monthly budget exists. Income
// transactions never contribute to spent amounts. Each active category is
// allocated a flat 20% of the monthly budget.
func MonthlySummary(transactions []model.Transaction, budgets []model.Budget, now time.Time) *model.MonthlyBudgetSummary {
	monthly := model.FirstMonthly(budgets)
	if monthly == nil {
		return nil
	}

	categories := make(map[model.Category]model.CategoryBudget)
	var totalSpent float64
	for i := range transactions {
		t := &transactions[i]
		if !t.IsExpense() || !t.OccurredIn(now.Month(), now.Year()) {
			continue
		}
		totalSpent += t.Amount
		entry := categories[t.Category]
		entry.Spent += t.Amount
		categories[t.Category] = entry
	}

	for category, entry := range categories {
		entry.Budget = monthly.Amount * categoryAllocation
		entry.Remaining = entry.Budget - entry.Spent
		categories[category] = entry
	}

	return &model.MonthlyBudgetSummary{
		TotalBudget: monthly.Amount,
		TotalSpent:  totalSpent,
		Remaining:   monthly.Amount - totalSpent,
		Categories:  categories,
	}
}

// SpendingTrends returns expense totals for the trailing six calendar
// months, oldest first, ending with the current month. The series always
// has exactly six entries, even with no transactions. Month arithmetic
// rolls over year boundaries.
func SpendingTrends(transactions []model.Transaction, now time.Time) []model.SpendingTrend {
	trends := make([]model.SpendingTrend, 0, trendMonths)

	for i := trendMonths - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())

		var amount float64
		for j := range transactions {
			t := &transactions[j]
			if t.IsExpense() && t.OccurredIn(month.Month(), month.Year()) {
				amount += t.Amount
			}
		}

		trends = append(trends, model.SpendingTrend{
			Period: month.Format("Jan 2006"),
			Amount: amount,
		})
	}

	return trends
}

// Breakdown groups the current month's expenses by category and computes
// each category's share of the total. Categories appear in the order they
// are first encountered; categories with no activity are omitted. When the
// month's total is zero every percentage is zero rather than undefined.
func Breakdown(transactions []model.Transaction, now time.Time) []model.CategoryBreakdown {
	var (
		order []model.Category
		sums  = make(map[model.Category]float64)
		total float64
	)

	for i := range transactions {
		t := &transactions[i]
		if !t.IsExpense() || !t.OccurredIn(now.Month(), now.Year()) {
			continue
		}
		if _, seen := sums[t.Category]; !seen {
			order = append(order, t.Category)
		}
		sums[t.Category] += t.Amount
		total += t.Amount
	}

	breakdown := make([]model.CategoryBreakdown, 0, len(order))
	for _, category := range order {
		amount := sums[category]
		percentage := 0.0
		if total > 0 {
			percentage = amount / total * 100
		}
		breakdown = append(breakdown, model.CategoryBreakdown{
			Category:   category,
			Amount:     amount,
			Percentage: percentage,
		})
	}

	return breakdown
}

// RemainingBudget returns how much of the first monthly budget is left for
// the current calendar month, or 0 when no monthly budget exists.
func RemainingBudget(transactions []model.Transaction, budgets []model.Budget, now time.Time) float64 {
	monthly := model.FirstMonthly(budgets)
	if monthly == nil {
		return 0
	}

	var spent float64
	for i := range transactions {
		t := &transactions[i]
		if t.IsExpense() && t.OccurredIn(now.Month(), now.Year()) {
			spent += t.Amount
		}
	}

	return monthly.Amount - spent
}

// TransactionsByCategory filters transactions to a single category,
// preserving order.
func TransactionsByCategory(transactions []model.Transaction, category model.Category) []model.Transaction {
	var matched []model.Transaction
	for i := range transactions {
		if transactions[i].Category == category {
			matched = append(matched, transactions[i])
		}
	}
	return matched
}

// TransactionsBetween filters transactions to those occurring in the
// inclusive [start, end] range, preserving order.
func TransactionsBetween(transactions []model.Transaction, start, end time.Time) []model.Transaction {
	var matched []model.Transaction
	for i := range transactions {
		occurred := transactions[i].OccurredAt
		if !occurred.Before(start) && !occurred.After(end) {
			matched = append(matched, transactions[i])
		}
	}
	return matched
}

// daysInMonth returns the number of days in the calendar month containing t.
func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

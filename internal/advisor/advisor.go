// Package advisor generates budget recommendations from transaction
// history. The rules are deterministic heuristics, not an inference
// engine: callers get the same suggestions for the same inputs.
package advisor

import (
	"fmt"
	"math"
	"time"

	"github.com/durgas/budgetai/internal/model"
	"github.com/google/uuid"
)

const (
	// savingsRate is the fraction of income (and of the heaviest
	// category's spending) the advisor suggests putting aside.
	savingsRate = 0.2

	// dailyDivisor approximates a month as 30 days when deriving the
	// daily spending cap. Deliberately not the actual days in the
	// current month.
	dailyDivisor = 30
)

// Recommendations produces the rule-based suggestion pipeline:
// a category-reduction suggestion for the heaviest expense category (when
// any expenses exist), a savings allocation from income, and a daily
// spending cap. Output order is fixed.
func Recommendations(transactions []model.Transaction, monthlyIncome float64, now time.Time) []model.Recommendation {
	var recommendations []model.Recommendation

	if category, amount, ok := highestExpenseCategory(transactions); ok {
		reduction := math.Round(amount * savingsRate)
		recommendations = append(recommendations, model.Recommendation{
			ID:              uuid.NewString(),
			Type:            model.RecommendationSaving,
			Message:         fmt.Sprintf("You could save $%.0f by reducing your %s expenses by 20%%.", reduction, category),
			SuggestedAmount: reduction,
			Category:        category,
			CreatedAt:       now,
		})
	}

	suggestedSavings := math.Round(monthlyIncome * savingsRate)
	recommendations = append(recommendations, model.Recommendation{
		ID:              uuid.NewString(),
		Type:            model.RecommendationBudget,
		Message:         fmt.Sprintf("Based on your income of $%g, consider saving $%.0f (20%%) each month.", monthlyIncome, suggestedSavings),
		SuggestedAmount: suggestedSavings,
		Category:        model.CategorySavings,
		CreatedAt:       now,
	})

	dailyLimit := math.Round((monthlyIncome - suggestedSavings) / dailyDivisor)
	recommendations = append(recommendations, model.Recommendation{
		ID:              uuid.NewString(),
		Type:            model.RecommendationSpending,
		Message:         fmt.Sprintf("To stay within your budget, try to limit daily spending to $%.0f.", dailyLimit),
		SuggestedAmount: dailyLimit,
		CreatedAt:       now,
	})

	return recommendations
}

// highestExpenseCategory finds the expense category with the largest
// cumulative amount. Ties go to the category encountered first, so the
// result is stable for a given transaction order.
func highestExpenseCategory(transactions []model.Transaction) (model.Category, float64, bool) {
	var (
		order []model.Category
		sums  = make(map[model.Category]float64)
	)

	for i := range transactions {
		t := &transactions[i]
		if !t.IsExpense() {
			continue
		}
		if _, seen := sums[t.Category]; !seen {
			order = append(order, t.Category)
		}
		sums[t.Category] += t.Amount
	}

	var (
		highest       model.Category
		highestAmount float64
		found         bool
	)
	for _, category := range order {
		if !found || sums[category] > highestAmount {
			highest = category
			highestAmount = sums[category]
			found = true
		}
	}

	return highest, highestAmount, found
}

// Insights returns general observations about spending habits. The set is
// fixed; a future revision could derive these from the transaction history.
func Insights(_ []model.Transaction) []string {
	return []string{
		"Your spending on food has increased by 15% compared to last month.",
		"You've been consistent with your savings goals. Great job!",
		"Consider setting up automatic transfers to your savings account.",
		"Your transportation costs are lower than average for your income level.",
	}
}

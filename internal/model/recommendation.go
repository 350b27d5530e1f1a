package model

import "time"

// RecommendationType classifies a generated recommendation.
type RecommendationType string

const (
	// RecommendationSaving suggests reducing spending in a category.
	RecommendationSaving RecommendationType = "saving"
	// RecommendationSpending suggests a daily spending cap.
	RecommendationSpending RecommendationType = "spending"
	// RecommendationBudget suggests a budget or savings allocation.
	RecommendationBudget RecommendationType = "budget"
)

// Recommendation is a preformatted suggestion produced by the advisor.
// Consumers treat it as read-only.
type Recommendation struct {
	CreatedAt       time.Time
	ID              string
	Type            RecommendationType
	Message         string
	Category        Category // empty when the suggestion is not category-specific
	SuggestedAmount float64  // zero when the suggestion carries no amount
}

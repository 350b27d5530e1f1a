package sms

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/durgas/budgetai/internal/model"
)

// CategoryPattern maps message text to a spending category.
type CategoryPattern struct {
	Name     string
	Category model.Category
	Regex    string
	Priority int // Higher priority patterns are checked first
}

type compiledCategoryPattern struct {
	compiledRegex *regexp.Regexp
	CategoryPattern
}

// CategoryDetector classifies message bodies into categories using a
// priority-ordered pattern list.
type CategoryDetector struct {
	patterns []compiledCategoryPattern
}

// NewCategoryDetector compiles the given patterns. Patterns are matched
// case-insensitively in descending priority order.
func NewCategoryDetector(patterns []CategoryPattern) (*CategoryDetector, error) {
	compiled := make([]compiledCategoryPattern, 0, len(patterns))

	for _, p := range patterns {
		regexStr := p.Regex
		if !strings.HasPrefix(regexStr, "(?i)") {
			regexStr = "(?i)" + regexStr
		}

		regex, err := regexp.Compile(regexStr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %s: %w", p.Name, err)
		}

		compiled = append(compiled, compiledCategoryPattern{
			CategoryPattern: p,
			compiledRegex:   regex,
		})
	}

	sort.SliceStable(compiled, func(i, j int) bool {
		return compiled[i].Priority > compiled[j].Priority
	})

	return &CategoryDetector{patterns: compiled}, nil
}

// Detect returns the category of the first matching pattern, or false when
// nothing matches.
func (d *CategoryDetector) Detect(body string) (model.Category, bool) {
	for _, pattern := range d.patterns {
		if pattern.compiledRegex.MatchString(body) {
			return pattern.Category, true
		}
	}
	return "", false
}

// DefaultCategoryPatterns returns the built-in pattern set for common bank
// and merchant messages.
func DefaultCategoryPatterns() []CategoryPattern {
	return []CategoryPattern{
		// Specific merchants beat generic keywords.
		{
			Name:     "Food delivery",
			Category: model.CategoryFood,
			Regex:    `\b(SWIGGY|ZOMATO|UBEREATS|DOORDASH)\b`,
			Priority: 90,
		},
		{
			Name:     "Groceries and dining",
			Category: model.CategoryFood,
			Regex:    `\b(GROCERY|SUPERMARKET|RESTAURANT|CAFE|DINER|FOOD)\b`,
			Priority: 60,
		},
		{
			Name:     "Ride hailing",
			Category: model.CategoryTransportation,
			Regex:    `\b(UBER|OLA|LYFT|TAXI)\b`,
			Priority: 90,
		},
		{
			Name:     "Fuel and transit",
			Category: model.CategoryTransportation,
			Regex:    `\b(FUEL|PETROL|GAS\s*STATION|METRO|TRANSIT|PARKING)\b`,
			Priority: 60,
		},
		{
			Name:     "Online shopping",
			Category: model.CategoryShopping,
			Regex:    `\b(AMAZON|FLIPKART|MYNTRA|EBAY)\b`,
			Priority: 90,
		},
		{
			Name:     "Retail",
			Category: model.CategoryShopping,
			Regex:    `\b(STORE|MALL|RETAIL|OUTLET)\b`,
			Priority: 50,
		},
		{
			Name:     "Streaming and entertainment",
			Category: model.CategoryEntertainment,
			Regex:    `\b(NETFLIX|SPOTIFY|PRIME\s*VIDEO|CINEMA|MOVIE|THEATRE)\b`,
			Priority: 80,
		},
		{
			Name:     "Utility bills",
			Category: model.CategoryUtilities,
			Regex:    `\b(ELECTRICITY|WATER\s*BILL|BROADBAND|RECHARGE|MOBILE\s*BILL|INTERNET)\b`,
			Priority: 70,
		},
		{
			Name:     "Rent",
			Category: model.CategoryHousing,
			Regex:    `\b(RENT|LANDLORD|LEASE)\b`,
			Priority: 70,
		},
		{
			Name:     "Healthcare",
			Category: model.CategoryHealthcare,
			Regex:    `\b(PHARMACY|HOSPITAL|CLINIC|MEDICAL)\b`,
			Priority: 70,
		},
	}
}

func mustCategoryDetector(patterns []CategoryPattern) *CategoryDetector {
	detector, err := NewCategoryDetector(patterns)
	if err != nil {
		panic(err)
	}
	return detector
}

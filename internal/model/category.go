package model

// CategoryKind indicates whether a category is meant for income or expense
// transactions.
type CategoryKind string

const (
	// CategoryKindIncome represents categories for income transactions.
	CategoryKindIncome CategoryKind = "income"
	// CategoryKindExpense represents categories for expense transactions.
	CategoryKindExpense CategoryKind = "expense"
)

// Category tags a transaction's economic purpose.
type Category string

// Income categories.
const (
	CategorySalary      Category = "salary"
	CategoryFreelance   Category = "freelance"
	CategoryInvestment  Category = "investment"
	CategoryGift        Category = "gift"
	CategoryOtherIncome Category = "other_income"
)

// Expense categories.
const (
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryHousing        Category = "housing"
	CategoryUtilities      Category = "utilities"
	CategoryEntertainment  Category = "entertainment"
	CategoryHealthcare     Category = "healthcare"
	CategoryEducation      Category = "education"
	CategoryShopping       Category = "shopping"
	CategoryPersonal       Category = "personal"
	CategoryTravel         Category = "travel"
	CategoryDebt           Category = "debt"
	CategorySavings        Category = "savings"
	CategoryOtherExpense   Category = "other_expense"
)

// IncomeCategories lists every category in the income group, in display order.
func IncomeCategories() []Category {
	return []Category{
		CategorySalary,
		CategoryFreelance,
		CategoryInvestment,
		CategoryGift,
		CategoryOtherIncome,
	}
}

// ExpenseCategories lists every category in the expense group, in display order.
func ExpenseCategories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransportation,
		CategoryHousing,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryHealthcare,
		CategoryEducation,
		CategoryShopping,
		CategoryPersonal,
		CategoryTravel,
		CategoryDebt,
		CategorySavings,
		CategoryOtherExpense,
	}
}

// AllCategories lists every known category, income group first.
func AllCategories() []Category {
	return append(IncomeCategories(), ExpenseCategories()...)
}

// Kind reports which group a category belongs to. Unknown categories are
// grouped with expenses, matching how uncategorized spending is displayed.
func (c Category) Kind() CategoryKind {
	switch c {
	case CategorySalary, CategoryFreelance, CategoryInvestment, CategoryGift, CategoryOtherIncome:
		return CategoryKindIncome
	default:
		return CategoryKindExpense
	}
}

// IsValid reports whether the category is a member of the closed enumeration.
func (c Category) IsValid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

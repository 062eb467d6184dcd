package models

// Transaction categories form a fixed, closed set. Users may reassign a
// transaction to any of these after auto-categorization.
const (
	CategorySalary         = "Salary"
	CategoryGroceries      = "Groceries"
	CategoryRent           = "Rent"
	CategoryUtilities      = "Utilities"
	CategoryTransportation = "Transportation"
	CategoryEntertainment  = "Entertainment"
	CategoryDining         = "Dining"
	CategoryShopping       = "Shopping"
	CategoryHealthcare     = "Healthcare"
	CategoryEducation      = "Education"
	CategoryTravel         = "Travel"
	CategoryOther          = "Other"
)

// Transaction types derived solely from the amount sign.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// AllCategories lists every valid category in display order.
var AllCategories = []string{
	CategorySalary,
	CategoryGroceries,
	CategoryRent,
	CategoryUtilities,
	CategoryTransportation,
	CategoryEntertainment,
	CategoryDining,
	CategoryShopping,
	CategoryHealthcare,
	CategoryEducation,
	CategoryTravel,
	CategoryOther,
}

// IsValidCategory reports whether name belongs to the fixed category set.
func IsValidCategory(name string) bool {
	for _, c := range AllCategories {
		if c == name {
			return true
		}
	}
	return false
}

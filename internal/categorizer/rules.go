package categorizer

import (
	"strings"

	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/models"
)

// Rule maps a set of description keywords to a category. Rules are evaluated
// in slice order and the first match wins, so priority stays auditable as
// data rather than nested conditionals.
type Rule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// Matches reports whether any keyword appears in the description.
// Matching is case-insensitive substring containment.
func (r Rule) Matches(description string) bool {
	desc := strings.ToLower(description)
	for _, kw := range r.Keywords {
		if strings.Contains(desc, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// incomeRules classify positive-amount transactions.
var incomeRules = []Rule{
	{Category: models.CategorySalary, Keywords: []string{"payroll", "salary", "deposit"}},
}

// expenseRules classify everything else. Order matters: "gas" hits the
// Utilities rule before the Transportation "gas station" rule ever runs, so a
// bare "gas" resolves to Utilities. That precedence is intentional and must
// not be reordered.
var expenseRules = []Rule{
	{Category: models.CategoryGroceries, Keywords: []string{"grocery", "supermarket", "food"}},
	{Category: models.CategoryRent, Keywords: []string{"rent", "mortgage"}},
	{Category: models.CategoryUtilities, Keywords: []string{"utility", "electric", "gas", "water"}},
	{Category: models.CategoryTransportation, Keywords: []string{"gas station", "fuel", "transport"}},
	{Category: models.CategoryDining, Keywords: []string{"restaurant", "dining", "cafe"}},
	{Category: models.CategoryEntertainment, Keywords: []string{"movie", "theater", "entertainment"}},
	{Category: models.CategoryShopping, Keywords: []string{"shop", "store", "mall"}},
	{Category: models.CategoryHealthcare, Keywords: []string{"hospital", "doctor", "medical"}},
	{Category: models.CategoryEducation, Keywords: []string{"school", "university", "education"}},
	{Category: models.CategoryTravel, Keywords: []string{"hotel", "flight", "travel"}},
}

// firstMatch returns the category of the first matching rule, or "" when none
// matches.
func firstMatch(rules []Rule, description string) string {
	for _, r := range rules {
		if r.Matches(description) {
			return r.Category
		}
	}
	return ""
}

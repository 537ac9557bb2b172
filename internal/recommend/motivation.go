package recommend

import (
	"fmt"

	"github.com/Dhanushcr18/Edu-wealth/internal/models"
	"github.com/shopspring/decimal"
)

// BrowseMessage builds the motivational line for the browsing feed.
// Affordability is counted over the raw candidate pool, with free courses
// always counting as affordable.
func BrowseMessage(budget *decimal.Decimal, currency string, candidates []models.Course) string {
	if budget == nil {
		return "Skip one burger this month — invest in a course that pays back with skills."
	}

	affordable := 0
	for _, course := range candidates {
		if course.Price == nil || course.Price.LessThanOrEqual(*budget) {
			affordable++
		}
	}

	if affordable > 0 {
		return fmt.Sprintf("Your budget: %s %s — %d courses you can take now!",
			currency, budget.StringFixed(2), affordable)
	}
	return "Almost there! Consider these low-cost alternatives or save a bit more for premium courses."
}

// ExpenseMessage builds the fixed savings nudge attached to post-expense
// recommendations. It names the amount as learnable-equivalent value and
// deliberately ignores affordability.
func ExpenseMessage(amount decimal.Decimal, currency string) string {
	return fmt.Sprintf("You could learn something valuable for the same %s %s!",
		currency, amount.StringFixed(2))
}

package classifier

import "strings"

// Rationale bucket labels attached to classification results.
const (
	BucketEssential        = "Essential"
	BucketNonEssential     = "Non-Essential"
	BucketNonEssentialFood = "Non-Essential Food"
	BucketGeneral          = "General"
)

// Result is the outcome of classifying a single expense.
type Result struct {
	IsEssential bool
	ShowCourses bool
	Category    string
	Message     string
}

// Classify decides whether an expense is essential or non-essential.
// It is pure and total: every input produces a result, first matching rule
// wins. Keyword matching is plain substring containment with no word
// boundaries, so a keyword inside a larger word still matches ("grapes"
// matches "bug grapes pray"). That looseness is inherited behavior the rest
// of the product depends on; see DESIGN.md before tightening it.
func Classify(category, itemName, description string) Result {
	combined := strings.ToLower(itemName) + " " + strings.ToLower(description)

	for _, keyword := range essentialKeywords {
		if strings.Contains(combined, keyword) {
			return Result{
				IsEssential: true,
				ShowCourses: false,
				Category:    BucketEssential,
				Message:     "✅ Great! This is an essential/beneficial expense. Keep investing in what matters!",
			}
		}
	}

	for _, keyword := range wastefulKeywords {
		if strings.Contains(combined, keyword) {
			return Result{
				IsEssential: false,
				ShowCourses: true,
				Category:    BucketNonEssential,
				Message:     "💡 This could be an opportunity to invest in yourself! Instead of temporary satisfaction, consider learning something valuable.",
			}
		}
	}

	// Food with no essential keyword defaults to non-essential. This keeps
	// random items like "bug spray" under Food & Drinks from being marked
	// healthy.
	if category == CategoryFoodAndDrinks {
		return Result{
			IsEssential: false,
			ShowCourses: true,
			Category:    BucketNonEssentialFood,
			Message:     "💡 Consider if this is truly necessary. You could invest in a skill that benefits you long-term!",
		}
	}

	if category == CategoryEntertainment || category == CategoryShopping {
		return Result{
			IsEssential: false,
			ShowCourses: true,
			Category:    BucketNonEssential,
			Message:     "🎯 Entertainment is good, but growth is better! Consider investing this amount in your future.",
		}
	}

	seemsEssential := category == CategoryTransport ||
		strings.Contains(combined, "work") ||
		strings.Contains(combined, "office") ||
		strings.Contains(combined, "essential")
	if seemsEssential {
		return Result{
			IsEssential: true,
			ShowCourses: false,
			Category:    BucketEssential,
			Message:     "✅ This seems like a necessary expense. Good financial management!",
		}
	}

	// Unclear cases lean towards essential.
	return Result{
		IsEssential: true,
		ShowCourses: false,
		Category:    BucketGeneral,
		Message:     "✅ Expense tracked successfully!",
	}
}

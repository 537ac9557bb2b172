package report

import (
	"fmt"
	"sort"

	"github.com/Dhanushcr18/Edu-wealth/internal/models"
	"github.com/go-analyze/charts"
	"github.com/shopspring/decimal"
)

// SpendingChart renders a pie chart of the category breakdown as PNG bytes.
func SpendingChart(expenses []models.Expense, period string) ([]byte, error) {
	if len(expenses) == 0 {
		return nil, fmt.Errorf("no expenses to chart")
	}

	categoryTotals := aggregateByCategory(expenses)

	// Stable slice order so repeated renders of the same data match.
	categoryNames := make([]string, 0, len(categoryTotals))
	for name := range categoryTotals {
		categoryNames = append(categoryNames, name)
	}
	sort.Strings(categoryNames)

	values := make([]float64, len(categoryNames))
	for i, name := range categoryNames {
		values[i] = categoryTotals[name].InexactFloat64()
	}

	p, err := charts.PieRender(
		values,
		charts.TitleOptionFunc(charts.TitleOption{
			Text: fmt.Sprintf("Spending Breakdown - %s", period),
		}),
		charts.LegendLabelsOptionFunc(categoryNames),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	return buf, nil
}

func aggregateByCategory(expenses []models.Expense) map[string]decimal.Decimal {
	categoryTotals := make(map[string]decimal.Decimal)

	for _, expense := range expenses {
		category := expense.Category
		if category == "" {
			category = "Uncategorized"
		}
		categoryTotals[category] = categoryTotals[category].Add(expense.Amount)
	}

	return categoryTotals
}

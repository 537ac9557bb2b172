// Package report computes spending statistics over a trailing window and
// renders the category breakdown as a chart.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Dhanushcr18/Edu-wealth/internal/models"
	"github.com/shopspring/decimal"
)

// StatsWindowDays is the trailing window statistics cover.
const StatsWindowDays = 30

// ExpenseSource provides the expenses to report on.
// Implemented by repository.ExpenseRepository.
type ExpenseSource interface {
	GetSince(ctx context.Context, userID string, cutoff time.Time) ([]models.Expense, error)
}

// CategoryStats aggregates one category's spending.
type CategoryStats struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
	Items []string        `json:"items"`
}

// PotentialSavings frames the window's total as course-investment value.
type PotentialSavings struct {
	Amount  decimal.Decimal `json:"amount"`
	Message string          `json:"message"`
}

// Stats is the spending summary for the trailing window.
type Stats struct {
	Period            string                   `json:"period"`
	TotalSpent        decimal.Decimal          `json:"totalSpent"`
	AvgPerDay         decimal.Decimal          `json:"avgPerDay"`
	ExpenseCount      int                      `json:"expenseCount"`
	CategoryBreakdown map[string]CategoryStats `json:"categoryBreakdown"`
	PotentialSavings  PotentialSavings         `json:"potentialSavings"`
}

// Reporter builds spending statistics for a user.
type Reporter struct {
	expenses ExpenseSource
	currency string
}

// NewReporter creates a Reporter. currency labels the savings message.
func NewReporter(expenses ExpenseSource, currency string) *Reporter {
	if currency == "" {
		currency = models.DefaultCurrency
	}
	return &Reporter{expenses: expenses, currency: currency}
}

// SpendingStats summarizes the user's last StatsWindowDays days.
// The daily average divides by the full window length, not by active days.
func (r *Reporter) SpendingStats(ctx context.Context, userID string) (*Stats, error) {
	cutoff := time.Now().AddDate(0, 0, -StatsWindowDays)
	expenses, err := r.expenses.GetSince(ctx, userID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for stats: %w", err)
	}
	return r.buildStats(expenses), nil
}

func (r *Reporter) buildStats(expenses []models.Expense) *Stats {
	total := decimal.Zero
	breakdown := make(map[string]CategoryStats)

	for _, expense := range expenses {
		total = total.Add(expense.Amount)

		cat := breakdown[expense.Category]
		cat.Total = cat.Total.Add(expense.Amount)
		cat.Count++
		cat.Items = append(cat.Items, expense.ItemName)
		breakdown[expense.Category] = cat
	}

	avgPerDay := total.Div(decimal.NewFromInt(StatsWindowDays)).Round(2)

	return &Stats{
		Period:            fmt.Sprintf("%d days", StatsWindowDays),
		TotalSpent:        total,
		AvgPerDay:         avgPerDay,
		ExpenseCount:      len(expenses),
		CategoryBreakdown: breakdown,
		PotentialSavings: PotentialSavings{
			Amount: total,
			Message: fmt.Sprintf("You could have invested %s %s in courses to upskill yourself!",
				r.currency, total.StringFixed(2)),
		},
	}
}

package api

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Dhanushcr18/Edu-wealth/internal/advisor"
	"github.com/Dhanushcr18/Edu-wealth/internal/classifier"
	"github.com/Dhanushcr18/Edu-wealth/internal/models"
	"github.com/Dhanushcr18/Edu-wealth/internal/report"
	"github.com/Dhanushcr18/Edu-wealth/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testExpense(id int, category, item string, amount int64) models.Expense {
	return models.Expense{
		ID:       id,
		UserID:   testUserID,
		Category: category,
		ItemName: item,
		Amount:   decimal.NewFromInt(amount),
		Currency: "INR",
		SpentAt:  time.Now(),
	}
}

func TestCreateExpenseNonEssential(t *testing.T) {
	t.Parallel()

	coursePrice := decimal.NewFromInt(180)
	ts := newTestServer()
	ts.advisor.expenseResult = &advisor.ExpenseResult{
		Expense: &models.Expense{
			ID:       1,
			Category: "Food & Drinks",
			ItemName: "Burger",
			Amount:   decimal.NewFromInt(150),
			Currency: "INR",
		},
		Classification: classifier.Result{
			IsEssential: false,
			ShowCourses: true,
			Category:    classifier.BucketNonEssential,
			Message:     "💡 This could be an opportunity to invest in yourself! Instead of temporary satisfaction, consider learning something valuable.",
		},
		Recommendations: []models.Course{
			{ID: "c-1", Title: "Digital Marketing Crash Course", Price: &coursePrice},
		},
		SavingsMessage: "You could learn something valuable for the same INR 150.00!",
	}

	rec := ts.do(t, http.MethodPost, "/api/expenses", map[string]any{
		"category": "Food & Drinks",
		"itemName": "Burger",
		"amount":   150,
	}, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeJSON[createExpenseResponse](t, rec)

	require.False(t, resp.Analysis.IsEssential)
	require.Len(t, resp.Recommendations, 1)
	require.NotNil(t, resp.Savings)
	require.Equal(t, "INR", resp.Savings.Currency)

	// The handler passes the payload through untouched.
	require.Equal(t, "Burger", ts.advisor.lastInput.ItemName)
	require.True(t, ts.advisor.lastInput.Amount.Equal(decimal.NewFromInt(150)))
}

func TestCreateExpenseEssentialOmitsRecommendations(t *testing.T) {
	t.Parallel()

	ts := newTestServer()
	ts.advisor.expenseResult = &advisor.ExpenseResult{
		Expense: &models.Expense{ID: 2, Category: "Transport", ItemName: "Metro card",
			Amount: decimal.NewFromInt(500), Currency: "INR"},
		Classification: classifier.Result{
			IsEssential: true,
			Category:    classifier.BucketEssential,
			Message:     "✅ Great! This is an essential/beneficial expense. Keep investing in what matters!",
		},
	}

	rec := ts.do(t, http.MethodPost, "/api/expenses", map[string]any{
		"category": "Transport",
		"itemName": "Metro card",
		"amount":   500,
	}, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, ts.advisor.expenseResult.Classification.IsEssential)
	require.NotContains(t, rec.Body.String(), "recommendations")
	require.NotContains(t, rec.Body.String(), "savings")
}

func TestCreateExpenseValidationError(t *testing.T) {
	t.Parallel()

	ts := newTestServer()
	ts.advisor.expenseErr = &advisor.ValidationError{Field: "amount", Message: "amount must be greater than zero"}

	rec := ts.do(t, http.MethodPost, "/api/expenses", map[string]any{
		"category": "Food & Drinks",
		"itemName": "Burger",
		"amount":   0,
	}, true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid amount")
}

func TestCreateExpenseMalformedBody(t *testing.T) {
	t.Parallel()

	ts := newTestServer()
	rec := ts.do(t, http.MethodPost, "/api/expenses", "not-an-object", true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateExpenseInternalError(t *testing.T) {
	t.Parallel()

	ts := newTestServer()
	ts.advisor.expenseErr = errors.New("db down")

	rec := ts.do(t, http.MethodPost, "/api/expenses", map[string]any{
		"category": "Food & Drinks",
		"itemName": "Burger",
		"amount":   150,
	}, true)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestListExpensesWithSummary(t *testing.T) {
	t.Parallel()

	ts := newTestServer()
	ts.expenses.expenses = []models.Expense{
		testExpense(1, "Food & Drinks", "Burger", 150),
		testExpense(2, "Food & Drinks", "Groceries", 850),
		testExpense(3, "Entertainment", "Cinema ticket", 300),
	}

	rec := ts.do(t, http.MethodGet, "/api/expenses", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[listExpensesResponse](t, rec)

	require.Len(t, resp.Expenses, 3)
	require.Equal(t, 3, resp.Summary.Count)
	require.True(t, resp.Summary.Total.Equal(decimal.NewFromInt(1300)))
	require.True(t, resp.Summary.ByCategory["Food & Drinks"].Equal(decimal.NewFromInt(1000)))
}

func TestListExpensesFilters(t *testing.T) {
	t.Parallel()

	ts := newTestServer()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	rec := ts.do(t, http.MethodGet,
		"/api/expenses?start_date=2026-08-01T00:00:00Z&category=Shopping", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ts.expenses.lastFilter.StartDate.Equal(start))
	require.Equal(t, "Shopping", ts.expenses.lastFilter.Category)
}

func TestListExpensesBadDate(t *testing.T) {
	t.Parallel()

	ts := newTestServer()
	rec := ts.do(t, http.MethodGet, "/api/expenses?start_date=yesterday", nil, true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExpenseStats(t *testing.T) {
	t.Parallel()

	ts := newTestServer()
	ts.reporter.stats = &report.Stats{
		Period:       "30 days",
		TotalSpent:   decimal.NewFromInt(1300),
		ExpenseCount: 3,
	}

	rec := ts.do(t, http.MethodGet, "/api/expenses/stats", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[report.Stats](t, rec)
	require.Equal(t, "30 days", resp.Period)
	require.Equal(t, 3, resp.ExpenseCount)
}

func TestExpenseChart(t *testing.T) {
	t.Parallel()

	ts := newTestServer()
	ts.expenses.expenses = []models.Expense{
		testExpense(1, "Food & Drinks", "Burger", 150),
		testExpense(2, "Entertainment", "Cinema ticket", 300),
	}

	rec := ts.do(t, http.MethodGet, "/api/expenses/chart", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes()[:4])
}

func TestExpenseChartNoData(t *testing.T) {
	t.Parallel()

	ts := newTestServer()
	rec := ts.do(t, http.MethodGet, "/api/expenses/chart", nil, true)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteExpense(t *testing.T) {
	t.Parallel()

	ts := newTestServer()
	rec := ts.do(t, http.MethodDelete, "/api/expenses/7", nil, true)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, []int{7}, ts.expenses.deleted)
}

func TestDeleteExpenseNotFound(t *testing.T) {
	t.Parallel()

	ts := newTestServer()
	ts.expenses.deleteErr = repository.ErrNotFound

	rec := ts.do(t, http.MethodDelete, "/api/expenses/99", nil, true)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteExpenseBadID(t *testing.T) {
	t.Parallel()

	ts := newTestServer()
	rec := ts.do(t, http.MethodDelete, "/api/expenses/abc", nil, true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

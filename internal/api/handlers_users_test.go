package api

import (
	"net/http"
	"testing"

	"github.com/Dhanushcr18/Edu-wealth/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestUpsertUser(t *testing.T) {
	t.Parallel()

	ts := newTestServer()
	rec := ts.do(t, http.MethodPost, "/api/users",
		map[string]string{"email": "asha@example.com", "name": "Asha"}, false)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeJSON[userJSON](t, rec)

	require.Equal(t, testUserID, resp.ID)
	require.Equal(t, "asha@example.com", resp.Email)
	require.Equal(t, models.DefaultCurrency, resp.Currency)
}

func TestUpsertUserInvalidEmail(t *testing.T) {
	t.Parallel()

	ts := newTestServer()
	rec := ts.do(t, http.MethodPost, "/api/users",
		map[string]string{"email": "not-an-email", "name": "Asha"}, false)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpsertUserUnsupportedCurrency(t *testing.T) {
	t.Parallel()

	ts := newTestServer()
	rec := ts.do(t, http.MethodPost, "/api/users",
		map[string]string{"email": "asha@example.com", "currency": "XYZ"}, false)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMe(t *testing.T) {
	t.Parallel()

	budget := decimal.NewFromInt(500)
	ts := newTestServer()
	ts.users.user = &models.User{
		ID:           testUserID,
		Email:        "asha@example.com",
		Name:         "Asha",
		BudgetAmount: &budget,
		Currency:     "INR",
	}
	ts.topics.byUser = []models.Interest{{ID: 1, Name: "Guitar", Slug: "guitar"}}

	rec := ts.do(t, http.MethodGet, "/api/me", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[userJSON](t, rec)

	require.Equal(t, "Asha", resp.Name)
	require.NotNil(t, resp.BudgetAmount)
	require.Len(t, resp.Interests, 1)
}

func TestGetMeNotFound(t *testing.T) {
	t.Parallel()

	ts := newTestServer()
	rec := ts.do(t, http.MethodGet, "/api/me", nil, true)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateBudget(t *testing.T) {
	t.Parallel()

	ts := newTestServer()
	ts.users.user = &models.User{ID: testUserID, Currency: "INR"}

	rec := ts.do(t, http.MethodPut, "/api/me/budget",
		map[string]any{"budgetAmount": 500, "currency": "USD"}, true)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[updateBudgetResponse](t, rec)

	require.True(t, resp.BudgetAmount.Equal(decimal.NewFromInt(500)))
	require.Equal(t, "USD", resp.Currency)
	require.True(t, ts.users.lastAmount.Equal(decimal.NewFromInt(500)))
}

func TestUpdateBudgetRejectsNonPositive(t *testing.T) {
	t.Parallel()

	ts := newTestServer()
	for _, amount := range []int{0, -100} {
		rec := ts.do(t, http.MethodPut, "/api/me/budget",
			map[string]any{"budgetAmount": amount}, true)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestUpdateBudgetUnsupportedCurrency(t *testing.T) {
	t.Parallel()

	ts := newTestServer()
	rec := ts.do(t, http.MethodPut, "/api/me/budget",
		map[string]any{"budgetAmount": 500, "currency": "XYZ"}, true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

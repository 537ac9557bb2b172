package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Dhanushcr18/Edu-wealth/internal/database"
	"github.com/Dhanushcr18/Edu-wealth/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func setupExpenseTest(t *testing.T) (*ExpenseRepository, *UserRepository, context.Context) {
	t.Helper()

	tx := database.TestTx(t)
	return NewExpenseRepository(tx), NewUserRepository(tx), context.Background()
}

func createTestUser(t *testing.T, userRepo *UserRepository, ctx context.Context, email string) *models.User {
	t.Helper()

	user := &models.User{Email: email, Name: "Test User", Currency: models.DefaultCurrency}
	require.NoError(t, userRepo.UpsertByEmail(ctx, user))
	return user
}

func TestExpenseRepository_Create(t *testing.T) {
	expenseRepo, userRepo, ctx := setupExpenseTest(t)
	user := createTestUser(t, userRepo, ctx, "create@example.com")

	t.Run("creates expense and fills ID and timestamp", func(t *testing.T) {
		expense := &models.Expense{
			UserID:   user.ID,
			Category: "Food & Drinks",
			ItemName: "Burger",
			Amount:   decimal.NewFromInt(150),
			Currency: "INR",
		}
		require.NoError(t, expenseRepo.Create(ctx, expense))
		require.NotZero(t, expense.ID)
		require.False(t, expense.SpentAt.IsZero())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		expense := &models.Expense{
			UserID:   user.ID,
			Category: "Food & Drinks",
			ItemName: "Nothing",
			Amount:   decimal.Zero,
			Currency: "INR",
		}
		require.Error(t, expenseRepo.Create(ctx, expense))
	})
}

func TestExpenseRepository_GetByUserID(t *testing.T) {
	expenseRepo, userRepo, ctx := setupExpenseTest(t)
	user := createTestUser(t, userRepo, ctx, "list@example.com")
	other := createTestUser(t, userRepo, ctx, "other@example.com")

	items := []struct {
		name     string
		category string
		amount   int64
	}{
		{"Burger", "Food & Drinks", 150},
		{"Metro card", "Transport", 500},
		{"Movie ticket", "Entertainment", 300},
	}
	for _, item := range items {
		require.NoError(t, expenseRepo.Create(ctx, &models.Expense{
			UserID:   user.ID,
			Category: item.category,
			ItemName: item.name,
			Amount:   decimal.NewFromInt(item.amount),
			Currency: "INR",
		}))
	}
	require.NoError(t, expenseRepo.Create(ctx, &models.Expense{
		UserID:   other.ID,
		Category: "Shopping",
		ItemName: "Shoes",
		Amount:   decimal.NewFromInt(2000),
		Currency: "INR",
	}))

	t.Run("returns only the user's expenses", func(t *testing.T) {
		expenses, err := expenseRepo.GetByUserID(ctx, user.ID, ExpenseFilter{})
		require.NoError(t, err)
		require.Len(t, expenses, 3)
		for _, expense := range expenses {
			require.Equal(t, user.ID, expense.UserID)
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		expenses, err := expenseRepo.GetByUserID(ctx, user.ID, ExpenseFilter{Category: "Transport"})
		require.NoError(t, err)
		require.Len(t, expenses, 1)
		require.Equal(t, "Metro card", expenses[0].ItemName)
	})

	t.Run("filters by date range", func(t *testing.T) {
		expenses, err := expenseRepo.GetByUserID(ctx, user.ID, ExpenseFilter{
			StartDate: time.Now().Add(-time.Hour),
			EndDate:   time.Now().Add(time.Hour),
		})
		require.NoError(t, err)
		require.Len(t, expenses, 3)

		none, err := expenseRepo.GetByUserID(ctx, user.ID, ExpenseFilter{
			EndDate: time.Now().Add(-time.Hour),
		})
		require.NoError(t, err)
		require.Empty(t, none)
	})
}

func TestExpenseRepository_Delete(t *testing.T) {
	expenseRepo, userRepo, ctx := setupExpenseTest(t)
	user := createTestUser(t, userRepo, ctx, "delete@example.com")
	other := createTestUser(t, userRepo, ctx, "intruder@example.com")

	expense := &models.Expense{
		UserID:   user.ID,
		Category: "Shopping",
		ItemName: "Gadget",
		Amount:   decimal.NewFromInt(999),
		Currency: "INR",
	}
	require.NoError(t, expenseRepo.Create(ctx, expense))

	t.Run("refuses delete by non-owner", func(t *testing.T) {
		err := expenseRepo.Delete(ctx, expense.ID, other.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("owner can delete", func(t *testing.T) {
		require.NoError(t, expenseRepo.Delete(ctx, expense.ID, user.ID))

		_, err := expenseRepo.GetByID(ctx, expense.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

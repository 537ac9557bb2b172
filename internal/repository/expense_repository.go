package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dhanushcr18/Edu-wealth/internal/database"
	"github.com/Dhanushcr18/Edu-wealth/internal/models"
	"github.com/jackc/pgx/v5"
)

// ExpenseRepository handles expense database operations.
type ExpenseRepository struct {
	db database.PGXDB
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(db database.PGXDB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Create adds a new expense.
func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO expenses (user_id, category, item_name, amount, currency, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, spent_at
	`, expense.UserID, expense.Category, expense.ItemName, expense.Amount,
		expense.Currency, expense.Description,
	).Scan(&expense.ID, &expense.SpentAt)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// GetByID retrieves an expense by ID.
func (r *ExpenseRepository) GetByID(ctx context.Context, id int) (*models.Expense, error) {
	var exp models.Expense
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, category, item_name, amount, currency, description, spent_at
		FROM expenses WHERE id = $1
	`, id).Scan(&exp.ID, &exp.UserID, &exp.Category, &exp.ItemName,
		&exp.Amount, &exp.Currency, &exp.Description, &exp.SpentAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return &exp, nil
}

// ExpenseFilter narrows the expense listing. Zero values mean "no filter".
type ExpenseFilter struct {
	StartDate time.Time
	EndDate   time.Time
	Category  string
}

// GetByUserID retrieves a user's expenses, newest first, honoring filters.
func (r *ExpenseRepository) GetByUserID(
	ctx context.Context,
	userID string,
	filter ExpenseFilter,
) ([]models.Expense, error) {
	query := `
		SELECT id, user_id, category, item_name, amount, currency, description, spent_at
		FROM expenses
		WHERE user_id = $1`
	args := []any{userID}

	if !filter.StartDate.IsZero() {
		args = append(args, filter.StartDate)
		query += fmt.Sprintf(" AND spent_at >= $%d", len(args))
	}
	if !filter.EndDate.IsZero() {
		args = append(args, filter.EndDate)
		query += fmt.Sprintf(" AND spent_at <= $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}

	query += " ORDER BY spent_at DESC, id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	return scanExpenses(rows)
}

// GetSince retrieves a user's expenses spent on or after the cutoff.
func (r *ExpenseRepository) GetSince(
	ctx context.Context,
	userID string,
	cutoff time.Time,
) ([]models.Expense, error) {
	return r.GetByUserID(ctx, userID, ExpenseFilter{StartDate: cutoff})
}

// Delete removes an expense owned by the given user.
// Returns ErrNotFound if the expense does not exist or belongs to someone else.
func (r *ExpenseRepository) Delete(ctx context.Context, id int, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// scanExpenses is a helper to scan expense rows.
func scanExpenses(rows pgx.Rows) ([]models.Expense, error) {
	var expenses []models.Expense
	for rows.Next() {
		var exp models.Expense
		if err := rows.Scan(
			&exp.ID, &exp.UserID, &exp.Category, &exp.ItemName,
			&exp.Amount, &exp.Currency, &exp.Description, &exp.SpentAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}
	return expenses, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dhanushcr18/Edu-wealth/internal/database"
	"github.com/Dhanushcr18/Edu-wealth/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// UserRepository handles user database operations.
type UserRepository struct {
	db database.PGXDB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db database.PGXDB) *UserRepository {
	return &UserRepository{db: db}
}

// UpsertByEmail creates a user or updates their name, keyed by email.
func (r *UserRepository) UpsertByEmail(ctx context.Context, user *models.User) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (email, name, currency)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET
			name = EXCLUDED.name,
			updated_at = NOW()
		RETURNING id, currency, created_at, updated_at
	`, user.Email, user.Name, user.Currency).
		Scan(&user.ID, &user.Currency, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(ctx, `
		SELECT id, email, name, budget_amount, currency, created_at, updated_at
		FROM users WHERE id = $1
	`, id).Scan(&user.ID, &user.Email, &user.Name, &user.BudgetAmount,
		&user.Currency, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// UpdateBudget sets the user's budget amount and optionally their currency.
func (r *UserRepository) UpdateBudget(
	ctx context.Context,
	userID string,
	amount decimal.Decimal,
	currency string,
) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET
			budget_amount = $2,
			currency = COALESCE(NULLIF($3, ''), currency),
			updated_at = NOW()
		WHERE id = $1
	`, userID, amount, currency)
	if err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

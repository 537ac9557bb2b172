package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dhanushcr18/Edu-wealth/internal/database"
	"github.com/Dhanushcr18/Edu-wealth/internal/models"
	"github.com/jackc/pgx/v5"
)

// InterestRepository handles interest and user-interest database operations.
type InterestRepository struct {
	db database.PGXDB
}

// NewInterestRepository creates a new InterestRepository.
func NewInterestRepository(db database.PGXDB) *InterestRepository {
	return &InterestRepository{db: db}
}

// GetAll retrieves all interests, sorted by name.
func (r *InterestRepository) GetAll(ctx context.Context) ([]models.Interest, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, slug, created_at FROM interests ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query interests: %w", err)
	}
	defer rows.Close()

	return scanInterests(rows)
}

// GetOrCreate inserts an interest if it is not yet known and returns the
// stored row. Both name and slug are unique; when either collides with an
// existing row, that row wins. A name can collide with a row carrying a
// different slug (seeded rows use curated slugs), so the lookup falls back
// from slug to name.
func (r *InterestRepository) GetOrCreate(ctx context.Context, name, slug string) (*models.Interest, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO interests (name, slug) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		name, slug,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert interest: %w", err)
	}

	var interest models.Interest
	err = r.db.QueryRow(ctx,
		`SELECT id, name, slug, created_at FROM interests WHERE slug = $1`, slug,
	).Scan(&interest.ID, &interest.Name, &interest.Slug, &interest.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		err = r.db.QueryRow(ctx,
			`SELECT id, name, slug, created_at FROM interests WHERE name = $1`, name,
		).Scan(&interest.ID, &interest.Name, &interest.Slug, &interest.CreatedAt)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get interest: %w", err)
	}
	return &interest, nil
}

// GetByUserID retrieves the interests a user has declared.
func (r *InterestRepository) GetByUserID(ctx context.Context, userID string) ([]models.Interest, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.id, i.name, i.slug, i.created_at
		FROM interests i
		JOIN user_interests ui ON i.id = ui.interest_id
		WHERE ui.user_id = $1
		ORDER BY i.name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user interests: %w", err)
	}
	defer rows.Close()

	return scanInterests(rows)
}

// ReplaceUserInterests swaps the user's declared interests for the given set.
func (r *InterestRepository) ReplaceUserInterests(ctx context.Context, userID string, interestIDs []int) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM user_interests WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear user interests: %w", err)
	}

	for _, interestID := range interestIDs {
		_, err := r.db.Exec(ctx, `
			INSERT INTO user_interests (user_id, interest_id)
			VALUES ($1, $2)
			ON CONFLICT (user_id, interest_id) DO NOTHING
		`, userID, interestID)
		if err != nil {
			return fmt.Errorf("failed to link interest %d: %w", interestID, err)
		}
	}
	return nil
}

// scanInterests is a helper to scan interest rows.
func scanInterests(rows pgx.Rows) ([]models.Interest, error) {
	var interests []models.Interest
	for rows.Next() {
		var interest models.Interest
		if err := rows.Scan(&interest.ID, &interest.Name, &interest.Slug, &interest.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interest: %w", err)
		}
		interests = append(interests, interest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating interests: %w", err)
	}
	return interests, nil
}

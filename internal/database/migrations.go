package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations creates the database schema.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL DEFAULT '',
			budget_amount DECIMAL(10, 2),
			currency TEXT NOT NULL DEFAULT 'INR',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS expenses (
			id SERIAL PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			category TEXT NOT NULL,
			item_name TEXT NOT NULL,
			amount DECIMAL(12, 2) NOT NULL CHECK (amount > 0),
			currency TEXT NOT NULL DEFAULT 'INR',
			description TEXT NOT NULL DEFAULT '',
			spent_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_expenses_user_id ON expenses(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_spent_at ON expenses(spent_at)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category)`,

		`CREATE TABLE IF NOT EXISTS courses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title TEXT NOT NULL,
			provider_name TEXT NOT NULL,
			provider_slug TEXT NOT NULL,
			url TEXT NOT NULL,
			price DECIMAL(10, 2) CHECK (price >= 0),
			currency TEXT NOT NULL DEFAULT '',
			rating DECIMAL(3, 2),
			duration TEXT NOT NULL DEFAULT '',
			categories TEXT[] NOT NULL DEFAULT '{}',
			thumbnail_url TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			source_hash TEXT NOT NULL UNIQUE,
			refreshed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_courses_provider_slug ON courses(provider_slug)`,
		`CREATE INDEX IF NOT EXISTS idx_courses_price ON courses(price)`,
		`CREATE INDEX IF NOT EXISTS idx_courses_rating ON courses(rating)`,

		`CREATE TABLE IF NOT EXISTS interests (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			slug TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS user_interests (
			id SERIAL PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			interest_id INTEGER NOT NULL REFERENCES interests(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, interest_id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_user_interests_user_id ON user_interests(user_id)`,

		`CREATE TABLE IF NOT EXISTS saved_courses (
			id SERIAL PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			course_id UUID NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
			added_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, course_id)
		)`,
	}

	for i, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}

// SeedInterests inserts the default interest catalog.
func SeedInterests(ctx context.Context, pool *pgxpool.Pool) error {
	interests := []struct {
		Name string
		Slug string
	}{
		{"Web Development", "web-development"},
		{"Data Science", "data-science"},
		{"Artificial Intelligence", "artificial-intelligence"},
		{"Machine Learning", "machine-learning"},
		{"Mobile Development", "mobile-development"},
		{"Cloud Computing", "cloud-computing"},
		{"Cybersecurity", "cybersecurity"},
		{"UI/UX Design", "ui-ux-design"},
		{"Digital Marketing", "digital-marketing"},
		{"Business & Entrepreneurship", "business-entrepreneurship"},
		{"Finance & Investing", "finance-investing"},
		{"Photography", "photography"},
		{"Music Production", "music-production"},
		{"Video Editing", "video-editing"},
		{"Graphic Design", "graphic-design"},
		{"Game Development", "game-development"},
		{"DevOps", "devops"},
		{"Blockchain", "blockchain"},
		{"Internet of Things", "iot"},
		{"Robotics", "robotics"},
	}

	for _, interest := range interests {
		_, err := pool.Exec(ctx,
			`INSERT INTO interests (name, slug) VALUES ($1, $2) ON CONFLICT (slug) DO NOTHING`,
			interest.Name, interest.Slug,
		)
		if err != nil {
			return fmt.Errorf("failed to seed interest %q: %w", interest.Name, err)
		}
	}

	return nil
}

package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunMigrations_CreatesSchema(t *testing.T) {
	pool := TestPool(t)
	ctx := context.Background()

	// Migrations are idempotent, running again must not fail.
	require.NoError(t, RunMigrations(ctx, pool))

	tables := []string{"users", "expenses", "courses", "interests", "user_interests", "saved_courses"}
	for _, table := range tables {
		var exists bool
		err := pool.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.tables
				WHERE table_schema = 'public' AND table_name = $1
			)
		`, table).Scan(&exists)
		require.NoError(t, err)
		require.True(t, exists, "table %s should exist", table)
	}
}

func TestSeedInterests_Idempotent(t *testing.T) {
	pool := TestPool(t)
	ctx := context.Background()

	require.NoError(t, SeedInterests(ctx, pool))
	require.NoError(t, SeedInterests(ctx, pool))

	var count int
	err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM interests WHERE slug = 'web-development'`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

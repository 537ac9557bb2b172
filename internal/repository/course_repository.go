package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dhanushcr18/Edu-wealth/internal/database"
	"github.com/Dhanushcr18/Edu-wealth/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CourseRepository handles course catalog database operations.
type CourseRepository struct {
	db database.PGXDB
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(db database.PGXDB) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseColumns = `id, title, provider_name, provider_slug, url, price, currency,
	rating, duration, categories, thumbnail_url, description, source_hash, refreshed_at`

// UpsertBySourceHash inserts a course, deduplicated by its source hash.
// A duplicate insert is a silent no-op; the stored row wins and its ID is
// loaded back into the course. Safe under concurrent backfills.
func (r *CourseRepository) UpsertBySourceHash(ctx context.Context, course *models.Course) error {
	if course.SourceHash == "" {
		course.SourceHash = models.SourceHash(course.URL)
	}
	if course.ID == "" {
		course.ID = uuid.NewString()
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO courses (id, title, provider_name, provider_slug, url, price, currency,
			rating, duration, categories, thumbnail_url, description, source_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (source_hash) DO NOTHING
		RETURNING id, refreshed_at
	`, course.ID, course.Title, course.ProviderName, course.ProviderSlug, course.URL,
		course.Price, course.Currency, course.Rating, course.Duration,
		course.Categories, course.ThumbnailURL, course.Description, course.SourceHash,
	).Scan(&course.ID, &course.RefreshedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		// Row already existed; load the winning row's identity.
		err = r.db.QueryRow(ctx,
			`SELECT id, refreshed_at FROM courses WHERE source_hash = $1`,
			course.SourceHash,
		).Scan(&course.ID, &course.RefreshedAt)
	}
	if err != nil {
		return fmt.Errorf("failed to upsert course: %w", err)
	}
	return nil
}

// GetByID retrieves a course by ID.
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = $1`, id)
	course, err := scanCourse(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return course, nil
}

// FindByPriceWindow retrieves same-currency courses priced within [min, max],
// best rated first, cheapest first among equals.
func (r *CourseRepository) FindByPriceWindow(
	ctx context.Context,
	min, max decimal.Decimal,
	currency string,
	limit int,
) ([]models.Course, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+courseColumns+`
		FROM courses
		WHERE price >= $1 AND price <= $2 AND currency = $3
		ORDER BY rating DESC NULLS LAST, price ASC
		LIMIT $4
	`, min, max, currency, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses by price window: %w", err)
	}
	defer rows.Close()

	return scanCourses(rows)
}

// CourseFilter narrows the catalog listing. Zero values mean "no filter".
type CourseFilter struct {
	Search      string
	MaxPrice    *decimal.Decimal
	InterestTag string
	Limit       int
	Offset      int
}

// FindByFilters retrieves catalog courses matching the filter, best rated
// first, most recently refreshed first among equals. MaxPrice keeps free
// (NULL price) courses. The interest tag matches any category by substring.
func (r *CourseRepository) FindByFilters(ctx context.Context, filter CourseFilter) ([]models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE TRUE`
	var args []any

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		query += fmt.Sprintf(" AND (price <= $%d OR price IS NULL)", len(args))
	}
	if filter.InterestTag != "" {
		args = append(args, "%"+filter.InterestTag+"%")
		query += fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM unnest(categories) AS tag WHERE tag ILIKE $%d)", len(args))
	}

	query += " ORDER BY rating DESC NULLS LAST, refreshed_at DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses by filters: %w", err)
	}
	defer rows.Close()

	return scanCourses(rows)
}

// scanCourse scans a single course row.
func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID, &course.Title, &course.ProviderName, &course.ProviderSlug,
		&course.URL, &course.Price, &course.Currency, &course.Rating,
		&course.Duration, &course.Categories, &course.ThumbnailURL,
		&course.Description, &course.SourceHash, &course.RefreshedAt,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// scanCourses is a helper to scan course rows.
func scanCourses(rows pgx.Rows) ([]models.Course, error) {
	var courses []models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, *course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}
	return courses, nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Dhanushcr18/Edu-wealth/internal/database"
	"github.com/Dhanushcr18/Edu-wealth/internal/models"
)

// SavedCourseRepository handles the user bookmarked-course list.
type SavedCourseRepository struct {
	db database.PGXDB
}

// NewSavedCourseRepository creates a new SavedCourseRepository.
func NewSavedCourseRepository(db database.PGXDB) *SavedCourseRepository {
	return &SavedCourseRepository{db: db}
}

// Save bookmarks a course for a user.
// Returns ErrAlreadySaved if the (user, course) pair already exists.
func (r *SavedCourseRepository) Save(ctx context.Context, userID, courseID string) error {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO saved_courses (user_id, course_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, course_id) DO NOTHING
	`, userID, courseID)
	if err != nil {
		return fmt.Errorf("failed to save course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadySaved
	}
	return nil
}

// SavedCourseEntry is a bookmarked course with its bookmark timestamp.
type SavedCourseEntry struct {
	Course  models.Course
	SavedAt time.Time
}

// GetByUserID retrieves a user's bookmarked courses, newest bookmark first.
func (r *SavedCourseRepository) GetByUserID(ctx context.Context, userID string) ([]SavedCourseEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.title, c.provider_name, c.provider_slug, c.url, c.price, c.currency,
		       c.rating, c.duration, c.categories, c.thumbnail_url, c.description,
		       c.source_hash, c.refreshed_at, sc.added_at
		FROM saved_courses sc
		JOIN courses c ON c.id = sc.course_id
		WHERE sc.user_id = $1
		ORDER BY sc.added_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved courses: %w", err)
	}
	defer rows.Close()

	var entries []SavedCourseEntry
	for rows.Next() {
		var entry SavedCourseEntry
		course := &entry.Course
		if err := rows.Scan(
			&course.ID, &course.Title, &course.ProviderName, &course.ProviderSlug,
			&course.URL, &course.Price, &course.Currency, &course.Rating,
			&course.Duration, &course.Categories, &course.ThumbnailURL,
			&course.Description, &course.SourceHash, &course.RefreshedAt,
			&entry.SavedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan saved course: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating saved courses: %w", err)
	}
	return entries, nil
}

// Remove deletes a bookmark. Returns ErrNotFound when nothing was bookmarked.
func (r *SavedCourseRepository) Remove(ctx context.Context, userID, courseID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM saved_courses WHERE user_id = $1 AND course_id = $2`,
		userID, courseID)
	if err != nil {
		return fmt.Errorf("failed to remove saved course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

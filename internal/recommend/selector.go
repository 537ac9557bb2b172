package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dhanushcr18/Edu-wealth/internal/logger"
	"github.com/Dhanushcr18/Edu-wealth/internal/models"
	"github.com/Dhanushcr18/Edu-wealth/internal/repository"
	"github.com/shopspring/decimal"
)

// Window ratios around the expense amount.
var (
	// Stored-catalog lookups search a symmetric band around the amount.
	windowLowRatio  = decimal.NewFromFloat(0.5)
	windowHighRatio = decimal.NewFromFloat(1.5)
	// Backfilled candidates may reach further below the amount.
	backfillLowRatio = decimal.NewFromFloat(0.3)
)

// MaxExpenseRecommendations caps the recommendation set for one expense.
const MaxExpenseRecommendations = 3

// browseFetchFactor widens the raw candidate fetch so the scorer re-ranks a
// larger pool than the page being returned.
const browseFetchFactor = 3

// DefaultBrowseLimit is used when a browse request omits its page size.
const DefaultBrowseLimit = 20

// CourseStore is the catalog storage the selector reads and backfills.
// Implemented by repository.CourseRepository.
type CourseStore interface {
	FindByPriceWindow(ctx context.Context, min, max decimal.Decimal, currency string, limit int) ([]models.Course, error)
	FindByFilters(ctx context.Context, filter repository.CourseFilter) ([]models.Course, error)
	UpsertBySourceHash(ctx context.Context, course *models.Course) error
}

// Selector retrieves, scores, and truncates recommendation candidates.
type Selector struct {
	courses  CourseStore
	provider SearchProvider
}

// NewSelector creates a Selector.
func NewSelector(courses CourseStore, provider SearchProvider) *Selector {
	return &Selector{courses: courses, provider: provider}
}

// BrowseRequest is the input for the independent browsing feed.
type BrowseRequest struct {
	Search        string
	MaxPrice      *decimal.Decimal
	InterestTag   string
	Limit         int
	Offset        int
	UserInterests []string
}

// BrowseResult is the ranked page plus the raw candidate pool it was ranked
// from. The pool feeds the affordability count in the motivation message.
type BrowseResult struct {
	Courses    []models.Course
	Candidates []models.Course
	Limit      int
	Offset     int
}

// Browse runs the feed query: fetch a widened candidate pool, score it
// against the caller's interests and price ceiling, and keep the top page.
//
// The offset applies to the raw fetch, before ranking, not to the ranked
// list. Re-ranking happens per page, so page boundaries shift as scores
// change. Inherited behavior; callers page through raw catalog order.
func (s *Selector) Browse(ctx context.Context, req BrowseRequest) (*BrowseResult, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultBrowseLimit
	}

	candidates, err := s.courses.FindByFilters(ctx, repository.CourseFilter{
		Search:      req.Search,
		MaxPrice:    req.MaxPrice,
		InterestTag: req.InterestTag,
		Limit:       limit * browseFetchFactor,
		Offset:      req.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch browse candidates: %w", err)
	}

	sctx := Context{
		InterestNames: lowercaseAll(req.UserInterests),
		MaxPrice:      req.MaxPrice,
	}
	ranked := Rank(candidates, sctx)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return &BrowseResult{
		Courses:    ranked,
		Candidates: candidates,
		Limit:      limit,
		Offset:     req.Offset,
	}, nil
}

// ForExpense returns up to MaxExpenseRecommendations courses priced near the
// expense amount in the same currency. When the stored catalog has no match,
// the search provider is consulted and its candidates are persisted before
// being returned, so later calls hit the catalog directly.
func (s *Selector) ForExpense(ctx context.Context, amount decimal.Decimal, currency string) ([]models.Course, error) {
	min := amount.Mul(windowLowRatio)
	max := amount.Mul(windowHighRatio)

	courses, err := s.courses.FindByPriceWindow(ctx, min, max, currency, MaxExpenseRecommendations)
	if err != nil {
		return nil, fmt.Errorf("failed to query price window: %w", err)
	}
	if len(courses) > 0 {
		return courses, nil
	}

	return s.backfill(ctx, amount), nil
}

// backfill asks the search provider for candidates and persists the keepers.
// Provider and storage failures are logged, never propagated: the expense
// flow must survive with an empty recommendation set.
func (s *Selector) backfill(ctx context.Context, amount decimal.Decimal) []models.Course {
	bucket := BucketForAmount(amount)

	found, err := s.provider.SearchCourses(ctx, bucket)
	if err != nil {
		logger.Log.Warn().Err(err).
			Int("bucket", int(bucket)).
			Msg("Course search provider failed during backfill")
		return nil
	}

	low := amount.Mul(backfillLowRatio)
	high := amount.Mul(windowHighRatio)

	var kept []models.Course
	for _, course := range found {
		if course.Price == nil || course.Price.LessThan(low) || course.Price.GreaterThan(high) {
			continue
		}
		kept = append(kept, course)
		if len(kept) == MaxExpenseRecommendations {
			break
		}
	}

	for i := range kept {
		if err := s.courses.UpsertBySourceHash(ctx, &kept[i]); err != nil {
			// Keep serving the candidate even if persisting it failed.
			logger.Log.Warn().Err(err).
				Str("title", kept[i].Title).
				Msg("Failed to persist backfilled course")
		}
	}

	return kept
}

func lowercaseAll(names []string) []string {
	lowered := make([]string, len(names))
	for i, name := range names {
		lowered[i] = strings.ToLower(name)
	}
	return lowered
}

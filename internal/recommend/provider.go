package recommend

import (
	"context"
	"strings"

	"github.com/Dhanushcr18/Edu-wealth/internal/models"
	"github.com/shopspring/decimal"
)

// PriceBucket is the coarse price band handed to a search provider when
// backfilling recommendations for an expense amount.
type PriceBucket int

// Price buckets, cheapest first.
const (
	BucketUpTo100 PriceBucket = iota
	BucketUpTo300
	BucketUpTo500
	BucketAbove500
)

// BucketForAmount rounds an expense amount into its price bucket.
func BucketForAmount(amount decimal.Decimal) PriceBucket {
	switch {
	case amount.LessThanOrEqual(decimal.NewFromInt(100)):
		return BucketUpTo100
	case amount.LessThanOrEqual(decimal.NewFromInt(300)):
		return BucketUpTo300
	case amount.LessThanOrEqual(decimal.NewFromInt(500)):
		return BucketUpTo500
	default:
		return BucketAbove500
	}
}

// SearchProvider finds candidate courses outside the local catalog.
// Implementations are best-effort: results carry no freshness guarantee and
// callers must tolerate failures.
type SearchProvider interface {
	// SearchCourses returns candidates priced for the given bucket.
	SearchCourses(ctx context.Context, bucket PriceBucket) ([]models.Course, error)
	// SearchByInterest returns candidates matching an interest name.
	SearchByInterest(ctx context.Context, interest string) ([]models.Course, error)
}

// CuratedProvider serves candidates from a built-in curated course list.
// It stands in for a live scraping integration behind the same interface.
type CuratedProvider struct{}

// NewCuratedProvider creates a CuratedProvider.
func NewCuratedProvider() *CuratedProvider {
	return &CuratedProvider{}
}

// SearchCourses returns curated candidates whose price fits the bucket.
func (p *CuratedProvider) SearchCourses(_ context.Context, bucket PriceBucket) ([]models.Course, error) {
	var candidates []models.Course
	for _, course := range CuratedCatalog() {
		if course.Price == nil {
			candidates = append(candidates, course)
			continue
		}
		if bucketFits(bucket, *course.Price) {
			candidates = append(candidates, course)
		}
	}
	return candidates, nil
}

// bucketFits reports whether a price belongs in the bucket's band.
// Bands are cumulative upward: a cheap course is a fine suggestion for a
// larger budget, so each bucket admits everything at or below its ceiling.
func bucketFits(bucket PriceBucket, price decimal.Decimal) bool {
	switch bucket {
	case BucketUpTo100:
		return price.LessThanOrEqual(decimal.NewFromInt(150))
	case BucketUpTo300:
		return price.LessThanOrEqual(decimal.NewFromInt(450))
	case BucketUpTo500:
		return price.LessThanOrEqual(decimal.NewFromInt(750))
	default:
		return true
	}
}

// SearchByInterest returns curated candidates tagged with the interest.
// Matching mirrors the catalog's browse rule: the interest and a course tag
// match when either contains the other, case-insensitively.
func (p *CuratedProvider) SearchByInterest(_ context.Context, interest string) ([]models.Course, error) {
	interest = strings.ToLower(interest)
	var candidates []models.Course
	for _, course := range CuratedCatalog() {
		for _, tag := range course.Categories {
			tag = strings.ToLower(tag)
			if strings.Contains(tag, interest) || strings.Contains(interest, tag) {
				candidates = append(candidates, course)
				break
			}
		}
	}
	return candidates, nil
}

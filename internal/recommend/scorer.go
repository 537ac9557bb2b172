// Package recommend ranks catalog courses and selects recommendation sets
// for the browsing feed and for freshly logged expenses.
package recommend

import (
	"sort"
	"strings"

	"github.com/Dhanushcr18/Edu-wealth/internal/models"
	"github.com/shopspring/decimal"
)

// Scoring weights. Points are additive and unbounded; higher is better.
const (
	interestMatchPoints = 10.0
	ratingWeight        = 2.0
	pricePenaltyWeight  = 5.0
	freeCourseBonus     = 5.0
)

// Context carries the personalization inputs for scoring.
type Context struct {
	// InterestNames are the caller's interests, lowercased.
	InterestNames []string
	// MaxPrice is the budget ceiling, if any.
	MaxPrice *decimal.Decimal
}

// Score computes the ranking score for a course.
//
// Interest overlap counts a course tag as matched when the tag and any
// interest contain each other as substrings, in either direction, so the
// interest "python" matches the tag "python programming" and vice versa.
// In-budget courses lose up to pricePenaltyWeight points as their price
// approaches the ceiling; over-budget courses get no price adjustment at
// all, and free courses get a flat bonus.
func Score(course models.Course, sctx Context) float64 {
	var score float64

	if len(sctx.InterestNames) > 0 {
		matches := 0
		for _, tag := range course.Categories {
			tag = strings.ToLower(tag)
			for _, interest := range sctx.InterestNames {
				if strings.Contains(tag, interest) || strings.Contains(interest, tag) {
					matches++
					break
				}
			}
		}
		score += float64(matches) * interestMatchPoints
	}

	if course.Rating != nil {
		score += course.Rating.InexactFloat64() * ratingWeight
	}

	if sctx.MaxPrice != nil && course.Price != nil {
		ratio := course.Price.InexactFloat64() / sctx.MaxPrice.InexactFloat64()
		if ratio <= 1 {
			score -= ratio * pricePenaltyWeight
		}
	} else if course.Price == nil {
		score += freeCourseBonus
	}

	return score
}

type scoredCourse struct {
	course models.Course
	score  float64
}

// Rank sorts courses by descending score. The sort is stable, so courses
// with equal scores keep their input order.
func Rank(courses []models.Course, sctx Context) []models.Course {
	scored := make([]scoredCourse, len(courses))
	for i, course := range courses {
		scored[i] = scoredCourse{course: course, score: Score(course, sctx)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ranked := make([]models.Course, len(scored))
	for i, sc := range scored {
		ranked[i] = sc.course
	}
	return ranked
}

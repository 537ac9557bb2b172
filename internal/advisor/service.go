// Package advisor orchestrates the expense flow: validate, classify,
// persist, and attach course recommendations with a motivational message.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dhanushcr18/Edu-wealth/internal/classifier"
	"github.com/Dhanushcr18/Edu-wealth/internal/logger"
	"github.com/Dhanushcr18/Edu-wealth/internal/models"
	"github.com/Dhanushcr18/Edu-wealth/internal/recommend"
	"github.com/Dhanushcr18/Edu-wealth/internal/repository"
	"github.com/Dhanushcr18/Edu-wealth/internal/telemetry"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/Dhanushcr18/Edu-wealth/internal/advisor")

// UserStore is the user lookup the service needs.
type UserStore interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// ExpenseStore persists expenses.
type ExpenseStore interface {
	Create(ctx context.Context, expense *models.Expense) error
}

// InterestStore manages interests and user links.
type InterestStore interface {
	GetOrCreate(ctx context.Context, name, slug string) (*models.Interest, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Interest, error)
	ReplaceUserInterests(ctx context.Context, userID string, interestIDs []int) error
}

// Recommender selects courses for the browse feed and for expenses.
// Implemented by recommend.Selector.
type Recommender interface {
	Browse(ctx context.Context, req recommend.BrowseRequest) (*recommend.BrowseResult, error)
	ForExpense(ctx context.Context, amount decimal.Decimal, currency string) ([]models.Course, error)
}

// InterestQueue accepts background catalog-population tasks.
// Implemented by recommend.Worker.
type InterestQueue interface {
	Enqueue(interest string) bool
}

// Service wires classification, storage, and recommendation together.
type Service struct {
	users           UserStore
	expenses        ExpenseStore
	interests       InterestStore
	recommender     Recommender
	queue           InterestQueue
	defaultCurrency string
}

// NewService creates a Service. queue may be nil when background catalog
// population is disabled.
func NewService(
	users UserStore,
	expenses ExpenseStore,
	interests InterestStore,
	recommender Recommender,
	queue InterestQueue,
	defaultCurrency string,
) *Service {
	if defaultCurrency == "" {
		defaultCurrency = models.DefaultCurrency
	}
	return &Service{
		users:           users,
		expenses:        expenses,
		interests:       interests,
		recommender:     recommender,
		queue:           queue,
		defaultCurrency: defaultCurrency,
	}
}

// ExpenseInput is the caller-supplied expense to record.
type ExpenseInput struct {
	Category    string
	ItemName    string
	Amount      decimal.Decimal
	Currency    string
	Description string
}

// ExpenseResult is the recorded expense plus the advice attached to it.
// Recommendations and SavingsMessage are only set for non-essential
// expenses.
type ExpenseResult struct {
	Expense         *models.Expense
	Classification  classifier.Result
	Recommendations []models.Course
	SavingsMessage  string
}

// RecordExpense validates and stores an expense, classifies it, and for
// non-essential spending attaches up to three courses priced near the
// amount. A recommendation lookup failure never fails the recording; the
// result just carries an empty set.
func (s *Service) RecordExpense(ctx context.Context, userID string, input ExpenseInput) (*ExpenseResult, error) {
	ctx, span := tracer.Start(ctx, "advisor.RecordExpense",
		trace.WithAttributes(attribute.String("expense.category", input.Category)))
	defer span.End()

	if err := validateExpense(input); err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}

	result := classifier.Classify(input.Category, input.ItemName, input.Description)
	telemetry.CountClassification(ctx, result.Category)
	span.SetAttributes(attribute.Bool("expense.essential", result.IsEssential))

	expense := &models.Expense{
		UserID:      userID,
		Category:    input.Category,
		ItemName:    input.ItemName,
		Amount:      input.Amount,
		Currency:    currency,
		Description: input.Description,
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}

	out := &ExpenseResult{
		Expense:        expense,
		Classification: result,
	}
	if !result.ShowCourses {
		return out, nil
	}

	courses, err := s.recommender.ForExpense(ctx, input.Amount, currency)
	if err != nil {
		logger.Log.Warn().Err(err).
			Str("user_id", logger.HashUserID(userID)).
			Msg("Recommendation lookup failed, returning expense without courses")
		courses = nil
	}
	out.Recommendations = courses
	out.SavingsMessage = recommend.ExpenseMessage(input.Amount, currency)
	return out, nil
}

// BrowseFilters are the caller's catalog feed filters.
type BrowseFilters struct {
	Search      string
	MaxPrice    *decimal.Decimal
	InterestTag string
	Limit       int
	Offset      int
}

// BrowseOutcome is a ranked catalog page with its motivational message.
// Total counts the raw candidate pool the page was ranked from.
type BrowseOutcome struct {
	Courses []models.Course
	Message string
	Total   int
	Limit   int
	Offset  int
}

// BrowseCourses serves the personalized catalog feed. An unknown user
// browses anonymously: no interests, no budget.
func (s *Service) BrowseCourses(ctx context.Context, userID string, filters BrowseFilters) (*BrowseOutcome, error) {
	ctx, span := tracer.Start(ctx, "advisor.BrowseCourses")
	defer span.End()

	var budget *decimal.Decimal
	var interestNames []string

	user, err := s.users.GetByID(ctx, userID)
	switch {
	case err == nil:
		budget = user.BudgetAmount
		userInterests, err := s.interests.GetByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load interests: %w", err)
		}
		for _, interest := range userInterests {
			interestNames = append(interestNames, interest.Name)
		}
	case errors.Is(err, repository.ErrNotFound):
		// Anonymous browse.
	default:
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	res, err := s.recommender.Browse(ctx, recommend.BrowseRequest{
		Search:        filters.Search,
		MaxPrice:      filters.MaxPrice,
		InterestTag:   filters.InterestTag,
		Limit:         filters.Limit,
		Offset:        filters.Offset,
		UserInterests: interestNames,
	})
	if err != nil {
		return nil, err
	}

	return &BrowseOutcome{
		Courses: res.Courses,
		Message: recommend.BrowseMessage(budget, s.currencyFor(user), res.Candidates),
		Total:   len(res.Candidates),
		Limit:   res.Limit,
		Offset:  res.Offset,
	}, nil
}

// UpdateInterests replaces the user's interest set and queues a background
// catalog search for each one. Names are slugified for uniqueness,
// de-duplicated, and capped; the call returns as soon as the links are
// stored.
func (s *Service) UpdateInterests(ctx context.Context, userID string, names []string) ([]models.Interest, error) {
	cleaned := make([]string, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		name = strings.TrimSpace(name)
		slug := models.Slugify(name)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		cleaned = append(cleaned, name)
		if len(cleaned) == models.MaxInterestsPerUpdate {
			break
		}
	}
	if len(cleaned) == 0 {
		return nil, &ValidationError{Field: "interests", Message: "at least one interest name is required"}
	}

	stored := make([]models.Interest, 0, len(cleaned))
	ids := make([]int, 0, len(cleaned))
	var lastErr error
	for _, name := range cleaned {
		interest, err := s.interests.GetOrCreate(ctx, name, models.Slugify(name))
		if err != nil {
			// One bad interest must not lose the rest of the set.
			logger.Log.Warn().Err(err).
				Str("user_id", logger.HashUserID(userID)).
				Str("interest", logger.SanitizeText(name)).
				Msg("Failed to store interest, skipping")
			lastErr = err
			continue
		}
		stored = append(stored, *interest)
		ids = append(ids, interest.ID)
	}
	if len(stored) == 0 {
		return nil, fmt.Errorf("failed to store interests: %w", lastErr)
	}

	if err := s.interests.ReplaceUserInterests(ctx, userID, ids); err != nil {
		return nil, fmt.Errorf("failed to link interests: %w", err)
	}

	if s.queue != nil {
		for _, interest := range stored {
			s.queue.Enqueue(interest.Name)
		}
	}

	return stored, nil
}

func (s *Service) currencyFor(user *models.User) string {
	if user != nil && user.Currency != "" {
		return user.Currency
	}
	return s.defaultCurrency
}

func validateExpense(input ExpenseInput) error {
	switch {
	case strings.TrimSpace(input.ItemName) == "":
		return &ValidationError{Field: "item_name", Message: "item name is required"}
	case len(input.ItemName) > models.MaxItemNameLength:
		return &ValidationError{Field: "item_name", Message: fmt.Sprintf("item name exceeds %d characters", models.MaxItemNameLength)}
	case strings.TrimSpace(input.Category) == "":
		return &ValidationError{Field: "category", Message: "category is required"}
	case len(input.Category) > models.MaxCategoryLength:
		return &ValidationError{Field: "category", Message: fmt.Sprintf("category exceeds %d characters", models.MaxCategoryLength)}
	case !input.Amount.IsPositive():
		return &ValidationError{Field: "amount", Message: "amount must be greater than zero"}
	}
	if input.Currency != "" {
		if _, ok := models.SupportedCurrencies[input.Currency]; !ok {
			return &ValidationError{Field: "currency", Message: fmt.Sprintf("unsupported currency %q", input.Currency)}
		}
	}
	return nil
}

package api

import (
	"time"

	"github.com/Dhanushcr18/Edu-wealth/internal/models"
	"github.com/Dhanushcr18/Edu-wealth/internal/repository"
	"github.com/shopspring/decimal"
)

type courseJSON struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	ProviderName string           `json:"providerName"`
	ProviderSlug string           `json:"providerSlug"`
	URL          string           `json:"url"`
	Price        *decimal.Decimal `json:"price"`
	Currency     string           `json:"currency"`
	Rating       *decimal.Decimal `json:"rating"`
	Duration     string           `json:"duration"`
	Categories   []string         `json:"categories"`
	ThumbnailURL string           `json:"thumbnailUrl"`
	Description  string           `json:"description"`
	SavedAt      *time.Time       `json:"savedAt,omitempty"`
}

func toCourseJSON(c models.Course) courseJSON {
	return courseJSON{
		ID:           c.ID,
		Title:        c.Title,
		ProviderName: c.ProviderName,
		ProviderSlug: c.ProviderSlug,
		URL:          c.URL,
		Price:        c.Price,
		Currency:     c.Currency,
		Rating:       c.Rating,
		Duration:     c.Duration,
		Categories:   c.Categories,
		ThumbnailURL: c.ThumbnailURL,
		Description:  c.Description,
	}
}

func toCourseListJSON(courses []models.Course) []courseJSON {
	out := make([]courseJSON, len(courses))
	for i, c := range courses {
		out[i] = toCourseJSON(c)
	}
	return out
}

func toSavedCourseListJSON(entries []repository.SavedCourseEntry) []courseJSON {
	out := make([]courseJSON, len(entries))
	for i, entry := range entries {
		out[i] = toCourseJSON(entry.Course)
		savedAt := entry.SavedAt
		out[i].SavedAt = &savedAt
	}
	return out
}

type expenseJSON struct {
	ID          int             `json:"id"`
	Category    string          `json:"category"`
	ItemName    string          `json:"itemName"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	SpentAt     time.Time       `json:"spentAt"`
}

func toExpenseJSON(e models.Expense) expenseJSON {
	return expenseJSON{
		ID:          e.ID,
		Category:    e.Category,
		ItemName:    e.ItemName,
		Amount:      e.Amount,
		Currency:    e.Currency,
		Description: e.Description,
		SpentAt:     e.SpentAt,
	}
}

func toExpenseListJSON(expenses []models.Expense) []expenseJSON {
	out := make([]expenseJSON, len(expenses))
	for i, e := range expenses {
		out[i] = toExpenseJSON(e)
	}
	return out
}

type interestJSON struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func toInterestListJSON(interests []models.Interest) []interestJSON {
	out := make([]interestJSON, len(interests))
	for i, interest := range interests {
		out[i] = interestJSON{ID: interest.ID, Name: interest.Name, Slug: interest.Slug}
	}
	return out
}

type userJSON struct {
	ID           string           `json:"id"`
	Email        string           `json:"email"`
	Name         string           `json:"name"`
	BudgetAmount *decimal.Decimal `json:"budgetAmount"`
	Currency     string           `json:"currency"`
	CreatedAt    time.Time        `json:"createdAt"`
	Interests    []interestJSON   `json:"interests,omitempty"`
}

func toUserJSON(u *models.User) userJSON {
	return userJSON{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		BudgetAmount: u.BudgetAmount,
		Currency:     u.Currency,
		CreatedAt:    u.CreatedAt,
	}
}

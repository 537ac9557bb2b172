// Package models defines the domain entities for the EduWealth backend.
package models

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is applied when an expense or budget omits a currency code.
const DefaultCurrency = "INR"

// MaxCategoryLength is the maximum allowed length for expense category labels.
const MaxCategoryLength = 50

// MaxItemNameLength is the maximum allowed length for expense item names.
const MaxItemNameLength = 100

// MaxInterestsPerUpdate caps how many interests a single update may declare.
const MaxInterestsPerUpdate = 10

// SupportedCurrencies lists currency codes with their display symbols.
var SupportedCurrencies = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"SGD": "S$",
	"AUD": "A$",
	"JPY": "¥",
}

// User represents a registered user.
type User struct {
	ID           string
	Email        string
	Name         string
	BudgetAmount *decimal.Decimal
	Currency     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Expense represents a single logged expense. Classification happens at
// creation time; the stored row is never re-classified on read.
type Expense struct {
	ID          int
	UserID      string
	Category    string
	ItemName    string
	Amount      decimal.Decimal
	Currency    string
	Description string
	SpentAt     time.Time
}

// Course is a catalog entry. A nil Price means the course is free.
type Course struct {
	ID           string
	Title        string
	ProviderName string
	ProviderSlug string
	URL          string
	Price        *decimal.Decimal
	Currency     string
	Rating       *decimal.Decimal
	Duration     string
	Categories   []string
	ThumbnailURL string
	Description  string
	SourceHash   string
	RefreshedAt  time.Time
}

// IsFree reports whether the course has no price.
func (c *Course) IsFree() bool {
	return c.Price == nil
}

// Interest is a named topic with a normalized unique slug.
type Interest struct {
	ID        int
	Name      string
	Slug      string
	CreatedAt time.Time
}

// UserInterest links a user to an interest. Unique per (user, interest).
type UserInterest struct {
	ID         int
	UserID     string
	InterestID int
	CreatedAt  time.Time
}

// SavedCourse links a user to a bookmarked course. Unique per (user, course).
type SavedCourse struct {
	ID       int
	UserID   string
	CourseID string
	AddedAt  time.Time
}

// SourceHash derives the catalog deduplication key for a course URL.
// The hash is stable so concurrent backfills of the same course collapse
// into a single row.
func SourceHash(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}

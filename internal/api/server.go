// Package api exposes the service over HTTP. The surface is deliberately
// thin: handlers parse and validate, then delegate to the advisor service,
// the reporter, or a repository. Caller identity arrives as an X-User-ID
// header resolved by an upstream gateway; there is no auth here.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/Dhanushcr18/Edu-wealth/internal/advisor"
	"github.com/Dhanushcr18/Edu-wealth/internal/models"
	"github.com/Dhanushcr18/Edu-wealth/internal/report"
	"github.com/Dhanushcr18/Edu-wealth/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// userIDHeader carries the caller identity set by the gateway.
const userIDHeader = "X-User-ID"

// AdvisorService is the orchestration layer behind the expense and course
// endpoints. Implemented by advisor.Service.
type AdvisorService interface {
	RecordExpense(ctx context.Context, userID string, input advisor.ExpenseInput) (*advisor.ExpenseResult, error)
	BrowseCourses(ctx context.Context, userID string, filters advisor.BrowseFilters) (*advisor.BrowseOutcome, error)
	UpdateInterests(ctx context.Context, userID string, names []string) ([]models.Interest, error)
}

// StatsReporter builds spending statistics. Implemented by report.Reporter.
type StatsReporter interface {
	SpendingStats(ctx context.Context, userID string) (*report.Stats, error)
}

// UserStore is the user storage the handlers need.
type UserStore interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpsertByEmail(ctx context.Context, user *models.User) error
	UpdateBudget(ctx context.Context, userID string, amount decimal.Decimal, currency string) error
}

// ExpenseStore lists and deletes stored expenses.
type ExpenseStore interface {
	GetByUserID(ctx context.Context, userID string, filter repository.ExpenseFilter) ([]models.Expense, error)
	GetSince(ctx context.Context, userID string, cutoff time.Time) ([]models.Expense, error)
	Delete(ctx context.Context, id int, userID string) error
}

// CourseStore looks up catalog entries.
type CourseStore interface {
	GetByID(ctx context.Context, id string) (*models.Course, error)
}

// SavedCourseStore manages per-user course bookmarks.
type SavedCourseStore interface {
	Save(ctx context.Context, userID, courseID string) error
	GetByUserID(ctx context.Context, userID string) ([]repository.SavedCourseEntry, error)
	Remove(ctx context.Context, userID, courseID string) error
}

// InterestStore lists interests.
type InterestStore interface {
	GetAll(ctx context.Context) ([]models.Interest, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Interest, error)
}

// Server holds the handler dependencies.
type Server struct {
	advisor      AdvisorService
	reporter     StatsReporter
	users        UserStore
	expenses     ExpenseStore
	courses      CourseStore
	savedCourses SavedCourseStore
	interests    InterestStore
}

// NewServer creates a Server.
func NewServer(
	advisorSvc AdvisorService,
	reporter StatsReporter,
	users UserStore,
	expenses ExpenseStore,
	courses CourseStore,
	savedCourses SavedCourseStore,
	interests InterestStore,
) *Server {
	return &Server{
		advisor:      advisorSvc,
		reporter:     reporter,
		users:        users,
		expenses:     expenses,
		courses:      courses,
		savedCourses: savedCourses,
		interests:    interests,
	}
}

// Handler builds the routed handler with request logging and tracing.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/users", s.handleUpsertUser)
	mux.HandleFunc("GET /api/me", s.handleGetMe)
	mux.HandleFunc("PUT /api/me/budget", s.handleUpdateBudget)

	mux.HandleFunc("POST /api/expenses", s.handleCreateExpense)
	mux.HandleFunc("GET /api/expenses", s.handleListExpenses)
	mux.HandleFunc("GET /api/expenses/stats", s.handleExpenseStats)
	mux.HandleFunc("GET /api/expenses/chart", s.handleExpenseChart)
	mux.HandleFunc("DELETE /api/expenses/{id}", s.handleDeleteExpense)

	mux.HandleFunc("GET /api/courses", s.handleBrowseCourses)
	mux.HandleFunc("GET /api/courses/{id}", s.handleGetCourse)

	mux.HandleFunc("POST /api/me/saved-courses", s.handleSaveCourse)
	mux.HandleFunc("GET /api/me/saved-courses", s.handleListSavedCourses)
	mux.HandleFunc("DELETE /api/me/saved-courses/{courseId}", s.handleRemoveSavedCourse)

	mux.HandleFunc("GET /api/interests", s.handleListInterests)
	mux.HandleFunc("GET /api/interests/me", s.handleGetMyInterests)
	mux.HandleFunc("POST /api/interests/me", s.handleUpdateInterests)

	mux.HandleFunc("GET /healthz", s.handleHealth)

	return otelhttp.NewHandler(logRequests(mux), "eduwealth.http")
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requireUser extracts the caller identity or writes a 401. The header must
// carry a UUID; anything else would otherwise only fail deep in a query.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Header.Get(userIDHeader)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing "+userIDHeader+" header")
		return "", false
	}
	if _, err := uuid.Parse(userID); err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+userIDHeader+" header")
		return "", false
	}
	return userID, true
}

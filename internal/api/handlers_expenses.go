package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Dhanushcr18/Edu-wealth/internal/advisor"
	"github.com/Dhanushcr18/Edu-wealth/internal/logger"
	"github.com/Dhanushcr18/Edu-wealth/internal/report"
	"github.com/Dhanushcr18/Edu-wealth/internal/repository"
	"github.com/shopspring/decimal"
)

type createExpenseRequest struct {
	Category    string          `json:"category"`
	ItemName    string          `json:"itemName"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
}

type analysisJSON struct {
	IsEssential bool   `json:"isEssential"`
	Category    string `json:"category"`
	Message     string `json:"message"`
}

type savingsJSON struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Message  string          `json:"message"`
}

type createExpenseResponse struct {
	Expense         expenseJSON  `json:"expense"`
	Analysis        analysisJSON `json:"analysis"`
	Recommendations []courseJSON `json:"recommendations,omitempty"`
	Savings         *savingsJSON `json:"savings,omitempty"`
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.advisor.RecordExpense(r.Context(), userID, advisor.ExpenseInput{
		Category:    req.Category,
		ItemName:    req.ItemName,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
	})
	if err != nil {
		var verr *advisor.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		logger.Log.Error().Err(err).
			Str("user_id", logger.HashUserID(userID)).
			Msg("Failed to record expense")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := createExpenseResponse{
		Expense: toExpenseJSON(*result.Expense),
		Analysis: analysisJSON{
			IsEssential: result.Classification.IsEssential,
			Category:    result.Classification.Category,
			Message:     result.Classification.Message,
		},
	}
	// Recommendations only accompany non-essential spending.
	if result.Classification.ShowCourses && len(result.Recommendations) > 0 {
		resp.Recommendations = toCourseListJSON(result.Recommendations)
		resp.Savings = &savingsJSON{
			Amount:   result.Expense.Amount,
			Currency: result.Expense.Currency,
			Message:  result.SavingsMessage,
		}
	}

	writeJSON(w, http.StatusCreated, resp)
}

type expenseSummaryJSON struct {
	Total      decimal.Decimal            `json:"total"`
	ByCategory map[string]decimal.Decimal `json:"byCategory"`
	Count      int                        `json:"count"`
}

type listExpensesResponse struct {
	Expenses []expenseJSON      `json:"expenses"`
	Summary  expenseSummaryJSON `json:"summary"`
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	filter := repository.ExpenseFilter{Category: r.URL.Query().Get("category")}
	if v := r.URL.Query().Get("start_date"); v != "" {
		start, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "start_date must be RFC 3339")
			return
		}
		filter.StartDate = start
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		end, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "end_date must be RFC 3339")
			return
		}
		filter.EndDate = end
	}

	expenses, err := s.expenses.GetByUserID(r.Context(), userID, filter)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to list expenses")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	total := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
		byCategory[expense.Category] = byCategory[expense.Category].Add(expense.Amount)
	}

	writeJSON(w, http.StatusOK, listExpensesResponse{
		Expenses: toExpenseListJSON(expenses),
		Summary: expenseSummaryJSON{
			Total:      total,
			ByCategory: byCategory,
			Count:      len(expenses),
		},
	})
}

func (s *Server) handleExpenseStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	stats, err := s.reporter.SpendingStats(r.Context(), userID)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to build spending stats")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleExpenseChart(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	cutoff := time.Now().AddDate(0, 0, -report.StatsWindowDays)
	expenses, err := s.expenses.GetSince(r.Context(), userID, cutoff)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to load expenses for chart")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if len(expenses) == 0 {
		writeError(w, http.StatusNotFound, "no expenses to chart")
		return
	}

	png, err := report.SpendingChart(expenses, stats30DayPeriod())
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to render spending chart")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to write chart response")
	}
}

func stats30DayPeriod() string {
	return strconv.Itoa(report.StatsWindowDays) + " days"
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "expense id must be an integer")
		return
	}

	switch err := s.expenses.Delete(r.Context(), id, userID); {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "expense not found")
	default:
		logger.Log.Error().Err(err).Msg("Failed to delete expense")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

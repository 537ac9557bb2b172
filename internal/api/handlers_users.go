package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"

	"github.com/Dhanushcr18/Edu-wealth/internal/logger"
	"github.com/Dhanushcr18/Edu-wealth/internal/models"
	"github.com/Dhanushcr18/Edu-wealth/internal/repository"
	"github.com/shopspring/decimal"
)

type upsertUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// handleUpsertUser provisions a user record. The gateway calls this once at
// signup, then forwards the returned id as X-User-ID on every request.
func (s *Server) handleUpsertUser(w http.ResponseWriter, r *http.Request) {
	var req upsertUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		writeError(w, http.StatusBadRequest, "a valid email is required")
		return
	}
	if req.Currency != "" {
		if _, ok := models.SupportedCurrencies[req.Currency]; !ok {
			writeError(w, http.StatusBadRequest, "unsupported currency")
			return
		}
	} else {
		req.Currency = models.DefaultCurrency
	}

	user := &models.User{Email: req.Email, Name: req.Name, Currency: req.Currency}
	if err := s.users.UpsertByEmail(r.Context(), user); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to upsert user")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, toUserJSON(user))
}

func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	user, err := s.users.GetByID(r.Context(), userID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "user not found")
		return
	case err != nil:
		logger.Log.Error().Err(err).Msg("Failed to load user")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	interests, err := s.interests.GetByUserID(r.Context(), userID)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to load user interests")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := toUserJSON(user)
	resp.Interests = toInterestListJSON(interests)
	writeJSON(w, http.StatusOK, resp)
}

type updateBudgetRequest struct {
	BudgetAmount decimal.Decimal `json:"budgetAmount"`
	Currency     string          `json:"currency"`
}

type updateBudgetResponse struct {
	ID           string          `json:"id"`
	BudgetAmount decimal.Decimal `json:"budgetAmount"`
	Currency     string          `json:"currency"`
}

func (s *Server) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req updateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.BudgetAmount.IsPositive() {
		writeError(w, http.StatusBadRequest, "budgetAmount must be greater than zero")
		return
	}
	if req.Currency != "" {
		if _, ok := models.SupportedCurrencies[req.Currency]; !ok {
			writeError(w, http.StatusBadRequest, "unsupported currency")
			return
		}
	}

	switch err := s.users.UpdateBudget(r.Context(), userID, req.BudgetAmount, req.Currency); {
	case err == nil:
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "user not found")
		return
	default:
		logger.Log.Error().Err(err).Msg("Failed to update budget")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	user, err := s.users.GetByID(r.Context(), userID)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to reload user after budget update")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, updateBudgetResponse{
		ID:           user.ID,
		BudgetAmount: *user.BudgetAmount,
		Currency:     user.Currency,
	})
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Dhanushcr18/Edu-wealth/internal/advisor"
	"github.com/Dhanushcr18/Edu-wealth/internal/logger"
)

func (s *Server) handleListInterests(w http.ResponseWriter, r *http.Request) {
	interests, err := s.interests.GetAll(r.Context())
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to list interests")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toInterestListJSON(interests))
}

func (s *Server) handleGetMyInterests(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	interests, err := s.interests.GetByUserID(r.Context(), userID)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to load user interests")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toInterestListJSON(interests))
}

type updateInterestsRequest struct {
	Interests []string `json:"interests"`
}

type updateInterestsResponse struct {
	Message   string         `json:"message"`
	Interests []interestJSON `json:"interests"`
}

func (s *Server) handleUpdateInterests(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req updateInterestsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	interests, err := s.advisor.UpdateInterests(r.Context(), userID, req.Interests)
	if err != nil {
		var verr *advisor.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		logger.Log.Error().Err(err).Msg("Failed to update interests")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, updateInterestsResponse{
		Message:   "Interests saved successfully!",
		Interests: toInterestListJSON(interests),
	})
}

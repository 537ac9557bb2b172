package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Dhanushcr18/Edu-wealth/internal/advisor"
	"github.com/Dhanushcr18/Edu-wealth/internal/logger"
	"github.com/Dhanushcr18/Edu-wealth/internal/repository"
	"github.com/shopspring/decimal"
)

type browseCoursesResponse struct {
	Courses             []courseJSON `json:"courses"`
	Total               int          `json:"total"`
	Limit               int          `json:"limit"`
	Offset              int          `json:"offset"`
	MotivationalMessage string       `json:"motivationalMessage"`
}

func (s *Server) handleBrowseCourses(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	filters := advisor.BrowseFilters{
		Search:      query.Get("search"),
		InterestTag: query.Get("interest"),
	}
	if v := query.Get("max_price"); v != "" {
		maxPrice, err := decimal.NewFromString(v)
		if err != nil || maxPrice.IsNegative() {
			writeError(w, http.StatusBadRequest, "max_price must be a non-negative number")
			return
		}
		filters.MaxPrice = &maxPrice
	}
	var err error
	if filters.Limit, err = parseIntParam(query.Get("limit"), 0); err != nil {
		writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}
	if filters.Offset, err = parseIntParam(query.Get("offset"), 0); err != nil {
		writeError(w, http.StatusBadRequest, "offset must be a non-negative integer")
		return
	}

	outcome, err := s.advisor.BrowseCourses(r.Context(), userID, filters)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to browse courses")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, browseCoursesResponse{
		Courses:             toCourseListJSON(outcome.Courses),
		Total:               outcome.Total,
		Limit:               outcome.Limit,
		Offset:              outcome.Offset,
		MotivationalMessage: outcome.Message,
	})
}

func parseIntParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.New("invalid integer parameter")
	}
	return v, nil
}

func (s *Server) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	course, err := s.courses.GetByID(r.Context(), r.PathValue("id"))
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, toCourseJSON(*course))
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "course not found")
	default:
		logger.Log.Error().Err(err).Msg("Failed to load course")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

type saveCourseRequest struct {
	CourseID string `json:"courseId"`
}

func (s *Server) handleSaveCourse(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req saveCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CourseID == "" {
		writeError(w, http.StatusBadRequest, "courseId is required")
		return
	}

	// Saving a bookmark for a missing course must 404, not silently no-op.
	course, err := s.courses.GetByID(r.Context(), req.CourseID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "course not found")
		return
	case err != nil:
		logger.Log.Error().Err(err).Msg("Failed to load course for save")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	switch err := s.savedCourses.Save(r.Context(), userID, course.ID); {
	case err == nil:
		writeJSON(w, http.StatusCreated, toCourseJSON(*course))
	case errors.Is(err, repository.ErrAlreadySaved):
		writeError(w, http.StatusBadRequest, "course already saved")
	default:
		logger.Log.Error().Err(err).Msg("Failed to save course")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (s *Server) handleListSavedCourses(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	entries, err := s.savedCourses.GetByUserID(r.Context(), userID)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to list saved courses")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toSavedCourseListJSON(entries))
}

func (s *Server) handleRemoveSavedCourse(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	switch err := s.savedCourses.Remove(r.Context(), userID, r.PathValue("courseId")); {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "saved course not found")
	default:
		logger.Log.Error().Err(err).Msg("Failed to remove saved course")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/grazingtrail/backend/internal/domain"
)

// createVisitRequest is the body for POST /visits; one confirmed
// recommendation. Coordinates are optional because some places carry none.
type createVisitRequest struct {
	Username string   `json:"username"`
	Place    string   `json:"place"`
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
}

// visitListResponse is the paginated body for GET /users/{username}/visits.
type visitListResponse struct {
	Data       []domain.Visit `json:"data"`
	Pagination pagination     `json:"pagination"`
}

type pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// CreateVisit handles POST /visits.
// A failed ledger write surfaces as a 500; the visit was not recorded and
// the client must tell the user the confirmation did not persist.
func (s *Server) CreateVisit(w http.ResponseWriter, r *http.Request) {
	var body createVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "request body is required")
		return
	}

	visit, err := s.visits.Record(r.Context(), body.Username, body.Place, body.Lat, body.Lon)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found", "user not found")
		default:
			internalError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, visit)
}

// ListVisits handles GET /users/{username}/visits.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListVisits(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	params := domain.NewPaginationParams(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))

	visits, total, err := s.visits.History(r.Context(), username, params)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "user not found")
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, visitListResponse{
		Data: visits,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

package handler

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/grazingtrail/backend/internal/domain"
	"github.com/grazingtrail/backend/internal/service"
)

// recommendRequest is the body for POST /recommendations.
// Keywords is raw comma-separated text ("pizza, beer"); it may be empty.
// Username is optional; when present, already-visited places are excluded
// unless include_visited is set.
type recommendRequest struct {
	PostalCode     string `json:"postal_code"`
	Keywords       string `json:"keywords"`
	Username       string `json:"username,omitempty"`
	IncludeVisited bool   `json:"include_visited,omitempty"`
}

// recommendResponse carries the pick, or a null match plus a hint when
// nothing qualified. A null match with HTTP 200 is the zero-result outcome,
// deliberately not an error status.
type recommendResponse struct {
	Match      *domain.Candidate `json:"match"`
	Considered int               `json:"candidates_considered"`
	Message    string            `json:"message,omitempty"`
}

// Recommend handles POST /recommendations.
func (s *Server) Recommend(w http.ResponseWriter, r *http.Request) {
	var body recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "request body is required")
		return
	}

	rec, err := s.recommender.Recommend(r.Context(), service.RecommendRequest{
		PostalCode:     body.PostalCode,
		Keywords:       body.Keywords,
		Username:       body.Username,
		IncludeVisited: body.IncludeVisited,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found", "user not found")
		case errors.Is(err, domain.ErrLookupFailed):
			writeError(w, http.StatusUnprocessableEntity, "postcode_not_found",
				"could not locate that postal code — try a different one")
		case errors.Is(err, domain.ErrFetchFailed):
			writeError(w, http.StatusBadGateway, "places_unavailable",
				"the place service is unavailable right now — try again shortly")
		default:
			internalError(w, err)
		}
		return
	}

	resp := recommendResponse{Match: rec.Match, Considered: rec.Considered}
	if rec.Match == nil {
		resp.Message = "no places matched — try broader keywords"
	}
	writeJSON(w, http.StatusOK, resp)
}

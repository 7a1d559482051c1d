package handler

import (
	"errors"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/grazingtrail/backend/internal/domain"
)

// credentialsRequest is the shared body shape for register and login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userResponse is what both auth endpoints return on success.
// The credential hash never appears here.
type userResponse struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Register handles POST /auth/register.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var body credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "request body is required")
		return
	}

	user, err := s.accounts.Register(r.Context(), body.Username, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
		case errors.Is(err, domain.ErrDuplicateUser):
			writeError(w, http.StatusConflict, "duplicate_user", "username already taken")
		default:
			internalError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{Username: user.Username, CreatedAt: user.CreatedAt})
}

// Login handles POST /auth/login.
// Unknown usernames and wrong passwords produce the identical response.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var body credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "request body is required")
		return
	}

	user, err := s.accounts.Authenticate(r.Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password")
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{Username: user.Username, CreatedAt: user.CreatedAt})
}

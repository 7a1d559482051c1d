package handler

import (
	"log/slog"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
)

// ErrorResponse is the JSON body for every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON serializes v with the given status. Encoding failures at this
// point can only be programming errors; they are logged, not surfaced.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError writes the standard error body.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// internalError logs err and writes an opaque 500. Details stay in the log;
// the client only learns that something went wrong on our side.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal error", "error", err)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.AccountService.Register: validation error: username is required"
// → "username is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		if tail := msg[i+2:]; tail != "" {
			return tail
		}
	}
	return msg
}

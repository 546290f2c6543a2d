package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/readnest/readnest-server/internal/apperr"
)

// ErrorResponse represents a JSON error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSONError writes a JSON error response
func JSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteError maps a classified error to its status code. Internal errors
// are logged with operation context and surfaced as a generic message.
func WriteError(w http.ResponseWriter, op string, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.Internal(op+" failed", err)
	}

	if appErr.Kind == apperr.KindInternal {
		slog.Error("request failed", "op", op, "error", err)
	}
	JSONError(w, appErr.Public(), appErr.Kind.HTTPStatus())
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

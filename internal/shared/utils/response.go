package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	shared "github.com/dottify/dottify-backend/internal/shared/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// WriteError maps the shared failure taxonomy onto HTTP status codes and
// writes a JSON error body. Unknown errors become a 500 without leaking the
// message.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrAuthenticationRequired):
		WriteJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, shared.ErrForbidden):
		WriteJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, shared.ErrNotFound):
		WriteJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, shared.ErrConflict):
		WriteJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, shared.ErrValidation):
		WriteJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fulfilmenthub/notify-adapter/internal/domain"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondMessage writes the normalized (message, status) pair that every
// terminal branch of the pipeline produces.
func respondMessage(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"message": msg})
}

// statusForError translates validation errors to HTTP status codes.
// All mapping lives here so the handler stays concise.
func statusForError(err error) int {
	var missing *domain.MissingFieldsError
	switch {
	case errors.Is(err, domain.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed
	case errors.Is(err, domain.ErrMissingBody),
		errors.Is(err, domain.ErrNoTemplate),
		errors.As(err, &missing):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

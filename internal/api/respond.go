package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Shuvikm/sonyliv-clone/internal/apperrors"
	"github.com/Shuvikm/sonyliv-clone/internal/config"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeFailure maps err onto a status code. message is used for errors
// without a more specific answer.
func writeFailure(w http.ResponseWriter, r *http.Request, err error, message string) {
	var validation *apperrors.ErrValidation
	var conflict *apperrors.ErrConflict
	var notFound *apperrors.ErrNotFound

	switch {
	case errors.As(err, &validation):
		writeError(w, http.StatusBadRequest, validation.Error())
	case errors.As(err, &conflict):
		writeError(w, http.StatusBadRequest, conflict.Error())
	case errors.As(err, &notFound):
		if notFound.Resource == "user" {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeError(w, http.StatusNotFound, "Content not found")
	case errors.Is(err, &apperrors.ErrUnauthorized{}):
		writeError(w, http.StatusUnauthorized, "Invalid token")
	case errors.Is(err, &apperrors.ErrUnavailable{}):
		writeError(w, http.StatusServiceUnavailable, "Database unavailable")
	default:
		logger := config.GetLogger()
		logger.Error().Err(err).Str("path", r.URL.Path).Msg(message)
		captureError(r, err)
		writeError(w, http.StatusInternalServerError, message)
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &apperrors.ErrValidation{Fields: []string{"body"}}
	}
	return nil
}

// queryInt returns the integer query parameter name, or def when absent or invalid.
func queryInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return def
	}
	return v
}

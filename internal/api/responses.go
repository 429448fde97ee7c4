package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/example/ellinika/internal/database"
	"github.com/example/ellinika/internal/practice"
	"github.com/go-chi/chi/v5/middleware"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error     string            `json:"error"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError maps err to a status code and a client-safe message.
// Details of unexpected errors only go to the log.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := statusForError(err)
	resp := ErrorResponse{
		Error:     safeMessage(err),
		RequestID: middleware.GetReqID(r.Context()),
	}

	var verr *practice.ValidationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
	}

	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", resp.RequestID)
	} else {
		log.Debug("request rejected",
			"error", err,
			"status", status,
			"path", r.URL.Path,
			"request_id", resp.RequestID)
	}

	respondJSON(w, status, resp)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, practice.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, database.ErrDuplicate),
		errors.Is(err, practice.ErrSessionClosed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func safeMessage(err error) string {
	switch {
	case errors.Is(err, practice.ErrValidation):
		return "Invalid request"
	case errors.Is(err, database.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, database.ErrVocabularyItemNotFound):
		return "Vocabulary item not found"
	case errors.Is(err, database.ErrSessionNotFound):
		return "Practice session not found"
	case errors.Is(err, database.ErrNotFound):
		return "Not found"
	case errors.Is(err, database.ErrDuplicateUserCode):
		return "User code already registered"
	case errors.Is(err, practice.ErrSessionClosed):
		return "Practice session is already completed"
	default:
		return "An unexpected error occurred"
	}
}

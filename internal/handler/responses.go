package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so an encoding failure can still become a 500.
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, LogFieldError, err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, LogFieldError, err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// statusForError maps an error to its HTTP status by kind.
func statusForError(err error) int {
	switch domain.KindOf(err) {
	case domain.KindConfiguration, domain.KindInvalidInput:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError logs err and writes the mapped response. Client-caused
// errors echo their message; anything else gets failMsg only.
func respondServiceError(w http.ResponseWriter, r *http.Request, operation, failMsg string, err error) {
	log := logger.FromContext(r.Context())
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Error(LogMsgServiceFailed, LogFieldOperation, operation, LogFieldError, err)
		respondError(w, status, failMsg)
		return
	}
	log.Warn(LogMsgRequestRejected, LogFieldOperation, operation,
		LogFieldKind, domain.KindOf(err).String(), LogFieldError, err)
	respondError(w, status, err.Error())
}

package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/special-brownies/booster-pack/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and validates
// its tags. On failure the response has already been written and the handler
// should return.
//
// Example usage:
//
//	var req OpenPackRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Open pack"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, LogFieldOperation, actionName, LogFieldError, err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, LogFieldOperation, actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// firstNonBlank returns the first value that is not blank, trimmed.
func firstNonBlank(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// GetQueryParamAny returns the first non-blank value among the given query
// parameter spellings. If none is present it writes missingMsg as a 400 and
// returns false; the handler should then return.
func GetQueryParamAny(r *http.Request, w http.ResponseWriter, missingMsg string, names ...string) (string, bool) {
	q := r.URL.Query()
	values := make([]string, len(names))
	for i, name := range names {
		values[i] = q.Get(name)
	}
	value := firstNonBlank(values...)
	if value == "" {
		logger.FromContext(r.Context()).Warn(LogMsgMissingQueryParam, LogFieldParam, strings.Join(names, "/"))
		respondError(w, http.StatusBadRequest, missingMsg)
		return "", false
	}
	return value, true
}

// LogRequestFields logs request details at debug level.
//
//	LogRequestFields(log, "set_id", req.SetID, "seed", req.Seed)
func LogRequestFields(log *slog.Logger, keyvals ...any) {
	if len(keyvals)%2 != 0 {
		log.Warn(LogMsgOddRequestFields)
		return
	}
	log.Debug(LogMsgRequestDetails, keyvals...)
}

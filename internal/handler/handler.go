// Package handler contains the HTTP handlers for the REST API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pc-builder/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response. Code carries the machine
// readable error code; Fields carries per-field validation messages.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps service errors onto HTTP status codes: domain
// errors and validation errors translate to 4xx/5xx with their code and
// fields; anything else is a generic 500.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  validationErr.Error(),
			Code:   model.ErrCodeValidation,
			Fields: validationErr.Fields,
		})
		return
	}

	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusInternalServerError
		switch domainErr.Code {
		case model.ErrCodeInvalidCategory, model.ErrCodeInvalidJSON,
			model.ErrCodeNoValidProducts, model.ErrCodeWooNotConfigured:
			status = http.StatusBadRequest
		case model.ErrCodeProductNotFound, model.ErrCodeBuildNotFound:
			status = http.StatusNotFound
		}
		logger.Warn().Str("code", domainErr.Code).Int("status", status).Msg(domainErr.Message)
		writeJSON(w, status, ErrorResponse{Error: domainErr.Message, Code: domainErr.Code})
		return
	}

	logger.Error().Err(err).Msg("handler error")
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: "internal server error",
		Code:  model.ErrCodeInternalError,
	})
}

// decodeJSON decodes a request body into dst, rejecting malformed JSON.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "request body is not valid JSON")
	}
	return nil
}

package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rpggio/reel/internal/domain/session"
)

// Error codes returned in the error envelope.
const (
	CodeInvalidRequest  = "invalid_request"
	CodeMissingSession  = "missing_session"
	CodeSessionNotFound = "session_not_found"
	CodeNotFound        = "not_found"
	CodeInternal        = "internal"
)

const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error Error `json:"error"`
}

// Error describes a failed request.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DecodeJSON reads a single JSON object from body into v.
func DecodeJSON(body io.Reader, v any) error {
	dec := json.NewDecoder(io.LimitReader(body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	return nil
}

// WriteJSON writes payload with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteError writes an error envelope.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, ErrorResponse{Error: Error{Code: code, Message: message}})
}

// writeDomainError maps service errors to HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		WriteError(w, http.StatusNotFound, CodeSessionNotFound, "session not found")
	case errors.Is(err, session.ErrInvalidInput):
		WriteError(w, http.StatusBadRequest, CodeInvalidRequest, err.Error())
	default:
		WriteError(w, http.StatusInternalServerError, CodeInternal, "internal error")
	}
}

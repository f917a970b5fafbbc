package registration

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

// Response is the JSON envelope of every reply.
type Response struct {
	Code  string       `json:"code,omitempty"`
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failure. Details holds validation messages keyed
// by field path; messages not tied to a field use the "" key.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, status int, code string, data any) {
	writeJSON(w, status, Response{Code: code, Data: data})
}

// writeError maps err to a status code and renders it.
func writeError(w http.ResponseWriter, err error) {
	status, code, message := http.StatusInternalServerError, "internal_error", http.StatusText(http.StatusInternalServerError)
	var details map[string][]string

	switch {
	case validation.IsError(err):
		status, code, message = http.StatusUnprocessableEntity, "validation_error", "The submitted data is invalid"
		details = validation.Details(err)
	case errors.Is(err, ErrUsernameTaken):
		status, code, message = http.StatusConflict, "conflict", "The username is already taken"
		details = map[string][]string{"username": {"is already taken"}}
	case errors.Is(err, ErrAccountNotFound):
		status, code, message = http.StatusNotFound, "not_found", "Account not found"
	case errors.Is(err, ErrInvalidCredentials):
		status, code, message = http.StatusUnauthorized, "unauthorized", "Invalid username or password"
	case errors.Is(err, ErrUnsupportedPayload):
		status, code, message = http.StatusUnsupportedMediaType, "unsupported_media_type", err.Error()
	case errors.Is(err, ErrPayloadTooLarge):
		status, code, message = http.StatusRequestEntityTooLarge, "request_entity_too_large", err.Error()
	case errors.Is(err, ErrMalformedPayload):
		status, code, message = http.StatusBadRequest, "bad_request", err.Error()
	}

	writeJSON(w, status, Response{Error: &ErrorDetail{Code: code, Message: message, Details: details}})
}

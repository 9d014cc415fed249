package api

import (
	"encoding/json"
	"net/http"
)

// DefaultErrorMessage is used when a failed response carries no "error" field.
const DefaultErrorMessage = "API Error"

// APIError is returned when the backend answers with a non-2xx status.
// Error() returns exactly Message.
type APIError struct {
	StatusCode int
	Message    string
	Body       json.RawMessage
}

func (e *APIError) Error() string { return e.Message }

// IsUnauthorized reports a 401/403 response.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsNotFound reports a 404 response.
func (e *APIError) IsNotFound() bool { return e.StatusCode == http.StatusNotFound }

func newAPIError(status int, body json.RawMessage) *APIError {
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &payload)
	msg := payload.Error
	if msg == "" {
		msg = DefaultErrorMessage
	}
	return &APIError{StatusCode: status, Message: msg, Body: body}
}

package client

import (
	"fmt"
	"net/http"
)

// APIError is the server's error envelope for any failed request.
type APIError struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Reason    string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// ValidationError is an APIError carrying per-field messages, raised when
// the server rejects a request body. Callers route Fields to form inputs.
type ValidationError struct {
	APIError
	Fields map[string]string `json:"validationErrors"`
}

func (e *ValidationError) Error() string {
	return e.APIError.Error()
}

// newValidationError is the client-side counterpart of the server's
// validation envelope, raised when a check rejects a request before it
// is sent.
func newValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{
		APIError: APIError{
			Status:  http.StatusBadRequest,
			Reason:  http.StatusText(http.StatusBadRequest),
			Message: "Validation failed",
		},
		Fields: fields,
	}
}

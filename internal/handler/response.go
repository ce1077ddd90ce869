package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// ApiResponse is the envelope every successful non-204 response is wrapped in.
type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ApiError is the error envelope, with an optional per-field validation map.
type ApiError struct {
	Timestamp        string            `json:"timestamp"`
	Status           int               `json:"status"`
	Error            string            `json:"error"`
	Message          string            `json:"message"`
	Path             string            `json:"path"`
	ValidationErrors map[string]string `json:"validationErrors,omitempty"`
}

func WriteSuccess(w http.ResponseWriter, data interface{}, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ApiResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func WriteError(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	writeApiError(w, r, ApiError{
		Status:  statusCode,
		Message: message,
	})
}

func WriteValidationError(w http.ResponseWriter, r *http.Request, message string, fields map[string]string) {
	writeApiError(w, r, ApiError{
		Status:           http.StatusBadRequest,
		Message:          message,
		ValidationErrors: fields,
	})
}

func writeApiError(w http.ResponseWriter, r *http.Request, apiErr ApiError) {
	apiErr.Timestamp = time.Now().Format(time.RFC3339)
	apiErr.Error = http.StatusText(apiErr.Status)
	if r != nil {
		apiErr.Path = r.URL.Path
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	json.NewEncoder(w).Encode(apiErr)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"status": "ok"}, "", http.StatusOK)
}

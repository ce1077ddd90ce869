package test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FedeLo13/ceramic-affair-web/internal/config"
	handlers "github.com/FedeLo13/ceramic-affair-web/internal/handler"
	"github.com/FedeLo13/ceramic-affair-web/internal/service"
)

func newTestHandlers(services *service.Service) *handlers.Handlers {
	cfg := &config.Config{
		JWTSecretKey:  "test-secret-key",
		ServerPort:    8080,
		MaxUploadSize: 10 * 1024 * 1024,
		PublicBaseURL: "http://localhost:8080",
	}
	return handlers.NewHandlers(services, cfg)
}

type errorBody struct {
	Timestamp        string            `json:"timestamp"`
	Status           int               `json:"status"`
	Error            string            `json:"error"`
	Message          string            `json:"message"`
	Path             string            `json:"path"`
	ValidationErrors map[string]string `json:"validationErrors"`
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func assertErrorEnvelope(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int) errorBody {
	t.Helper()
	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	body := decodeError(t, rr)
	assert.Equal(t, expectedStatus, body.Status)
	assert.NotEmpty(t, body.Timestamp)
	assert.NotEmpty(t, body.Path)
	return body
}

type successBody struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func assertSuccessEnvelope(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int) successBody {
	t.Helper()
	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body successBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	return body
}

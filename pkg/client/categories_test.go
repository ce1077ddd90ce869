package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingServer answers every request with a success envelope and counts
// how many arrived.
func countingServer(t *testing.T, data any) (*Client, *atomic.Int64) {
	t.Helper()
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		respondSuccess(w, http.StatusOK, data, "")
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL), &requests
}

func TestCreateCategory_RejectsEmptyNameBeforeAnyRequest(t *testing.T) {
	c, requests := countingServer(t, 1)

	for _, name := range []string{"", "   "} {
		_, err := c.CreateCategory(context.Background(), name)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, http.StatusBadRequest, vErr.Status)
		assert.Equal(t, "is required", vErr.Fields["nombre"])
	}

	assert.Equal(t, int64(0), requests.Load())
}

func TestUpdateCategory_RejectsEmptyNameBeforeAnyRequest(t *testing.T) {
	c, requests := countingServer(t, nil)

	err := c.UpdateCategory(context.Background(), 4, "")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "is required", vErr.Fields["nombre"])
	assert.Equal(t, int64(0), requests.Load())
}

func TestCreateCategory_SendsValidName(t *testing.T) {
	c, requests := countingServer(t, 7)

	id, err := c.CreateCategory(context.Background(), "Bowls")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, int64(1), requests.Load())
}

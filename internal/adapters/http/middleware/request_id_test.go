package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/home-service/internal/adapters/http/middleware"
)

// serveIDs runs the ID middlewares and reports what the handler saw.
func serveIDs(t *testing.T, header http.Header) (requestID, correlationID string, rec *httptest.ResponseRecorder) {
	t.Helper()

	handler := middleware.RequestID()(middleware.CorrelationID()(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			requestID = middleware.RequestIDFromContext(r.Context())
			correlationID = middleware.CorrelationIDFromContext(r.Context())
		}),
	))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", http.NoBody)
	for k, v := range header {
		req.Header[k] = v
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return requestID, correlationID, rec
}

func TestRequestID_MintsUUIDv7(t *testing.T) {
	t.Parallel()

	id, _, rec := serveIDs(t, nil)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Equal(t, id, rec.Header().Get("X-Request-ID"))
}

func TestRequestID_KeepsCallerID(t *testing.T) {
	t.Parallel()

	id, _, rec := serveIDs(t, http.Header{"X-Request-Id": {"gw-4711"}})

	assert.Equal(t, "gw-4711", id)
	assert.Equal(t, "gw-4711", rec.Header().Get("X-Request-ID"))
}

func TestRequestID_ReplacesUnusableCallerID(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"spaces":    "a b",
		"control":   "abc\x1bdef",
		"non-ascii": "ïd",
		"too long":  strings.Repeat("x", 129),
	}

	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			id, _, _ := serveIDs(t, http.Header{"X-Request-Id": {in}})

			assert.NotEqual(t, in, id)
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
		})
	}
}

func TestRequestID_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 50 {
		id, _, _ := serveIDs(t, nil)
		seen[id] = true
	}

	assert.Len(t, seen, 50)
}

func TestRequestIDFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, middleware.RequestIDFromContext(context.Background()))
	assert.Equal(t, "r-1", middleware.RequestIDFromContext(middleware.WithRequestID(context.Background(), "r-1")))
}

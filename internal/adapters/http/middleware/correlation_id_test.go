package middleware_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/home-service/internal/adapters/http/middleware"
)

func TestCorrelationID_KeepsCallerID(t *testing.T) {
	t.Parallel()

	requestID, correlationID, rec := serveIDs(t, http.Header{"X-Correlation-Id": {"checkout-93"}})

	assert.Equal(t, "checkout-93", correlationID)
	assert.NotEqual(t, requestID, correlationID)
	assert.Equal(t, "checkout-93", rec.Header().Get("X-Correlation-ID"))
}

func TestCorrelationID_FallsBackToRequestID(t *testing.T) {
	t.Parallel()

	for name, header := range map[string]http.Header{
		"missing":  nil,
		"unusable": {"X-Correlation-Id": {"two words"}},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			requestID, correlationID, rec := serveIDs(t, header)

			assert.NotEmpty(t, requestID)
			assert.Equal(t, requestID, correlationID)
			assert.Equal(t, requestID, rec.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestCorrelationIDFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, middleware.CorrelationIDFromContext(context.Background()))
	assert.Equal(t, "c-1", middleware.CorrelationIDFromContext(middleware.WithCorrelationID(context.Background(), "c-1")))
}

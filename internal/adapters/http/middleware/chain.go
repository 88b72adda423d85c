package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/home-service/internal/platform/telemetry"
)

// Chain composes multiple middleware into a single middleware. The first
// argument becomes the outermost middleware (executed first on request,
// last on response). This matches the intuitive reading order:
//
//	Chain(Recovery, RequestID, Logging)(handler)
//
// is equivalent to:
//
//	Recovery(RequestID(Logging(handler)))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// Stack returns the service's inbound pipeline in the documented order. A
// zero requestTimeout leaves requests without a deadline.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, requestTimeout time.Duration) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
	}
	if requestTimeout > 0 {
		stack = append(stack, Timeout(requestTimeout))
	}
	return stack
}

package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/home-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/home-service/internal/platform/telemetry"
)

// Tests that install a global TracerProvider must not run in parallel.

func installTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	return exporter
}

func spanAttrs(s tracetest.SpanStub) map[attribute.Key]any {
	out := make(map[attribute.Key]any, len(s.Attributes))
	for _, a := range s.Attributes {
		out[a.Key] = a.Value.AsInterface()
	}
	return out
}

func usersRouter(metrics *telemetry.Metrics, status int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID(), middleware.OpenTelemetry(metrics))
	r.Get("/api/v1/users/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
	return r
}

func TestOpenTelemetry_SpanShape(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantError bool
	}{
		{name: "ok", status: http.StatusOK},
		{name: "client error stays unset", status: http.StatusNotFound},
		{name: "server error", status: http.StatusServiceUnavailable, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := installTracer(t)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/42", http.NoBody)
			req.Header.Set("X-Request-ID", "req-span")
			usersRouter(nil, tt.status).ServeHTTP(httptest.NewRecorder(), req)

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			span := spans[0]

			assert.Equal(t, "HTTP GET /api/v1/users/{id}", span.Name)
			assert.Equal(t, "server", span.SpanKind.String())

			attrs := spanAttrs(span)
			assert.Equal(t, "GET", attrs[telemetry.AttrHTTPMethod])
			assert.Equal(t, "/api/v1/users/{id}", attrs[telemetry.AttrHTTPRoute])
			assert.Equal(t, int64(tt.status), attrs[telemetry.AttrHTTPStatus])
			assert.Equal(t, "req-span", attrs["http.request.id"])

			if tt.wantError {
				assert.Equal(t, codes.Error, span.Status.Code)
			} else {
				assert.Equal(t, codes.Unset, span.Status.Code)
			}
		})
	}
}

func TestOpenTelemetry_UnroutedKeepsRawPath(t *testing.T) {
	exporter := installTracer(t)

	handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/items", http.NoBody))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "HTTP POST /items", spans[0].Name)
	assert.NotContains(t, spanAttrs(spans[0]), telemetry.AttrHTTPRoute)
}

func TestOpenTelemetry_ContinuesIncomingTrace(t *testing.T) {
	exporter := installTracer(t)

	const traceparent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/1", http.NoBody)
	req.Header.Set("traceparent", traceparent)
	usersRouter(nil, http.StatusOK).ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", spans[0].SpanContext.TraceID().String())
	assert.Equal(t, "00f067aa0ba902b7", spans[0].Parent.SpanID().String())
}

func TestOpenTelemetry_RecordsRequestMetrics(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewMetrics(mp, "test")
	require.NoError(t, err)

	router := usersRouter(metrics, http.StatusConflict)
	for range 3 {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/users/9", http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	var total metricdata.Sum[int64]
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name == "http.server.request.total" {
			total = m.Data.(metricdata.Sum[int64])
		}
	}
	require.Len(t, total.DataPoints, 1)
	dp := total.DataPoints[0]
	assert.Equal(t, int64(3), dp.Value)

	route, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute)
	assert.Equal(t, "/api/v1/users/{id}", route.AsString())
	result, _ := dp.Attributes.Value(telemetry.AttrResult)
	assert.Equal(t, "error", result.AsString())
}

func TestOpenTelemetry_NilMetrics(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		usersRouter(nil, http.StatusOK).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users/1", http.NoBody))
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

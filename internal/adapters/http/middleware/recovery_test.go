package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/home-service/internal/adapters/http/middleware"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRecovery_PassesThrough(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/news/3", http.NoBody))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRecovery_PanicBecomesProblem(t *testing.T) {
	t.Parallel()

	for name, value := range map[string]any{
		"string": "nil map write in contact store",
		"error":  assert.AnError,
		"int":    42,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				panic(value)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users/1", http.NoBody))

			require.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Internal Server Error", body["title"])
			assert.Equal(t, "An unexpected error occurred", body["detail"])
		})
	}
}

func TestRecovery_LogsPanicRouteAndStack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Recovery(testLogger(&buf)))
	r.Get("/api/v1/users/{id}", func(http.ResponseWriter, *http.Request) {
		panic("bad user row")
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/users/9", http.NoBody))

	out := buf.String()
	assert.Contains(t, out, "panic recovered")
	assert.Contains(t, out, "bad user row")
	assert.Contains(t, out, "route=/api/v1/users/{id}")
	assert.Contains(t, out, "headers_sent=false")
	assert.Contains(t, out, "goroutine")
}

func TestRecovery_LeavesStartedResponseAlone(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Recovery(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"content":[`))
		panic("encoder failed")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/news", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"content":[`, rec.Body.String())
	assert.Contains(t, buf.String(), "headers_sent=true")
}

// Package middleware holds the inbound HTTP pipeline of the service. Stack
// assembles it in this order:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, Timeout
//
// Every middleware is a plain func(http.Handler) http.Handler.
package middleware

import "net/http"

// statusRecorder remembers the status and body size of a response. Recovery,
// OpenTelemetry and Logging share one recorder per request.
type statusRecorder struct {
	http.ResponseWriter
	status int
	sent   bool
	bytes  int64
}

// recordResponse wraps w, or returns w itself when an outer middleware
// already did.
func recordResponse(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (rec *statusRecorder) WriteHeader(code int) {
	if rec.sent {
		return
	}
	rec.status = code
	rec.sent = true
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	rec.sent = true
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

// Status is the status sent, or 200 if the handler never set one.
func (rec *statusRecorder) Status() int { return rec.status }

// HeaderSent reports whether the status line has gone out.
func (rec *statusRecorder) HeaderSent() bool { return rec.sent }

// BytesWritten is the body size so far.
func (rec *statusRecorder) BytesWritten() int64 { return rec.bytes }

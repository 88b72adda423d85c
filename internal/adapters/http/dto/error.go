package dto

import (
	"cmp"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/home-service/internal/domain"
	"github.com/jsamuelsen11/home-service/internal/platform/logging"
)

// problemType is the RFC 9457 type for problems without a dedicated URI.
const problemType = "about:blank"

// GenericDetail replaces the detail of every 5xx response.
const GenericDetail = "An unexpected error occurred"

// kindStatus lists the domain error kinds in match order. Anything not listed,
// domain.ErrIllegalState included, is a 500.
var kindStatus = []struct {
	kind   error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrBadRequest, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusServiceUnavailable},
}

// ErrorResponse is an RFC 9457 problem details document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one field-level validation failure.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// Problem builds a problem document for status.
func Problem(r *http.Request, status int, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     problemType,
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

// NewErrorResponse classifies err and builds the matching problem document.
// Server-side failures get GenericDetail; client errors carry the message of
// the *domain.Error (or the error text) and, for validation failures, one
// entry per field.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		return Problem(r, status, GenericDetail)
	}

	resp := Problem(r, status, clientMessage(err))
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// StatusOf maps err to its HTTP status code.
func StatusOf(err error) int {
	for _, ks := range kindStatus {
		if errors.Is(err, ks.kind) {
			return ks.status
		}
	}
	return http.StatusInternalServerError
}

// WriteErrorResponse writes the problem document for err. 5xx causes are
// logged with the request logger since the client only sees GenericDetail.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	if resp.Status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.Int("status", resp.Status),
			slog.Any("error", err),
		)
	}
	WriteProblem(w, r, resp)
}

// WriteStatus writes a problem document for a bare status code.
func WriteStatus(w http.ResponseWriter, r *http.Request, status int, detail string) {
	WriteProblem(w, r, Problem(r, status, detail))
}

// WriteProblem writes resp as application/problem+json.
func WriteProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if err := Encode(w, resp); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", err),
		)
	}
}

func clientMessage(err error) string {
	var derr *domain.Error
	if errors.As(err, &derr) {
		return derr.Message
	}
	return err.Error()
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}

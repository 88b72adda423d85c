package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/home-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/home-service/internal/domain"
	"github.com/jsamuelsen11/home-service/internal/platform/logging"
	"github.com/jsamuelsen11/home-service/internal/query"
)

// totalCountHeader carries the total number of matching rows on list
// responses.
const totalCountHeader = "X-Total-Count"

// parseID extracts an int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{
			Fields: map[string]string{param: "must be a valid integer"},
		}
	}
	return id, nil
}

// queryRequest collects the matched route parameters and the raw query
// string of r into a query.Request.
func queryRequest(r *http.Request) query.Request {
	path := query.Params{}
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			// Mounted sub-routers add a catch-all "*" entry.
			if key == "" || key == "*" || i >= len(rctx.URLParams.Values) {
				continue
			}
			path[key] = append(path[key], rctx.URLParams.Values[i])
		}
	}
	return query.Request{Path: path, Query: query.Params(r.URL.Query())}
}

// writeJSON writes v with status. Encode failures can only be logged since the
// header is already out.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := dto.Encode(w, v); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "encoding response failed",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}

// writePage writes a paged list response and its total count header.
func writePage[D, T any](w http.ResponseWriter, r *http.Request, page query.Page[D], convert func(*D) T) {
	w.Header().Set(totalCountHeader, strconv.FormatInt(page.TotalElements, 10))
	writeJSON(w, r, http.StatusOK, dto.ToPageResponse(page, convert))
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false. An empty body is
// accepted only when optional is set.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any, optional bool) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	err := dto.Decode(r.Body, dst)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}
	dto.WriteErrorResponse(w, r, &domain.ValidationError{
		Fields: map[string]string{"body": "invalid JSON"},
	})
	return false
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	return decodeValidated(w, r, dst, false)
}

func decodeValidated[T validatable](w http.ResponseWriter, r *http.Request, dst T, optional bool) bool {
	if !decodeJSONBody(w, r, dst, optional) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

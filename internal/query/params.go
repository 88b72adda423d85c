package query

import (
	"maps"
	"slices"

	"github.com/jsamuelsen11/home-service/internal/domain"
)

// Names of the reserved parameters. They control paging, sorting and
// free-text search and never become filters.
const (
	ParamPageNumber = "page_number"
	ParamPageSize   = "page_size"
	ParamFilter     = "filter"
	ParamSort       = "sort"
)

// Params maps a parameter name to its raw values in arrival order.
type Params map[string][]string

// First returns the first value of name.
func (p Params) First(name string) (string, bool) {
	values, ok := p[name]
	if !ok {
		return "", false
	}
	if len(values) == 0 {
		return "", true
	}
	return values[0], true
}

// Request describes an inbound list or get-one request.
type Request struct {
	Path  Params
	Query Params
}

// Value looks name up in the query parameters first and then in the path
// parameters, returning the first value found.
func (r Request) Value(name string) (string, bool) {
	if v, ok := r.Query.First(name); ok {
		return v, true
	}
	return r.Path.First(name)
}

// Reserved is a parameter excluded from filtering, with the value used when
// the request omits it.
type Reserved struct {
	Name    string
	Default string
}

// DefaultReserved returns the reserved parameters with their stock defaults.
func DefaultReserved() []Reserved {
	return []Reserved{
		{Name: ParamPageNumber, Default: "1"},
		{Name: ParamPageSize, Default: "5"},
		{Name: ParamFilter, Default: ""},
		{Name: ParamSort, Default: "id,desc"},
	}
}

// Filters is the set of filter parameters handed to a Translator. Each key
// names a filterable attribute.
type Filters map[string][]string

// Value returns the first value for key.
func (f Filters) Value(key string) (string, bool) {
	return Params(f).First(key)
}

// Keys returns the filter keys in sorted order.
func (f Filters) Keys() []string {
	return slices.Sorted(maps.Keys(f))
}

// ValidateQuery fails with ErrBadRequest when any query parameter carries
// more than one value. Keys are checked in sorted order.
func ValidateQuery(q Params) error {
	for _, name := range slices.Sorted(maps.Keys(q)) {
		if len(q[name]) > 1 {
			return domain.Errorf(domain.ErrBadRequest, "Query param '%s' has more than one value", name)
		}
	}
	return nil
}

// BuildFilters validates the query parameters and merges path and query
// parameters into Filters, leaving out every reserved name. A non-reserved
// name present in both maps fails with ErrBadRequest.
func BuildFilters(req Request, reserved []Reserved) (Filters, error) {
	if err := ValidateQuery(req.Query); err != nil {
		return nil, err
	}

	excluded := make(map[string]struct{}, len(reserved))
	for _, r := range reserved {
		excluded[r.Name] = struct{}{}
	}

	filters := make(Filters, len(req.Path)+len(req.Query))
	for _, src := range []Params{req.Path, req.Query} {
		for name, values := range src {
			if _, skip := excluded[name]; skip {
				continue
			}
			if _, dup := filters[name]; dup {
				return nil, domain.Errorf(domain.ErrBadRequest, "Request contains same path and query params")
			}
			filters[name] = values
		}
	}
	return filters, nil
}

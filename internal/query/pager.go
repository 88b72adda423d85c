package query

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/home-service/internal/domain"
	"github.com/jsamuelsen11/home-service/internal/platform/logging"
)

// Translator builds an executor predicate of type S from filters. Unknown
// keys and unparsable values fail with ErrBadRequest.
type Translator[S any] interface {
	Specification(f Filters) (S, error)
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc[S any] func(f Filters) (S, error)

// Specification calls fn(f).
func (fn TranslatorFunc[S]) Specification(f Filters) (S, error) {
	return fn(f)
}

// Executor runs a predicate with paging and sorting against a data store.
type Executor[S, D any] interface {
	FindAll(ctx context.Context, spec S, page PageRequest) (Page[D], error)
}

// Querier is the read side every queryable repository exposes.
type Querier[D any] interface {
	GetPage(ctx context.Context, req Request) (Page[D], error)
	GetOne(ctx context.Context, req Request) (D, error)
}

// Options tunes a Pager. Zero values fall back to the stock defaults.
type Options struct {
	DefaultPageSize int
	MaxPageSize     int
	DefaultSort     string
}

// Pager resolves requests into pages through a Translator and an Executor.
type Pager[S, D any] struct {
	translator Translator[S]
	executor   Executor[S, D]
	reserved   []Reserved
	maxSize    int
}

var _ Querier[struct{}] = (*Pager[any, struct{}])(nil)

// NewPager creates a Pager for one entity type.
func NewPager[S, D any](t Translator[S], e Executor[S, D], opts Options) *Pager[S, D] {
	reserved := DefaultReserved()
	for i := range reserved {
		switch reserved[i].Name {
		case ParamPageSize:
			if opts.DefaultPageSize > 0 {
				reserved[i].Default = strconv.Itoa(opts.DefaultPageSize)
			}
		case ParamSort:
			if opts.DefaultSort != "" {
				reserved[i].Default = opts.DefaultSort
			}
		}
	}
	return &Pager[S, D]{
		translator: t,
		executor:   e,
		reserved:   reserved,
		maxSize:    opts.MaxPageSize,
	}
}

// Reserved returns the reserved parameters with the defaults this Pager uses.
func (p *Pager[S, D]) Reserved() []Reserved {
	out := make([]Reserved, len(p.reserved))
	copy(out, p.reserved)
	return out
}

// PageRequest resolves the reserved parameters of req.
func (p *Pager[S, D]) PageRequest(req Request) (PageRequest, error) {
	number, err := p.positive(req, ParamPageNumber)
	if err != nil {
		return PageRequest{}, err
	}
	size, err := p.positive(req, ParamPageSize)
	if err != nil {
		return PageRequest{}, err
	}
	if p.maxSize > 0 && size > p.maxSize {
		return PageRequest{}, domain.Errorf(domain.ErrBadRequest,
			"Query param '%s' must not exceed %d", ParamPageSize, p.maxSize)
	}
	// The row offset (number-1)*size must stay representable.
	if number-1 > math.MaxInt/size {
		return PageRequest{}, domain.Errorf(domain.ErrBadRequest,
			"Query param '%s' is too large for page size %d", ParamPageNumber, size)
	}
	order, err := ParseSort(p.value(req, ParamSort))
	if err != nil {
		return PageRequest{}, err
	}
	return PageRequest{
		Number: number,
		Size:   size,
		Sort:   order,
		Search: strings.TrimSpace(p.value(req, ParamFilter)),
	}, nil
}

// GetPage returns the executor's page of entities matching req as is.
// Filters are built first so that every query parameter, reserved ones
// included, is checked for multiple values before any of them is read.
func (p *Pager[S, D]) GetPage(ctx context.Context, req Request) (Page[D], error) {
	filters, err := BuildFilters(req, p.reserved)
	if err != nil {
		return Page[D]{}, err
	}
	page, err := p.PageRequest(req)
	if err != nil {
		return Page[D]{}, err
	}
	spec, err := p.translator.Specification(filters)
	if err != nil {
		return Page[D]{}, err
	}
	return p.executor.FindAll(ctx, spec, page)
}

// GetOne returns the single entity matching req. No match fails with
// ErrNotFound naming the path parameters; more than one match is an
// ErrIllegalState.
func (p *Pager[S, D]) GetOne(ctx context.Context, req Request) (D, error) {
	var zero D

	page, err := p.GetPage(ctx, req)
	if err != nil {
		return zero, err
	}

	switch {
	case page.TotalElements == 0, page.TotalElements == 1 && len(page.Content) == 0:
		return zero, domain.Errorf(domain.ErrNotFound, "Entity with '%s' is not found", describePath(req.Path))
	case page.TotalElements == 1:
		return page.Content[0], nil
	default:
		err := fmt.Errorf("%w: request expected one element, found %d", domain.ErrIllegalState, page.TotalElements)
		logging.FromContext(ctx).ErrorContext(ctx, "single-result query matched several rows",
			slog.String("operation", "GetOne"),
			slog.String("path", describePath(req.Path)),
			slog.Int64("total_elements", page.TotalElements),
			slog.Any("error", err),
		)
		return zero, err
	}
}

func (p *Pager[S, D]) value(req Request, name string) string {
	if v, ok := req.Value(name); ok {
		return v
	}
	for _, r := range p.reserved {
		if r.Name == name {
			return r.Default
		}
	}
	return ""
}

func (p *Pager[S, D]) positive(req Request, name string) (int, error) {
	raw := p.value(req, name)
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 0, domain.Errorf(domain.ErrBadRequest, "Query param '%s' must be a positive integer, got '%s'", name, raw)
	}
	return n, nil
}

// describePath renders path parameters as "k1: v1 and k2: v2" in key order.
func describePath(path Params) string {
	keys := Filters(path).Keys()
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v, _ := path.First(k)
		parts = append(parts, k+": "+v)
	}
	return strings.Join(parts, " and ")
}

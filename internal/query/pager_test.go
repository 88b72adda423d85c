package query_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/home-service/internal/domain"
	"github.com/jsamuelsen11/home-service/internal/query"
)

type item struct {
	ID    int64
	Email string
}

// sqlTranslator renders filters as a textual predicate over a fixed column set.
func sqlTranslator(columns ...string) query.Translator[string] {
	allowed := make(map[string]bool, len(columns))
	for _, c := range columns {
		allowed[c] = true
	}
	return query.TranslatorFunc[string](func(f query.Filters) (string, error) {
		parts := make([]string, 0, len(f))
		for _, k := range f.Keys() {
			if !allowed[k] {
				return "", domain.Errorf(domain.ErrBadRequest, "unknown filter '%s'", k)
			}
			v, _ := f.Value(k)
			parts = append(parts, fmt.Sprintf("%s = '%s'", k, v))
		}
		return strings.Join(parts, " AND "), nil
	})
}

type recordingExecutor struct {
	mu    sync.Mutex
	page  query.Page[item]
	err   error
	calls int
	spec  string
	req   query.PageRequest
}

func (e *recordingExecutor) FindAll(_ context.Context, spec string, page query.PageRequest) (query.Page[item], error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	e.spec = spec
	e.req = page
	return e.page, e.err
}

func newPager(exec *recordingExecutor, opts query.Options) *query.Pager[string, item] {
	return query.NewPager[string, item](sqlTranslator("id", "email", "cooperationId"), exec, opts)
}

func TestPager_GetPage_Defaults(t *testing.T) {
	t.Parallel()

	exec := &recordingExecutor{page: query.Page[item]{TotalElements: 0}}
	p := newPager(exec, query.Options{})

	_, err := p.GetPage(context.Background(), query.Request{})

	require.NoError(t, err)
	assert.Equal(t, 1, exec.req.Number)
	assert.Equal(t, 0, exec.req.Index())
	assert.Equal(t, 5, exec.req.Size)
	assert.Equal(t, []query.Order{{Field: "id", Desc: true}}, exec.req.Sort)
	assert.Empty(t, exec.req.Search)
	assert.Empty(t, exec.spec)
}

func TestPager_GetPage_PassesParameters(t *testing.T) {
	t.Parallel()

	want := query.Page[item]{Content: []item{{ID: 1, Email: "a@b.com"}}, TotalElements: 11}
	exec := &recordingExecutor{page: want}
	p := newPager(exec, query.Options{})

	got, err := p.GetPage(context.Background(), query.Request{
		Query: query.Params{
			"page_number": {"2"},
			"page_size":   {"10"},
			"email":       {"a@b.com"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, want, got, "the executor's page comes back unmodified")
	assert.Equal(t, 2, exec.req.Number)
	assert.Equal(t, 1, exec.req.Index())
	assert.Equal(t, 10, exec.req.Size)
	assert.Equal(t, "email = 'a@b.com'", exec.spec)
}

func TestPager_GetPage_PathParamsAndSearch(t *testing.T) {
	t.Parallel()

	exec := &recordingExecutor{}
	p := newPager(exec, query.Options{})

	_, err := p.GetPage(context.Background(), query.Request{
		Path:  query.Params{"cooperationId": {"3"}},
		Query: query.Params{"filter": {"  smith "}, "sort": {"email,asc"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "cooperationId = '3'", exec.spec)
	assert.Equal(t, "smith", exec.req.Search)
	assert.Equal(t, []query.Order{{Field: "email"}}, exec.req.Sort)
}

func TestPager_GetPage_ConfiguredDefaults(t *testing.T) {
	t.Parallel()

	exec := &recordingExecutor{}
	p := newPager(exec, query.Options{DefaultPageSize: 20, MaxPageSize: 50, DefaultSort: "email"})

	_, err := p.GetPage(context.Background(), query.Request{})

	require.NoError(t, err)
	assert.Equal(t, 20, exec.req.Size)
	assert.Equal(t, []query.Order{{Field: "email"}}, exec.req.Sort)
}

func TestPager_GetPage_BadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  query.Request
	}{
		{name: "multi-valued filter", req: query.Request{Query: query.Params{"email": {"a", "b"}}}},
		{name: "multi-valued page size", req: query.Request{Query: query.Params{"page_size": {"1", "2"}}}},
		{name: "path and query collide", req: query.Request{Path: query.Params{"id": {"1"}}, Query: query.Params{"id": {"1"}}}},
		{name: "page number not a number", req: query.Request{Query: query.Params{"page_number": {"abc"}}}},
		{name: "page number zero", req: query.Request{Query: query.Params{"page_number": {"0"}}}},
		{name: "page size negative", req: query.Request{Query: query.Params{"page_size": {"-5"}}}},
		{name: "page size above max", req: query.Request{Query: query.Params{"page_size": {"101"}}}},
		{name: "bad sort", req: query.Request{Query: query.Params{"sort": {"desc"}}}},
		{name: "unknown filter key", req: query.Request{Query: query.Params{"nickname": {"bob"}}}},
		{name: "offset overflows", req: query.Request{Query: query.Params{"page_number": {"3689348814741910324"}}}},
		{name: "max int page number", req: query.Request{Query: query.Params{"page_number": {strconv.Itoa(math.MaxInt)}}}},
		{name: "page number beyond int", req: query.Request{Query: query.Params{"page_number": {"9223372036854775808"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			exec := &recordingExecutor{}
			p := newPager(exec, query.Options{MaxPageSize: 100})

			_, err := p.GetPage(context.Background(), tt.req)

			assert.ErrorIs(t, err, domain.ErrBadRequest)
			assert.Zero(t, exec.calls, "executor must not run")
		})
	}
}

func TestPager_GetPage_LargestPageNumber(t *testing.T) {
	t.Parallel()

	exec := &recordingExecutor{}
	p := newPager(exec, query.Options{})
	last := math.MaxInt/5 + 1

	_, err := p.GetPage(context.Background(), query.Request{
		Query: query.Params{"page_number": {strconv.Itoa(last)}},
	})

	require.NoError(t, err)
	assert.Equal(t, last, exec.req.Number)
	assert.Equal(t, (last-1)*5, exec.req.Offset())
	assert.Positive(t, exec.req.Offset())
}

func TestPager_GetPage_MultiValuedPagingNamesParam(t *testing.T) {
	t.Parallel()

	exec := &recordingExecutor{}
	p := newPager(exec, query.Options{})

	_, err := p.GetPage(context.Background(), query.Request{
		Query: query.Params{"page_number": {"1", "abc"}},
	})

	require.ErrorIs(t, err, domain.ErrBadRequest)
	assert.EqualError(t, err, "Query param 'page_number' has more than one value")
}

func TestPager_GetPage_ExecutorError(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")
	exec := &recordingExecutor{err: boom}
	p := newPager(exec, query.Options{})

	_, err := p.GetPage(context.Background(), query.Request{})

	assert.ErrorIs(t, err, boom)
}

func TestPager_GetOne(t *testing.T) {
	t.Parallel()

	req := query.Request{Path: query.Params{"id": {"7"}, "cooperationId": {"3"}}}

	t.Run("exactly one", func(t *testing.T) {
		t.Parallel()
		exec := &recordingExecutor{page: query.Page[item]{Content: []item{{ID: 7}}, TotalElements: 1}}

		got, err := newPager(exec, query.Options{}).GetOne(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, item{ID: 7}, got)
		assert.Equal(t, "cooperationId = '3' AND id = '7'", exec.spec)
	})

	t.Run("none", func(t *testing.T) {
		t.Parallel()
		exec := &recordingExecutor{}

		_, err := newPager(exec, query.Options{}).GetOne(context.Background(), req)

		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.EqualError(t, err, "Entity with 'cooperationId: 3 and id: 7' is not found")
	})

	t.Run("several", func(t *testing.T) {
		t.Parallel()
		exec := &recordingExecutor{page: query.Page[item]{Content: []item{{ID: 1}, {ID: 2}}, TotalElements: 2}}

		_, err := newPager(exec, query.Options{}).GetOne(context.Background(), req)

		assert.ErrorIs(t, err, domain.ErrIllegalState)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("page past the only match", func(t *testing.T) {
		t.Parallel()
		exec := &recordingExecutor{page: query.Page[item]{TotalElements: 1}}

		_, err := newPager(exec, query.Options{}).GetOne(context.Background(), req)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPager_Reserved(t *testing.T) {
	t.Parallel()

	p := newPager(&recordingExecutor{}, query.Options{DefaultPageSize: 25})
	reserved := p.Reserved()

	require.Len(t, reserved, 4)
	assert.Equal(t, query.Reserved{Name: query.ParamPageSize, Default: "25"}, reserved[1])

	reserved[0].Default = "99"
	assert.Equal(t, "1", p.Reserved()[0].Default, "returned slice is a copy")
}

package sqlstore

import (
	"slices"
	"strconv"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/jsamuelsen11/home-service/internal/domain"
	"github.com/jsamuelsen11/home-service/internal/query"
)

// parser converts a raw parameter value into a bind value for its column.
type parser func(raw string) (any, error)

// filterColumn maps one filter key onto a column.
type filterColumn struct {
	column string
	parse  parser
}

// table describes how the query layer sees one table: which filter keys it
// accepts, which fields it sorts by, which columns the free-text search
// covers, and whether disabled rows are hidden.
type table struct {
	name        string
	filters     map[string]filterColumn
	sortable    map[string]string
	search      []string
	softDeletes bool
}

var _ query.Translator[exp.Expression] = (*table)(nil)

// Specification builds the conjunctive WHERE predicate for f. Unknown keys
// and values that do not parse for their column fail with ErrBadRequest.
func (t *table) Specification(f query.Filters) (exp.Expression, error) {
	conds := make([]exp.Expression, 0, len(f)+1)
	if t.softDeletes {
		conds = append(conds, goqu.C("enabled").Eq(true))
	}

	for _, key := range f.Keys() {
		fc, ok := t.filters[key]
		if !ok {
			return nil, domain.Errorf(domain.ErrBadRequest, "Unknown filter parameter '%s'", key)
		}
		raw, _ := f.Value(key)
		v, err := fc.parse(raw)
		if err != nil {
			return nil, domain.Errorf(domain.ErrBadRequest, "Invalid value '%s' for parameter '%s'", raw, key)
		}
		conds = append(conds, goqu.C(fc.column).Eq(v))
	}

	return goqu.And(conds...), nil
}

// searchExpr matches term case-insensitively against any search column.
// LIKE wildcards in term are passed through.
func (t *table) searchExpr(term string) exp.Expression {
	if term == "" || len(t.search) == 0 {
		return nil
	}
	pattern := "%" + term + "%"
	ors := make([]exp.Expression, 0, len(t.search))
	for _, col := range t.search {
		ors = append(ors, goqu.C(col).ILike(pattern))
	}
	return goqu.Or(ors...)
}

// orderBy translates sort fields into ORDER BY terms. The id column is
// appended as a tie-breaker so paging is stable.
func (t *table) orderBy(sort []query.Order) ([]exp.OrderedExpression, error) {
	out := make([]exp.OrderedExpression, 0, len(sort)+1)
	seenID := false
	for _, o := range sort {
		col, ok := t.sortable[o.Field]
		if !ok {
			return nil, domain.Errorf(domain.ErrBadRequest, "Unknown sort field '%s'", o.Field)
		}
		if col == "id" {
			seenID = true
		}
		if o.Desc {
			out = append(out, goqu.C(col).Desc())
		} else {
			out = append(out, goqu.C(col).Asc())
		}
	}
	if !seenID {
		out = append(out, goqu.C("id").Asc())
	}
	return out, nil
}

func parseID(raw string) (any, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 1 {
		return nil, domain.ErrBadRequest
	}
	return id, nil
}

func parseText(raw string) (any, error) {
	return raw, nil
}

func parseBool(raw string) (any, error) {
	return strconv.ParseBool(strings.TrimSpace(raw))
}

func parseOneOf(values ...string) parser {
	return func(raw string) (any, error) {
		v := strings.ToLower(strings.TrimSpace(raw))
		if !slices.Contains(values, v) {
			return nil, domain.ErrBadRequest
		}
		return v, nil
	}
}

package sqlstore

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/jsamuelsen11/home-service/internal/platform/database"
	"github.com/jsamuelsen11/home-service/internal/query"
)

// finder executes query-layer predicates against one table, scanning rows of
// type R and translating them into entities of type D.
type finder[R, D any] struct {
	db       *database.DB
	table    *table
	toDomain func(*R) D
}

var _ query.Executor[exp.Expression, struct{}] = (*finder[struct{}, struct{}])(nil)

// FindAll counts the matching rows, then loads the requested page. No
// second statement runs when the page lies past the last match.
func (f *finder[R, D]) FindAll(ctx context.Context, where exp.Expression, page query.PageRequest) (query.Page[D], error) {
	order, err := f.table.orderBy(page.Sort)
	if err != nil {
		return query.Page[D]{}, err
	}

	ds := f.db.From(f.table.name).Where(where)
	if search := f.table.searchExpr(page.Search); search != nil {
		ds = ds.Where(search)
	}

	var total int64
	if err := f.db.Get(ctx, f.table.name+".count", &total, ds.Select(goqu.COUNT(goqu.Star()))); err != nil {
		return query.Page[D]{}, err
	}
	result := query.Page[D]{Content: []D{}, TotalElements: total, Number: page.Number, Size: page.Size}
	if total == 0 || int64(page.Index()) > (total-1)/int64(page.Size) {
		return result, nil
	}

	var rows []R
	pageDS := ds.Order(order...).Limit(uint(page.Size)).Offset(uint(page.Offset()))
	if err := f.db.Select(ctx, f.table.name+".find_all", &rows, pageDS); err != nil {
		return query.Page[D]{}, err
	}

	result.Content = make([]D, len(rows))
	for i := range rows {
		result.Content[i] = f.toDomain(&rows[i])
	}
	return result, nil
}

// findOne loads the single row matching where.
func (f *finder[R, D]) findOne(ctx context.Context, where exp.Expression) (*R, error) {
	var row R
	if err := f.db.Get(ctx, f.table.name+".find_one", &row, f.db.From(f.table.name).Where(where)); err != nil {
		return nil, err
	}
	return &row, nil
}

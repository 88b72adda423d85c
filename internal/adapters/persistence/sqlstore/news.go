package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/jsamuelsen11/home-service/internal/domain/news"
	"github.com/jsamuelsen11/home-service/internal/platform/database"
	"github.com/jsamuelsen11/home-service/internal/ports"
	"github.com/jsamuelsen11/home-service/internal/query"
)

var newsTable = &table{
	name: "news",
	filters: map[string]filterColumn{
		"id":     {column: "id", parse: parseID},
		"title":  {column: "title", parse: parseText},
		"source": {column: "source", parse: parseText},
	},
	sortable: map[string]string{
		"id":         "id",
		"title":      "title",
		"source":     "source",
		"created_at": "created_at",
		"updated_at": "updated_at",
	},
	search:      []string{"title", "description"},
	softDeletes: true,
}

type newsRow struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Text        string    `db:"body"`
	PhotoURL    string    `db:"photo_url"`
	Source      string    `db:"source"`
	Enabled     bool      `db:"enabled"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func toDomainNews(r *newsRow) news.News {
	return news.News{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Text:        r.Text,
		PhotoURL:    r.PhotoURL,
		Source:      r.Source,
		Enabled:     r.Enabled,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func newsNotFound(id int64) string {
	return fmt.Sprintf("News with id: %d is not found", id)
}

// NewsRepository implements ports.NewsRepository.
type NewsRepository struct {
	*query.Pager[exp.Expression, news.News]
	db     *database.DB
	finder *finder[newsRow, news.News]
}

var _ ports.NewsRepository = (*NewsRepository)(nil)

// NewNewsRepository creates a NewsRepository whose queries use opts.
func NewNewsRepository(db *database.DB, opts query.Options) *NewsRepository {
	f := &finder[newsRow, news.News]{db: db, table: newsTable, toDomain: toDomainNews}
	return &NewsRepository{
		Pager:  query.NewPager[exp.Expression, news.News](newsTable, f, opts),
		db:     db,
		finder: f,
	}
}

func (r *NewsRepository) Create(ctx context.Context, n *news.News) (*news.News, error) {
	ds := r.db.Insert(newsTable.name).Rows(goqu.Record{
		"title":       n.Title,
		"description": n.Description,
		"body":        n.Text,
		"photo_url":   n.PhotoURL,
		"source":      n.Source,
		"enabled":     n.Enabled,
		"created_at":  n.CreatedAt,
		"updated_at":  n.UpdatedAt,
	})
	id, err := r.db.InsertID(ctx, "news.create", ds)
	if err != nil {
		return nil, translateError(err, "")
	}
	created := *n
	created.ID = id
	return &created, nil
}

func (r *NewsRepository) FindByID(ctx context.Context, id int64) (*news.News, error) {
	row, err := r.finder.findOne(ctx, goqu.And(goqu.C("id").Eq(id), goqu.C("enabled").Eq(true)))
	if err != nil {
		return nil, translateError(err, newsNotFound(id))
	}
	n := toDomainNews(row)
	return &n, nil
}

func (r *NewsRepository) Update(ctx context.Context, n *news.News) (*news.News, error) {
	ds := r.db.Update(newsTable.name).
		Set(goqu.Record{
			"title":       n.Title,
			"description": n.Description,
			"body":        n.Text,
			"photo_url":   n.PhotoURL,
			"source":      n.Source,
			"enabled":     n.Enabled,
			"updated_at":  n.UpdatedAt,
		}).
		Where(goqu.C("id").Eq(n.ID))

	res, err := r.db.Exec(ctx, "news.update", ds)
	if err != nil {
		return nil, translateError(err, newsNotFound(n.ID))
	}
	if err := requireAffected(res, newsNotFound(n.ID)); err != nil {
		return nil, err
	}
	updated := *n
	return &updated, nil
}

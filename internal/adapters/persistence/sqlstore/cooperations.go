package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/jsamuelsen11/home-service/internal/domain/cooperation"
	"github.com/jsamuelsen11/home-service/internal/platform/database"
	"github.com/jsamuelsen11/home-service/internal/ports"
	"github.com/jsamuelsen11/home-service/internal/query"
)

var cooperationsTable = &table{
	name: "cooperations",
	filters: map[string]filterColumn{
		"id":    {column: "id", parse: parseID},
		"name":  {column: "name", parse: parseText},
		"usreo": {column: "usreo", parse: parseText},
		"iban":  {column: "iban", parse: parseText},
	},
	sortable: map[string]string{
		"id":         "id",
		"name":       "name",
		"usreo":      "usreo",
		"created_at": "created_at",
	},
	search:      []string{"name"},
	softDeletes: true,
}

type cooperationRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	USREO     string    `db:"usreo"`
	IBAN      string    `db:"iban"`
	Enabled   bool      `db:"enabled"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func toDomainCooperation(r *cooperationRow) cooperation.Cooperation {
	return cooperation.Cooperation{
		ID:        r.ID,
		Name:      r.Name,
		USREO:     r.USREO,
		IBAN:      r.IBAN,
		Enabled:   r.Enabled,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func cooperationNotFound(id int64) string {
	return fmt.Sprintf("Cooperation with id: %d is not found", id)
}

// CooperationRepository implements ports.CooperationRepository.
type CooperationRepository struct {
	*query.Pager[exp.Expression, cooperation.Cooperation]
	db     *database.DB
	finder *finder[cooperationRow, cooperation.Cooperation]
}

var _ ports.CooperationRepository = (*CooperationRepository)(nil)

// NewCooperationRepository creates a CooperationRepository whose queries use opts.
func NewCooperationRepository(db *database.DB, opts query.Options) *CooperationRepository {
	f := &finder[cooperationRow, cooperation.Cooperation]{db: db, table: cooperationsTable, toDomain: toDomainCooperation}
	return &CooperationRepository{
		Pager:  query.NewPager[exp.Expression, cooperation.Cooperation](cooperationsTable, f, opts),
		db:     db,
		finder: f,
	}
}

func (r *CooperationRepository) Create(ctx context.Context, c *cooperation.Cooperation) (*cooperation.Cooperation, error) {
	ds := r.db.Insert(cooperationsTable.name).Rows(goqu.Record{
		"name":       c.Name,
		"usreo":      c.USREO,
		"iban":       c.IBAN,
		"enabled":    c.Enabled,
		"created_at": c.CreatedAt,
		"updated_at": c.UpdatedAt,
	})
	id, err := r.db.InsertID(ctx, "cooperations.create", ds)
	if err != nil {
		return nil, translateError(err, "")
	}
	created := *c
	created.ID = id
	return &created, nil
}

func (r *CooperationRepository) FindByID(ctx context.Context, id int64) (*cooperation.Cooperation, error) {
	row, err := r.finder.findOne(ctx, goqu.And(goqu.C("id").Eq(id), goqu.C("enabled").Eq(true)))
	if err != nil {
		return nil, translateError(err, cooperationNotFound(id))
	}
	c := toDomainCooperation(row)
	return &c, nil
}

func (r *CooperationRepository) ExistsByUSREO(ctx context.Context, usreo string) (bool, error) {
	var n int64
	ds := r.db.From(cooperationsTable.name).Select(goqu.COUNT(goqu.Star())).Where(goqu.C("usreo").Eq(usreo))
	if err := r.db.Get(ctx, "cooperations.exists_by_usreo", &n, ds); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *CooperationRepository) Update(ctx context.Context, c *cooperation.Cooperation) (*cooperation.Cooperation, error) {
	ds := r.db.Update(cooperationsTable.name).
		Set(goqu.Record{
			"name":       c.Name,
			"iban":       c.IBAN,
			"enabled":    c.Enabled,
			"updated_at": c.UpdatedAt,
		}).
		Where(goqu.C("id").Eq(c.ID))

	res, err := r.db.Exec(ctx, "cooperations.update", ds)
	if err != nil {
		return nil, translateError(err, cooperationNotFound(c.ID))
	}
	if err := requireAffected(res, cooperationNotFound(c.ID)); err != nil {
		return nil, err
	}
	updated := *c
	return &updated, nil
}

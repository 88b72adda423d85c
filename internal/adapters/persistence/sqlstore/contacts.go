package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/jsamuelsen11/home-service/internal/domain/contact"
	"github.com/jsamuelsen11/home-service/internal/platform/database"
	"github.com/jsamuelsen11/home-service/internal/ports"
	"github.com/jsamuelsen11/home-service/internal/query"
)

// Contacts are addressed under their owner, so the owner ids arrive as path
// filters named userId and cooperationId.
var contactsTable = &table{
	name: "contacts",
	filters: map[string]filterColumn{
		"id":            {column: "id", parse: parseID},
		"contactId":     {column: "id", parse: parseID},
		"phone":         {column: "phone", parse: parseText},
		"email":         {column: "email", parse: parseText},
		"main":          {column: "main", parse: parseBool},
		"type":          {column: "type", parse: parseOneOf(string(contact.TypePhone), string(contact.TypeEmail))},
		"userId":        {column: "user_id", parse: parseID},
		"cooperationId": {column: "cooperation_id", parse: parseID},
	},
	sortable: map[string]string{
		"id":         "id",
		"type":       "type",
		"main":       "main",
		"phone":      "phone",
		"email":      "email",
		"created_at": "created_at",
	},
	search:      []string{"phone", "email"},
	softDeletes: true,
}

type contactRow struct {
	ID            int64         `db:"id"`
	Type          string        `db:"type"`
	Main          bool          `db:"main"`
	Phone         string        `db:"phone"`
	Email         string        `db:"email"`
	UserID        sql.NullInt64 `db:"user_id"`
	CooperationID sql.NullInt64 `db:"cooperation_id"`
	Enabled       bool          `db:"enabled"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}

func toDomainContact(r *contactRow) contact.Contact {
	c := contact.Contact{
		ID:        r.ID,
		Type:      contact.Type(r.Type),
		Main:      r.Main,
		Phone:     r.Phone,
		Email:     r.Email,
		Enabled:   r.Enabled,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.UserID.Valid {
		c.Owner = contact.UserOwner(r.UserID.Int64)
	} else if r.CooperationID.Valid {
		c.Owner = contact.CooperationOwner(r.CooperationID.Int64)
	}
	return c
}

func nullInt64(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

// ownerExpr restricts a statement to the contacts of owner.
func ownerExpr(owner contact.Owner) exp.Expression {
	if owner.IsUser() {
		return goqu.C("user_id").Eq(*owner.UserID)
	}
	return goqu.C("cooperation_id").Eq(*owner.CooperationID)
}

func contactNotFound(id int64) string {
	return fmt.Sprintf("Contact with id: %d is not found", id)
}

// ContactRepository implements ports.ContactRepository.
type ContactRepository struct {
	*query.Pager[exp.Expression, contact.Contact]
	db     *database.DB
	finder *finder[contactRow, contact.Contact]
}

var _ ports.ContactRepository = (*ContactRepository)(nil)

// NewContactRepository creates a ContactRepository whose queries use opts.
func NewContactRepository(db *database.DB, opts query.Options) *ContactRepository {
	f := &finder[contactRow, contact.Contact]{db: db, table: contactsTable, toDomain: toDomainContact}
	return &ContactRepository{
		Pager:  query.NewPager[exp.Expression, contact.Contact](contactsTable, f, opts),
		db:     db,
		finder: f,
	}
}

func (r *ContactRepository) Create(ctx context.Context, c *contact.Contact) (*contact.Contact, error) {
	ds := r.db.Insert(contactsTable.name).Rows(goqu.Record{
		"type":           c.Type.String(),
		"main":           c.Main,
		"phone":          c.Phone,
		"email":          c.Email,
		"user_id":        nullInt64(c.Owner.UserID),
		"cooperation_id": nullInt64(c.Owner.CooperationID),
		"enabled":        c.Enabled,
		"created_at":     c.CreatedAt,
		"updated_at":     c.UpdatedAt,
	})
	id, err := r.db.InsertID(ctx, "contacts.create", ds)
	if err != nil {
		return nil, translateError(err, "")
	}
	created := *c
	created.ID = id
	return &created, nil
}

func (r *ContactRepository) FindByID(ctx context.Context, owner contact.Owner, id int64) (*contact.Contact, error) {
	row, err := r.finder.findOne(ctx, goqu.And(
		goqu.C("id").Eq(id),
		ownerExpr(owner),
		goqu.C("enabled").Eq(true),
	))
	if err != nil {
		return nil, translateError(err, contactNotFound(id))
	}
	c := toDomainContact(row)
	return &c, nil
}

func (r *ContactRepository) Update(ctx context.Context, c *contact.Contact) (*contact.Contact, error) {
	ds := r.db.Update(contactsTable.name).
		Set(goqu.Record{
			"main":       c.Main,
			"phone":      c.Phone,
			"email":      c.Email,
			"enabled":    c.Enabled,
			"updated_at": c.UpdatedAt,
		}).
		Where(goqu.C("id").Eq(c.ID), ownerExpr(c.Owner))

	res, err := r.db.Exec(ctx, "contacts.update", ds)
	if err != nil {
		return nil, translateError(err, contactNotFound(c.ID))
	}
	if err := requireAffected(res, contactNotFound(c.ID)); err != nil {
		return nil, err
	}
	updated := *c
	return &updated, nil
}

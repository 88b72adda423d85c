package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/jsamuelsen11/home-service/internal/domain"
	"github.com/jsamuelsen11/home-service/internal/domain/invitation"
	"github.com/jsamuelsen11/home-service/internal/domain/user"
	"github.com/jsamuelsen11/home-service/internal/platform/database"
	"github.com/jsamuelsen11/home-service/internal/ports"
	"github.com/jsamuelsen11/home-service/internal/query"
)

var invitationsTable = &table{
	name: "invitations",
	filters: map[string]filterColumn{
		"id":            {column: "id", parse: parseID},
		"email":         {column: "email", parse: parseText},
		"name":          {column: "name", parse: parseText},
		"status":        {column: "sent", parse: parseStatus},
		"role":          {column: "role", parse: parseOneOf(user.RoleUser.String(), user.RoleAdmin.String(), user.RoleCooperationAdmin.String())},
		"cooperationId": {column: "cooperation_id", parse: parseID},
	},
	sortable: map[string]string{
		"id":         "id",
		"name":       "name",
		"email":      "email",
		"sent_at":    "sent_at",
		"created_at": "created_at",
	},
	search: []string{"name", "email"},
}

// parseStatus maps the client-facing status onto the sent column.
func parseStatus(raw string) (any, error) {
	s, ok := invitation.ParseStatus(raw)
	if !ok {
		return nil, domain.ErrBadRequest
	}
	return s == invitation.StatusSent, nil
}

type invitationRow struct {
	ID            int64        `db:"id"`
	Name          string       `db:"name"`
	Email         string       `db:"email"`
	Role          string       `db:"role"`
	CooperationID int64        `db:"cooperation_id"`
	Sent          bool         `db:"sent"`
	SentAt        sql.NullTime `db:"sent_at"`
	CreatedAt     time.Time    `db:"created_at"`
}

func toDomainInvitation(r *invitationRow) invitation.Invitation {
	inv := invitation.Invitation{
		ID:            r.ID,
		Name:          r.Name,
		Email:         r.Email,
		Role:          user.Role(r.Role),
		CooperationID: r.CooperationID,
		Sent:          r.Sent,
		CreatedAt:     r.CreatedAt,
	}
	if r.SentAt.Valid {
		t := r.SentAt.Time
		inv.SentAt = &t
	}
	return inv
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func invitationNotFound(id int64) string {
	return fmt.Sprintf("Invitation with id: %d is not found", id)
}

// InvitationRepository implements ports.InvitationRepository.
type InvitationRepository struct {
	*query.Pager[exp.Expression, invitation.Invitation]
	db     *database.DB
	finder *finder[invitationRow, invitation.Invitation]
}

var _ ports.InvitationRepository = (*InvitationRepository)(nil)

// NewInvitationRepository creates an InvitationRepository whose queries use opts.
func NewInvitationRepository(db *database.DB, opts query.Options) *InvitationRepository {
	f := &finder[invitationRow, invitation.Invitation]{db: db, table: invitationsTable, toDomain: toDomainInvitation}
	return &InvitationRepository{
		Pager:  query.NewPager[exp.Expression, invitation.Invitation](invitationsTable, f, opts),
		db:     db,
		finder: f,
	}
}

func (r *InvitationRepository) Create(ctx context.Context, inv *invitation.Invitation) (*invitation.Invitation, error) {
	ds := r.db.Insert(invitationsTable.name).Rows(goqu.Record{
		"name":           inv.Name,
		"email":          inv.Email,
		"role":           inv.Role.String(),
		"cooperation_id": inv.CooperationID,
		"sent":           inv.Sent,
		"sent_at":        nullTime(inv.SentAt),
		"created_at":     inv.CreatedAt,
	})
	id, err := r.db.InsertID(ctx, "invitations.create", ds)
	if err != nil {
		return nil, translateError(err, "")
	}
	created := *inv
	created.ID = id
	return &created, nil
}

func (r *InvitationRepository) FindByID(ctx context.Context, id int64) (*invitation.Invitation, error) {
	row, err := r.finder.findOne(ctx, goqu.C("id").Eq(id))
	if err != nil {
		return nil, translateError(err, invitationNotFound(id))
	}
	inv := toDomainInvitation(row)
	return &inv, nil
}

func (r *InvitationRepository) FindUnsent(ctx context.Context) ([]invitation.Invitation, error) {
	ds := r.db.From(invitationsTable.name).
		Where(goqu.C("sent").Eq(false)).
		Order(goqu.C("created_at").Asc(), goqu.C("id").Asc())

	var rows []invitationRow
	if err := r.db.Select(ctx, "invitations.find_unsent", &rows, ds); err != nil {
		return nil, err
	}
	out := make([]invitation.Invitation, len(rows))
	for i := range rows {
		out[i] = toDomainInvitation(&rows[i])
	}
	return out, nil
}

func (r *InvitationRepository) Update(ctx context.Context, inv *invitation.Invitation) (*invitation.Invitation, error) {
	ds := r.db.Update(invitationsTable.name).
		Set(goqu.Record{
			"sent":    inv.Sent,
			"sent_at": nullTime(inv.SentAt),
		}).
		Where(goqu.C("id").Eq(inv.ID))

	res, err := r.db.Exec(ctx, "invitations.update", ds)
	if err != nil {
		return nil, translateError(err, invitationNotFound(inv.ID))
	}
	if err := requireAffected(res, invitationNotFound(inv.ID)); err != nil {
		return nil, err
	}
	updated := *inv
	return &updated, nil
}

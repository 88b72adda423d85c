package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/jsamuelsen11/home-service/internal/domain/user"
	"github.com/jsamuelsen11/home-service/internal/platform/database"
	"github.com/jsamuelsen11/home-service/internal/ports"
	"github.com/jsamuelsen11/home-service/internal/query"
)

var usersTable = &table{
	name: "users",
	filters: map[string]filterColumn{
		"id":         {column: "id", parse: parseID},
		"email":      {column: "email", parse: parseText},
		"first_name": {column: "first_name", parse: parseText},
		"last_name":  {column: "last_name", parse: parseText},
	},
	sortable: map[string]string{
		"id":         "id",
		"email":      "email",
		"first_name": "first_name",
		"last_name":  "last_name",
		"created_at": "created_at",
	},
	search:      []string{"email", "first_name", "last_name"},
	softDeletes: true,
}

type userRow struct {
	ID           int64     `db:"id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Enabled      bool      `db:"enabled"`
	Expired      bool      `db:"expired"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func toDomainUser(r *userRow) user.User {
	return user.User{
		ID:           r.ID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Enabled:      r.Enabled,
		Expired:      r.Expired,
		Role:         user.Role(r.Role),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toUserRecord(u *user.User) goqu.Record {
	return goqu.Record{
		"first_name":    u.FirstName,
		"last_name":     u.LastName,
		"email":         u.Email,
		"password_hash": u.PasswordHash,
		"enabled":       u.Enabled,
		"expired":       u.Expired,
		"role":          u.Role.String(),
		"created_at":    u.CreatedAt,
		"updated_at":    u.UpdatedAt,
	}
}

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	*query.Pager[exp.Expression, user.User]
	db     *database.DB
	finder *finder[userRow, user.User]
}

var _ ports.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a UserRepository whose queries use opts.
func NewUserRepository(db *database.DB, opts query.Options) *UserRepository {
	f := &finder[userRow, user.User]{db: db, table: usersTable, toDomain: toDomainUser}
	return &UserRepository{
		Pager:  query.NewPager[exp.Expression, user.User](usersTable, f, opts),
		db:     db,
		finder: f,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	id, err := r.db.InsertID(ctx, "users.create", r.db.Insert(usersTable.name).Rows(toUserRecord(u)))
	if err != nil {
		return nil, translateError(err, "")
	}
	created := *u
	created.ID = id
	created.Password = ""
	return &created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	row, err := r.finder.findOne(ctx, goqu.And(goqu.C("id").Eq(id), goqu.C("enabled").Eq(true)))
	if err != nil {
		return nil, translateError(err, userNotFound(id))
	}
	u := toDomainUser(row)
	return &u, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	ds := r.db.From(usersTable.name).Select(goqu.COUNT(goqu.Star())).Where(goqu.C("email").Eq(email))
	if err := r.db.Get(ctx, "users.exists_by_email", &n, ds); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) (*user.User, error) {
	notFound := userNotFound(u.ID)
	ds := r.db.Update(usersTable.name).
		Set(goqu.Record{
			"first_name": u.FirstName,
			"last_name":  u.LastName,
			"enabled":    u.Enabled,
			"expired":    u.Expired,
			"role":       u.Role.String(),
			"updated_at": u.UpdatedAt,
		}).
		Where(goqu.C("id").Eq(u.ID))

	res, err := r.db.Exec(ctx, "users.update", ds)
	if err != nil {
		return nil, translateError(err, notFound)
	}
	if err := requireAffected(res, notFound); err != nil {
		return nil, err
	}
	updated := *u
	return &updated, nil
}

func userNotFound(id int64) string {
	return fmt.Sprintf("User with id: %d is not found", id)
}

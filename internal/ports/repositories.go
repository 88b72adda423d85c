package ports

import (
	"context"

	"github.com/jsamuelsen11/home-service/internal/domain/contact"
	"github.com/jsamuelsen11/home-service/internal/domain/cooperation"
	"github.com/jsamuelsen11/home-service/internal/domain/invitation"
	"github.com/jsamuelsen11/home-service/internal/domain/news"
	"github.com/jsamuelsen11/home-service/internal/domain/user"
	"github.com/jsamuelsen11/home-service/internal/query"
)

// UserRepository persists users. Query methods only see enabled users.
type UserRepository interface {
	query.Querier[user.User]

	// Create inserts u and returns it with ID and timestamps assigned.
	// Returns domain.ErrConflict if the email is already taken.
	Create(ctx context.Context, u *user.User) (*user.User, error)

	// FindByID returns an enabled user.
	// Returns domain.ErrNotFound if no enabled user has that ID.
	FindByID(ctx context.Context, id int64) (*user.User, error)

	// ExistsByEmail reports whether any user, enabled or not, has the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update writes the mutable fields of u.
	// Returns domain.ErrNotFound if the user does not exist.
	Update(ctx context.Context, u *user.User) (*user.User, error)
}

// CooperationRepository persists cooperations. Query methods only see
// enabled cooperations.
type CooperationRepository interface {
	query.Querier[cooperation.Cooperation]

	Create(ctx context.Context, c *cooperation.Cooperation) (*cooperation.Cooperation, error)

	// FindByID returns domain.ErrNotFound if no enabled cooperation has that ID.
	FindByID(ctx context.Context, id int64) (*cooperation.Cooperation, error)

	ExistsByUSREO(ctx context.Context, usreo string) (bool, error)

	Update(ctx context.Context, c *cooperation.Cooperation) (*cooperation.Cooperation, error)
}

// ContactRepository persists contacts of users and cooperations.
type ContactRepository interface {
	query.Querier[contact.Contact]

	Create(ctx context.Context, c *contact.Contact) (*contact.Contact, error)

	// FindByID returns the enabled contact with the given ID that belongs
	// to owner. Returns domain.ErrNotFound otherwise.
	FindByID(ctx context.Context, owner contact.Owner, id int64) (*contact.Contact, error)

	Update(ctx context.Context, c *contact.Contact) (*contact.Contact, error)
}

// InvitationRepository persists invitations.
type InvitationRepository interface {
	query.Querier[invitation.Invitation]

	Create(ctx context.Context, inv *invitation.Invitation) (*invitation.Invitation, error)

	// FindByID returns domain.ErrNotFound if the invitation does not exist.
	FindByID(ctx context.Context, id int64) (*invitation.Invitation, error)

	// FindUnsent returns every invitation that has not been sent yet, oldest
	// first.
	FindUnsent(ctx context.Context) ([]invitation.Invitation, error)

	Update(ctx context.Context, inv *invitation.Invitation) (*invitation.Invitation, error)
}

// NewsRepository persists news. Query methods only see enabled news.
type NewsRepository interface {
	query.Querier[news.News]

	Create(ctx context.Context, n *news.News) (*news.News, error)

	// FindByID returns domain.ErrNotFound if no enabled news has that ID.
	FindByID(ctx context.Context, id int64) (*news.News, error)

	Update(ctx context.Context, n *news.News) (*news.News, error)
}

// PasswordHasher turns plain-text passwords into stored hashes.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

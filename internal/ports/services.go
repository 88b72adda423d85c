package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/home-service/internal/domain/contact"
	"github.com/jsamuelsen11/home-service/internal/domain/cooperation"
	"github.com/jsamuelsen11/home-service/internal/domain/invitation"
	"github.com/jsamuelsen11/home-service/internal/domain/news"
	"github.com/jsamuelsen11/home-service/internal/domain/user"
	"github.com/jsamuelsen11/home-service/internal/query"
)

// UserService defines the service port for user accounts.
// Implemented by the application layer; called by inbound adapters (handlers).
type UserService interface {
	// CreateUser registers a user with the default role.
	// Returns domain.ErrValidation if the user fails validation and
	// domain.ErrConflict if the email is taken.
	CreateUser(ctx context.Context, u *user.User) (*user.User, error)

	// UpdateUser applies a partial update.
	// Returns domain.ErrNotFound if the user does not exist.
	UpdateUser(ctx context.Context, id int64, patch user.Patch) (*user.User, error)

	// QueryUsers returns the page of users matching the request parameters.
	QueryUsers(ctx context.Context, req query.Request) (query.Page[user.User], error)

	// GetUser returns the single user matching the request parameters.
	GetUser(ctx context.Context, req query.Request) (user.User, error)

	// DeactivateUser disables the account; disabled users disappear from
	// queries. Returns domain.ErrNotFound if the user does not exist.
	DeactivateUser(ctx context.Context, id int64) error
}

// CooperationService defines the service port for cooperations.
type CooperationService interface {
	// CreateCooperation returns domain.ErrConflict when the USREO code is taken.
	CreateCooperation(ctx context.Context, c *cooperation.Cooperation) (*cooperation.Cooperation, error)
	UpdateCooperation(ctx context.Context, id int64, patch cooperation.Patch) (*cooperation.Cooperation, error)
	QueryCooperations(ctx context.Context, req query.Request) (query.Page[cooperation.Cooperation], error)
	GetCooperation(ctx context.Context, req query.Request) (cooperation.Cooperation, error)
	DeactivateCooperation(ctx context.Context, id int64) error
}

// ContactService defines the service port for contacts of users and
// cooperations. Every mutation is scoped to the contact's owner.
type ContactService interface {
	// CreateContact returns domain.ErrNotFound if the owner does not exist.
	CreateContact(ctx context.Context, c *contact.Contact) (*contact.Contact, error)
	UpdateContact(ctx context.Context, owner contact.Owner, id int64, patch contact.Patch) (*contact.Contact, error)
	QueryContacts(ctx context.Context, req query.Request) (query.Page[contact.Contact], error)
	GetContact(ctx context.Context, req query.Request) (contact.Contact, error)
	DeleteContact(ctx context.Context, owner contact.Owner, id int64) error
}

// InvitationService defines the service port for cooperation invitations.
type InvitationService interface {
	// CreateInvitation stores an unsent invitation.
	// Returns domain.ErrNotFound if the cooperation does not exist.
	CreateInvitation(ctx context.Context, inv *invitation.Invitation) (*invitation.Invitation, error)

	// ChangeInvitationStatus marks the invitation as sent now.
	ChangeInvitationStatus(ctx context.Context, id int64) (*invitation.Invitation, error)

	// UpdateSentDateTime marks the invitation as sent at the given time.
	UpdateSentDateTime(ctx context.Context, id int64, sentAt time.Time) (*invitation.Invitation, error)

	// ListActiveInvitations returns invitations that have not been sent yet.
	ListActiveInvitations(ctx context.Context) ([]invitation.Invitation, error)

	QueryInvitations(ctx context.Context, req query.Request) (query.Page[invitation.Invitation], error)
	GetInvitation(ctx context.Context, req query.Request) (invitation.Invitation, error)
}

// NewsService defines the service port for news.
type NewsService interface {
	CreateNews(ctx context.Context, n *news.News) (*news.News, error)
	UpdateNews(ctx context.Context, id int64, patch news.Patch) (*news.News, error)
	QueryNews(ctx context.Context, req query.Request) (query.Page[news.News], error)
	GetNews(ctx context.Context, req query.Request) (news.News, error)
	DeleteNews(ctx context.Context, id int64) error
}

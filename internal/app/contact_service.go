package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/home-service/internal/domain/contact"
	"github.com/jsamuelsen11/home-service/internal/ports"
	"github.com/jsamuelsen11/home-service/internal/query"
)

var _ ports.ContactService = (*ContactService)(nil)

// ContactService implements ports.ContactService. Contacts can only be
// created for an enabled owner, and every lookup is scoped to the owner.
type ContactService struct {
	contacts     ports.ContactRepository
	users        ports.UserRepository
	cooperations ports.CooperationRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewContactService creates a ContactService. A nil logger discards output.
func NewContactService(
	contacts ports.ContactRepository,
	users ports.UserRepository,
	cooperations ports.CooperationRepository,
	logger *slog.Logger,
	opts ...Option,
) *ContactService {
	o := buildOptions(opts)
	return &ContactService{
		contacts:     contacts,
		users:        users,
		cooperations: cooperations,
		logger:       orDiscard(logger),
		now:          o.now,
	}
}

func (s *ContactService) CreateContact(ctx context.Context, c *contact.Contact) (*contact.Contact, error) {
	s.logger.InfoContext(ctx, "creating contact", ownerAttr(c.Owner), slog.String("type", c.Type.String()))

	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureOwner(ctx, c.Owner); err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve contact owner",
			slog.String("operation", "CreateContact"),
			ownerAttr(c.Owner),
			slog.Any("error", err),
		)
		return nil, err
	}

	now := s.now().UTC()
	c.Enabled = true
	c.CreatedAt = now
	c.UpdatedAt = now

	created, err := s.contacts.Create(ctx, c)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create contact",
			slog.String("operation", "CreateContact"),
			ownerAttr(c.Owner),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

func (s *ContactService) UpdateContact(ctx context.Context, owner contact.Owner, id int64, patch contact.Patch) (*contact.Contact, error) {
	s.logger.InfoContext(ctx, "updating contact", ownerAttr(owner), slog.Int64("id", id))

	c, err := s.contacts.FindByID(ctx, owner, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch contact",
			slog.String("operation", "UpdateContact"),
			ownerAttr(owner),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	patch.Apply(c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.UpdatedAt = s.now().UTC()

	updated, err := s.contacts.Update(ctx, c)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update contact",
			slog.String("operation", "UpdateContact"),
			ownerAttr(owner),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

func (s *ContactService) QueryContacts(ctx context.Context, req query.Request) (query.Page[contact.Contact], error) {
	s.logger.InfoContext(ctx, "querying contacts")

	page, err := s.contacts.GetPage(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to query contacts",
			slog.String("operation", "QueryContacts"),
			slog.Any("error", err),
		)
		return query.Page[contact.Contact]{}, err
	}
	return page, nil
}

func (s *ContactService) GetContact(ctx context.Context, req query.Request) (contact.Contact, error) {
	s.logger.InfoContext(ctx, "fetching contact")

	c, err := s.contacts.GetOne(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch contact",
			slog.String("operation", "GetContact"),
			slog.Any("error", err),
		)
		return contact.Contact{}, err
	}
	return c, nil
}

func (s *ContactService) DeleteContact(ctx context.Context, owner contact.Owner, id int64) error {
	s.logger.InfoContext(ctx, "deleting contact", ownerAttr(owner), slog.Int64("id", id))

	c, err := s.contacts.FindByID(ctx, owner, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch contact",
			slog.String("operation", "DeleteContact"),
			ownerAttr(owner),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	c.Enabled = false
	c.UpdatedAt = s.now().UTC()

	if _, err := s.contacts.Update(ctx, c); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete contact",
			slog.String("operation", "DeleteContact"),
			ownerAttr(owner),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

func (s *ContactService) ensureOwner(ctx context.Context, owner contact.Owner) error {
	if owner.IsUser() {
		_, err := s.users.FindByID(ctx, *owner.UserID)
		return err
	}
	_, err := s.cooperations.FindByID(ctx, *owner.CooperationID)
	return err
}

func ownerAttr(owner contact.Owner) slog.Attr {
	switch {
	case owner.UserID != nil:
		return slog.Int64("user_id", *owner.UserID)
	case owner.CooperationID != nil:
		return slog.Int64("cooperation_id", *owner.CooperationID)
	default:
		return slog.String("owner", "none")
	}
}

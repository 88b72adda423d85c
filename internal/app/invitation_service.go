package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/home-service/internal/domain/invitation"
	"github.com/jsamuelsen11/home-service/internal/ports"
	"github.com/jsamuelsen11/home-service/internal/query"
)

var _ ports.InvitationService = (*InvitationService)(nil)

// InvitationService implements ports.InvitationService. It only records
// invitations and their delivery state; delivery itself happens elsewhere.
type InvitationService struct {
	invitations  ports.InvitationRepository
	cooperations ports.CooperationRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewInvitationService creates an InvitationService. A nil logger discards output.
func NewInvitationService(
	invitations ports.InvitationRepository,
	cooperations ports.CooperationRepository,
	logger *slog.Logger,
	opts ...Option,
) *InvitationService {
	o := buildOptions(opts)
	return &InvitationService{
		invitations:  invitations,
		cooperations: cooperations,
		logger:       orDiscard(logger),
		now:          o.now,
	}
}

func (s *InvitationService) CreateInvitation(ctx context.Context, inv *invitation.Invitation) (*invitation.Invitation, error) {
	s.logger.InfoContext(ctx, "creating invitation", slog.Int64("cooperation_id", inv.CooperationID))

	if err := inv.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.cooperations.FindByID(ctx, inv.CooperationID); err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch cooperation",
			slog.String("operation", "CreateInvitation"),
			slog.Int64("cooperation_id", inv.CooperationID),
			slog.Any("error", err),
		)
		return nil, err
	}

	inv.Sent = false
	inv.SentAt = nil
	inv.CreatedAt = s.now().UTC()

	created, err := s.invitations.Create(ctx, inv)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create invitation",
			slog.String("operation", "CreateInvitation"),
			slog.Int64("cooperation_id", inv.CooperationID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

func (s *InvitationService) ChangeInvitationStatus(ctx context.Context, id int64) (*invitation.Invitation, error) {
	return s.markSent(ctx, "ChangeInvitationStatus", id, s.now())
}

func (s *InvitationService) UpdateSentDateTime(ctx context.Context, id int64, sentAt time.Time) (*invitation.Invitation, error) {
	return s.markSent(ctx, "UpdateSentDateTime", id, sentAt)
}

func (s *InvitationService) markSent(ctx context.Context, op string, id int64, at time.Time) (*invitation.Invitation, error) {
	s.logger.InfoContext(ctx, "marking invitation sent", slog.Int64("id", id))

	inv, err := s.invitations.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch invitation",
			slog.String("operation", op),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	inv.MarkSent(at.UTC())

	updated, err := s.invitations.Update(ctx, inv)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update invitation",
			slog.String("operation", op),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

func (s *InvitationService) ListActiveInvitations(ctx context.Context) ([]invitation.Invitation, error) {
	s.logger.InfoContext(ctx, "listing active invitations")

	invs, err := s.invitations.FindUnsent(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list active invitations",
			slog.String("operation", "ListActiveInvitations"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return invs, nil
}

func (s *InvitationService) QueryInvitations(ctx context.Context, req query.Request) (query.Page[invitation.Invitation], error) {
	s.logger.InfoContext(ctx, "querying invitations")

	page, err := s.invitations.GetPage(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to query invitations",
			slog.String("operation", "QueryInvitations"),
			slog.Any("error", err),
		)
		return query.Page[invitation.Invitation]{}, err
	}
	return page, nil
}

func (s *InvitationService) GetInvitation(ctx context.Context, req query.Request) (invitation.Invitation, error) {
	s.logger.InfoContext(ctx, "fetching invitation")

	inv, err := s.invitations.GetOne(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch invitation",
			slog.String("operation", "GetInvitation"),
			slog.Any("error", err),
		)
		return invitation.Invitation{}, err
	}
	return inv, nil
}

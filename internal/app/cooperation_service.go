package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/home-service/internal/domain"
	"github.com/jsamuelsen11/home-service/internal/domain/cooperation"
	"github.com/jsamuelsen11/home-service/internal/ports"
	"github.com/jsamuelsen11/home-service/internal/query"
)

var _ ports.CooperationService = (*CooperationService)(nil)

// CooperationService implements ports.CooperationService.
type CooperationService struct {
	cooperations ports.CooperationRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewCooperationService creates a CooperationService. A nil logger discards output.
func NewCooperationService(cooperations ports.CooperationRepository, logger *slog.Logger, opts ...Option) *CooperationService {
	o := buildOptions(opts)
	return &CooperationService{
		cooperations: cooperations,
		logger:       orDiscard(logger),
		now:          o.now,
	}
}

func (s *CooperationService) CreateCooperation(ctx context.Context, c *cooperation.Cooperation) (*cooperation.Cooperation, error) {
	s.logger.InfoContext(ctx, "creating cooperation", slog.String("usreo", c.USREO))

	if err := c.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.cooperations.ExistsByUSREO(ctx, c.USREO)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check usreo",
			slog.String("operation", "CreateCooperation"),
			slog.Any("error", err),
		)
		return nil, err
	}
	if exists {
		return nil, domain.Errorf(domain.ErrConflict, "Cooperation with usreo %s already exists", c.USREO)
	}

	now := s.now().UTC()
	c.Enabled = true
	c.CreatedAt = now
	c.UpdatedAt = now

	created, err := s.cooperations.Create(ctx, c)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create cooperation",
			slog.String("operation", "CreateCooperation"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

func (s *CooperationService) UpdateCooperation(ctx context.Context, id int64, patch cooperation.Patch) (*cooperation.Cooperation, error) {
	s.logger.InfoContext(ctx, "updating cooperation", slog.Int64("id", id))

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	c, err := s.cooperations.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch cooperation",
			slog.String("operation", "UpdateCooperation"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	patch.Apply(c)
	c.UpdatedAt = s.now().UTC()

	updated, err := s.cooperations.Update(ctx, c)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update cooperation",
			slog.String("operation", "UpdateCooperation"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

func (s *CooperationService) QueryCooperations(ctx context.Context, req query.Request) (query.Page[cooperation.Cooperation], error) {
	s.logger.InfoContext(ctx, "querying cooperations")

	page, err := s.cooperations.GetPage(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to query cooperations",
			slog.String("operation", "QueryCooperations"),
			slog.Any("error", err),
		)
		return query.Page[cooperation.Cooperation]{}, err
	}
	return page, nil
}

func (s *CooperationService) GetCooperation(ctx context.Context, req query.Request) (cooperation.Cooperation, error) {
	s.logger.InfoContext(ctx, "fetching cooperation")

	c, err := s.cooperations.GetOne(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch cooperation",
			slog.String("operation", "GetCooperation"),
			slog.Any("error", err),
		)
		return cooperation.Cooperation{}, err
	}
	return c, nil
}

func (s *CooperationService) DeactivateCooperation(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deactivating cooperation", slog.Int64("id", id))

	c, err := s.cooperations.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch cooperation",
			slog.String("operation", "DeactivateCooperation"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	c.Enabled = false
	c.UpdatedAt = s.now().UTC()

	if _, err := s.cooperations.Update(ctx, c); err != nil {
		s.logger.ErrorContext(ctx, "failed to deactivate cooperation",
			slog.String("operation", "DeactivateCooperation"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

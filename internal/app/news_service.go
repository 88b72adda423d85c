package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/home-service/internal/domain/news"
	"github.com/jsamuelsen11/home-service/internal/ports"
	"github.com/jsamuelsen11/home-service/internal/query"
)

var _ ports.NewsService = (*NewsService)(nil)

// NewsService implements ports.NewsService.
type NewsService struct {
	news   ports.NewsRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewNewsService creates a NewsService. A nil logger discards output.
func NewNewsService(repo ports.NewsRepository, logger *slog.Logger, opts ...Option) *NewsService {
	o := buildOptions(opts)
	return &NewsService{
		news:   repo,
		logger: orDiscard(logger),
		now:    o.now,
	}
}

func (s *NewsService) CreateNews(ctx context.Context, n *news.News) (*news.News, error) {
	s.logger.InfoContext(ctx, "creating news", slog.String("title", n.Title))

	if err := n.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	n.Enabled = true
	n.CreatedAt = now
	n.UpdatedAt = now

	created, err := s.news.Create(ctx, n)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create news",
			slog.String("operation", "CreateNews"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

func (s *NewsService) UpdateNews(ctx context.Context, id int64, patch news.Patch) (*news.News, error) {
	s.logger.InfoContext(ctx, "updating news", slog.Int64("id", id))

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	n, err := s.news.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch news",
			slog.String("operation", "UpdateNews"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	patch.Apply(n)
	n.UpdatedAt = s.now().UTC()

	updated, err := s.news.Update(ctx, n)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update news",
			slog.String("operation", "UpdateNews"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

func (s *NewsService) QueryNews(ctx context.Context, req query.Request) (query.Page[news.News], error) {
	s.logger.InfoContext(ctx, "querying news")

	page, err := s.news.GetPage(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to query news",
			slog.String("operation", "QueryNews"),
			slog.Any("error", err),
		)
		return query.Page[news.News]{}, err
	}
	return page, nil
}

func (s *NewsService) GetNews(ctx context.Context, req query.Request) (news.News, error) {
	s.logger.InfoContext(ctx, "fetching news")

	n, err := s.news.GetOne(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch news",
			slog.String("operation", "GetNews"),
			slog.Any("error", err),
		)
		return news.News{}, err
	}
	return n, nil
}

func (s *NewsService) DeleteNews(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting news", slog.Int64("id", id))

	n, err := s.news.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch news",
			slog.String("operation", "DeleteNews"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	n.Enabled = false
	n.UpdatedAt = s.now().UTC()

	if _, err := s.news.Update(ctx, n); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete news",
			slog.String("operation", "DeleteNews"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

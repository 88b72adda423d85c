package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/home-service/internal/domain"
	"github.com/jsamuelsen11/home-service/internal/domain/user"
	"github.com/jsamuelsen11/home-service/internal/ports"
	"github.com/jsamuelsen11/home-service/internal/query"
)

var _ ports.UserService = (*UserService)(nil)

// UserService implements ports.UserService. New users always start enabled,
// unexpired and with the plain user role; the password is hashed before it
// reaches the repository.
type UserService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	logger *slog.Logger
	now    func() time.Time
}

// NewUserService creates a UserService. A nil logger discards output.
func NewUserService(users ports.UserRepository, hasher ports.PasswordHasher, logger *slog.Logger, opts ...Option) *UserService {
	o := buildOptions(opts)
	return &UserService{
		users:  users,
		hasher: hasher,
		logger: orDiscard(logger),
		now:    o.now,
	}
}

func (s *UserService) CreateUser(ctx context.Context, u *user.User) (*user.User, error) {
	s.logger.InfoContext(ctx, "creating user")

	if err := u.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByEmail(ctx, u.Email)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check email",
			slog.String("operation", "CreateUser"),
			slog.Any("error", err),
		)
		return nil, err
	}
	if exists {
		return nil, domain.Errorf(domain.ErrConflict, "User with email %s already exists", u.Email)
	}

	hash, err := s.hasher.Hash(u.Password)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password",
			slog.String("operation", "CreateUser"),
			slog.Any("error", err),
		)
		return nil, err
	}

	now := s.now().UTC()
	u.PasswordHash = hash
	u.Password = ""
	u.Enabled = true
	u.Expired = false
	u.Role = user.RoleUser
	u.CreatedAt = now
	u.UpdatedAt = now

	created, err := s.users.Create(ctx, u)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create user",
			slog.String("operation", "CreateUser"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, patch user.Patch) (*user.User, error) {
	s.logger.InfoContext(ctx, "updating user", slog.Int64("id", id))

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch user",
			slog.String("operation", "UpdateUser"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	patch.Apply(u)
	u.UpdatedAt = s.now().UTC()

	updated, err := s.users.Update(ctx, u)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update user",
			slog.String("operation", "UpdateUser"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

func (s *UserService) QueryUsers(ctx context.Context, req query.Request) (query.Page[user.User], error) {
	s.logger.InfoContext(ctx, "querying users")

	page, err := s.users.GetPage(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to query users",
			slog.String("operation", "QueryUsers"),
			slog.Any("error", err),
		)
		return query.Page[user.User]{}, err
	}
	return page, nil
}

func (s *UserService) GetUser(ctx context.Context, req query.Request) (user.User, error) {
	s.logger.InfoContext(ctx, "fetching user")

	u, err := s.users.GetOne(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch user",
			slog.String("operation", "GetUser"),
			slog.Any("error", err),
		)
		return user.User{}, err
	}
	return u, nil
}

func (s *UserService) DeactivateUser(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deactivating user", slog.Int64("id", id))

	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch user",
			slog.String("operation", "DeactivateUser"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	u.Enabled = false
	u.UpdatedAt = s.now().UTC()

	if _, err := s.users.Update(ctx, u); err != nil {
		s.logger.ErrorContext(ctx, "failed to deactivate user",
			slog.String("operation", "DeactivateUser"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/home-service/internal/adapters/http"
	"github.com/jsamuelsen11/home-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/home-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/home-service/internal/adapters/persistence/sqlstore"

	"github.com/jsamuelsen11/home-service/internal/app"
	"github.com/jsamuelsen11/home-service/internal/platform/config"
	"github.com/jsamuelsen11/home-service/internal/platform/database"
	"github.com/jsamuelsen11/home-service/internal/platform/health"
	"github.com/jsamuelsen11/home-service/internal/platform/logging"
	"github.com/jsamuelsen11/home-service/internal/platform/password"
	"github.com/jsamuelsen11/home-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/home-service/internal/ports"
	"github.com/jsamuelsen11/home-service/internal/query"
)

const (
	otelShutdownTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Connect (and migrate) before resolving anything that queries.
	db, err := do.Invoke[*database.DB](injector)
	if err != nil {
		return fmt.Errorf("connecting database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("database close error", slog.Any("error", err))
		}
	}()

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(db)

	if err := server.Listen(); err != nil {
		return err
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests within server.shutdown_timeout.
	if err := server.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := providers.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*database.DB, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		db, err := database.Open(ctx, cfg.Database, metrics, logger)
		if err != nil {
			return nil, err
		}
		if !cfg.Database.AutoMigrate {
			return db, nil
		}
		fsys, err := sqlstore.Migrations(cfg.Database.Driver)
		if err == nil {
			err = db.Migrate(ctx, fsys)
		}
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrating database: %w", err)
		}
		return db, nil
	})

	do.ProvideValue(injector, query.Options{
		DefaultPageSize: cfg.Query.DefaultPageSize,
		MaxPageSize:     cfg.Query.MaxPageSize,
		DefaultSort:     cfg.Query.DefaultSort,
	})

	registerRepositories(injector)
	registerServices(injector, cfg, logger)
	registerHandlers(injector)

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		h := adapthttp.Handlers{
			Users:        do.MustInvoke[*handlers.UserHandler](i),
			Cooperations: do.MustInvoke[*handlers.CooperationHandler](i),
			Contacts:     do.MustInvoke[*handlers.ContactHandler](i),
			Invitations:  do.MustInvoke[*handlers.InvitationHandler](i),
			News:         do.MustInvoke[*handlers.NewsHandler](i),
			Health:       do.MustInvoke[*handlers.HealthHandler](i),
		}
		return adapthttp.NewRouter(h, middleware.Stack(logger, metrics, cfg.Server.RequestTimeout)...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

func registerRepositories(injector *do.RootScope) {
	do.Provide(injector, func(i do.Injector) (ports.UserRepository, error) {
		return sqlstore.NewUserRepository(do.MustInvoke[*database.DB](i), do.MustInvoke[query.Options](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.CooperationRepository, error) {
		return sqlstore.NewCooperationRepository(do.MustInvoke[*database.DB](i), do.MustInvoke[query.Options](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.ContactRepository, error) {
		return sqlstore.NewContactRepository(do.MustInvoke[*database.DB](i), do.MustInvoke[query.Options](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.InvitationRepository, error) {
		return sqlstore.NewInvitationRepository(do.MustInvoke[*database.DB](i), do.MustInvoke[query.Options](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.NewsRepository, error) {
		return sqlstore.NewNewsRepository(do.MustInvoke[*database.DB](i), do.MustInvoke[query.Options](i)), nil
	})
}

func registerServices(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.PasswordHasher, error) {
		return password.NewBcrypt(cfg.Security.BcryptCost), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UserService, error) {
		return app.NewUserService(
			do.MustInvoke[ports.UserRepository](i),
			do.MustInvoke[ports.PasswordHasher](i),
			logger,
		), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.CooperationService, error) {
		return app.NewCooperationService(do.MustInvoke[ports.CooperationRepository](i), logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.ContactService, error) {
		return app.NewContactService(
			do.MustInvoke[ports.ContactRepository](i),
			do.MustInvoke[ports.UserRepository](i),
			do.MustInvoke[ports.CooperationRepository](i),
			logger,
		), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.InvitationService, error) {
		return app.NewInvitationService(
			do.MustInvoke[ports.InvitationRepository](i),
			do.MustInvoke[ports.CooperationRepository](i),
			logger,
		), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.NewsService, error) {
		return app.NewNewsService(do.MustInvoke[ports.NewsRepository](i), logger), nil
	})
}

func registerHandlers(injector *do.RootScope) {
	do.Provide(injector, func(i do.Injector) (*handlers.UserHandler, error) {
		return handlers.NewUserHandler(do.MustInvoke[ports.UserService](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.CooperationHandler, error) {
		return handlers.NewCooperationHandler(do.MustInvoke[ports.CooperationService](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.ContactHandler, error) {
		return handlers.NewContactHandler(do.MustInvoke[ports.ContactService](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.InvitationHandler, error) {
		return handlers.NewInvitationHandler(do.MustInvoke[ports.InvitationService](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.NewsHandler, error) {
		return handlers.NewNewsHandler(do.MustInvoke[ports.NewsService](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})
}

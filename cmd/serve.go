package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Harshvardhan-91/Project-Management/config"
	"github.com/Harshvardhan-91/Project-Management/internal/oapi"
	"github.com/Harshvardhan-91/Project-Management/internal/repository"
	"github.com/Harshvardhan-91/Project-Management/internal/repository/postgres"
	"github.com/Harshvardhan-91/Project-Management/internal/transport/http/middleware"
	"github.com/Harshvardhan-91/Project-Management/internal/transport/http/server/handlers-fiber"
	"github.com/Harshvardhan-91/Project-Management/internal/usecase"
	"github.com/Harshvardhan-91/Project-Management/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			return postgres.Migrate(cmd.Context(), cfg.Postgres)
		},
	}
}

func serve(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return err
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return err
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	uc := usecase.New(log, ctx, repo, cfg.HTTP.RequestTimeout, cfg.Search.MinQueryLength)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
		ErrorHandler: handlers_fiber.ErrorHandler,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	serv.Use(middleware.RequestLogger(log))

	h := handlers_fiber.NewHandler(log, uc)
	serv.Get("/healthz", h.Healthz)
	oapi.RegisterHandlers(serv, h)

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- serv.Listen(cfg.ServerAddr())
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			log.Errorw("failed to start server", "error", err)
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := serv.ShutdownWithContext(shutdownCtx); err != nil {
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout, "error", err)
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/socialai/socialai-backend/api/routes"
	"github.com/socialai/socialai-backend/internal/activitylog"
	"github.com/socialai/socialai-backend/internal/ai"
	"github.com/socialai/socialai-backend/internal/analytics"
	"github.com/socialai/socialai-backend/internal/auth"
	"github.com/socialai/socialai-backend/internal/calendar"
	"github.com/socialai/socialai-backend/internal/documents"
	"github.com/socialai/socialai-backend/internal/notifications"
	"github.com/socialai/socialai-backend/internal/posts"
	"github.com/socialai/socialai-backend/internal/socialaccounts"
	"github.com/socialai/socialai-backend/internal/teams"
	"github.com/socialai/socialai-backend/internal/templates"
	"github.com/socialai/socialai-backend/internal/users"
	"github.com/socialai/socialai-backend/pkg/auth/session"
	"github.com/socialai/socialai-backend/pkg/config"
	"github.com/socialai/socialai-backend/pkg/db"
	"github.com/socialai/socialai-backend/pkg/logger"
	"github.com/socialai/socialai-backend/pkg/migrate"
	"github.com/socialai/socialai-backend/pkg/redis"
	"github.com/socialai/socialai-backend/pkg/security"
	"github.com/socialai/socialai-backend/pkg/storage/local"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	if err := run(cfg, logg); err != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.DB, cfg.Features.UseSQLite, logg)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, dbClient.Close()) }()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		return err
	}

	redisClient, err := redis.New(ctx, cfg.Redis, logg)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, redisClient.Close()) }()

	sessions, err := session.NewRegistry(redisClient, cfg.JWT)
	if err != nil {
		return err
	}

	vault, err := security.NewTokenVault(cfg.Vault.TokenKey)
	if err != nil {
		return err
	}

	fileStore, err := local.NewStore(ctx, cfg.Storage, logg)
	if err != nil {
		return err
	}

	gormDB := dbClient.DB()

	activityService, err := activitylog.NewService(activitylog.NewRepository(gormDB), logg)
	if err != nil {
		return err
	}
	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:    users.NewRepository(gormDB),
		Sessions:    sessions,
		Activity:    activityService,
		JWTConfig:   cfg.JWT,
		PasswordCfg: cfg.Password,
	})
	if err != nil {
		return err
	}
	userService, err := users.NewService(users.NewRepository(gormDB))
	if err != nil {
		return err
	}
	teamService, err := teams.NewService(teams.NewRepository(gormDB), activityService)
	if err != nil {
		return err
	}
	notificationService, err := notifications.NewService(notifications.NewRepository(gormDB), logg)
	if err != nil {
		return err
	}
	postService, err := posts.NewService(posts.ServiceParams{
		Repo:     posts.NewRepository(gormDB),
		Activity: activityService,
		Notifier: notificationService,
	})
	if err != nil {
		return err
	}
	templateService, err := templates.NewService(templates.NewRepository(gormDB), activityService)
	if err != nil {
		return err
	}
	generator := ai.NewGenerator(cfg.AI)
	documentService, err := documents.NewService(documents.ServiceParams{
		Repo:       documents.NewRepository(gormDB),
		Files:      fileStore,
		Summarizer: generator,
		Activity:   activityService,
		Logger:     logg,
	})
	if err != nil {
		return err
	}
	calendarService, err := calendar.NewService(calendar.NewRepository(gormDB), activityService)
	if err != nil {
		return err
	}
	accountService, err := socialaccounts.NewService(socialaccounts.ServiceParams{
		Repo:     socialaccounts.NewRepository(gormDB),
		Vault:    vault,
		Activity: activityService,
	})
	if err != nil {
		return err
	}
	analyticsService, err := analytics.NewService(analytics.NewRepository(gormDB))
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := routes.NewRouter(cfg, logg, registry, dbClient, redisClient, sessions, fileStore.Root(), routes.Services{
		Auth:           authService,
		Users:          userService,
		Teams:          teamService,
		Posts:          postService,
		Templates:      templateService,
		Documents:      documentService,
		Calendar:       calendarService,
		SocialAccounts: accountService,
		Analytics:      analyticsService,
		Notifications:  notificationService,
		Activity:       activityService,
		AI:             generator,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	startCtx := logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "addr": addr})
	logg.Info(startCtx, "starting api server")

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logg.Info(context.Background(), "shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

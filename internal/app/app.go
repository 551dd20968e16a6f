package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/adapter/postgres"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/adapter/postgres/docstore"
	tokenrepo "github.com/noor-saray-dubai/admin-panel-sub002/internal/adapter/postgres/token"
	userrepo "github.com/noor-saray-dubai/admin-panel-sub002/internal/adapter/postgres/user"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/adapter/redisdraft"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/auth"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/config"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
	authsvc "github.com/noor-saray-dubai/admin-panel-sub002/internal/service/auth"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/service/catalog"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/service/formsession"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/transport/middleware"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/transport/rest"
)

// rateLimits is the per-client request budget: tight on auth (login
// guessing), wide on form endpoints (field edits arrive at typing speed).
var rateLimits = middleware.Limits{
	PerMinute:      300,
	AuthPerMinute:  30,
	FormsPerMinute: 900,
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and Redis, wires services and the HTTP stack, and serves until
// the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	defer redisClient.Close()

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	passwordHasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	authService := authsvc.NewService(logger, users, tokens, jwtManager, passwordHasher, cfg.Auth)

	repos, err := catalog.Repos(func(c domain.Collection) (*docstore.Repo, error) {
		return docstore.New(pool, c)
	})
	if err != nil {
		return err
	}
	catalogService := catalog.NewService(logger, repos, users, txManager)

	draftFactory := redisdraft.NewFactory(redisClient, cfg.Forms.DraftTTL)
	formsService := formsession.NewService(logger, catalogService, catalogService, draftFactory)

	mux := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
		Auth:    rest.NewAuthHandler(authService, logger),
		Admin:   rest.NewAdminHandler(authService, logger),
		Catalog: rest.NewCatalogHandler(catalogService, logger),
		Forms:   rest.NewFormsHandler(formsService, logger),
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(rateLimits),
		middleware.Auth(authService),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

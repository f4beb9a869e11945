package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	"articles-api/internal/config"
	pgRepo "articles-api/internal/infra/adapter/persistence/postgres"
	"articles-api/internal/infra/db"
	"articles-api/internal/infra/password"
	"articles-api/internal/observability/logging"
	"articles-api/internal/observability/tracing"
	"articles-api/internal/resilience/circuitbreaker"

	articleUC "articles-api/internal/usecase/article"
	"articles-api/internal/usecase/permission"
	regUC "articles-api/internal/usecase/registration"
	reviewUC "articles-api/internal/usecase/review"
	userUC "articles-api/internal/usecase/user"

	hhttp "articles-api/internal/handler/http"
	harticle "articles-api/internal/handler/http/article"
	hauth "articles-api/internal/handler/http/auth"
	hregistration "articles-api/internal/handler/http/registration"
	"articles-api/internal/handler/http/requestid"
	hreview "articles-api/internal/handler/http/review"
	huser "articles-api/internal/handler/http/user"
	authservice "articles-api/internal/service/auth"

	_ "articles-api/docs" // swagger docs
)

// @title           Articles API
// @version         1.0
// @description     Users, co-authored articles and reviews with ownership-based edit permissions.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT issued by POST /auth/token, sent as "Bearer {token}".

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 10 * time.Second
)

var publicEndpoints = []string{
	"/auth/token", "/registration", "/health", "/ready", "/live", "/metrics", "/swagger/",
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.NewLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	shutdownTracing, err := tracing.Init("articles-api", cfg.Version)
	if err != nil {
		logger.Error("failed to init tracing", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger, cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler := setupServer(logger, cfg, database)
	if err := runServer(logger, cfg, handler); err != nil {
		logger.Error("server failed", slog.Any("error", err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownTracing(ctx); err != nil {
		logger.Error("failed to flush traces", slog.Any("error", err))
	}
}

// initDatabase opens the pool, waiting for the database, and applies the schema.
func initDatabase(logger *slog.Logger, cfg *config.Config) *sql.DB {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	database, err := db.Open(ctx, cfg.DatabaseURL, db.ConnectionConfigFromEnv())
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(ctx, database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// setupServer builds repositories, services and routes and returns the root
// handler wrapped in the middleware chain.
func setupServer(logger *slog.Logger, cfg *config.Config, database *sql.DB) http.Handler {
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	users := pgRepo.NewUserRepo(breaker)
	articles := pgRepo.NewArticleRepo(breaker)
	reviews := pgRepo.NewReviewRepo(breaker)
	authorships := pgRepo.NewAuthorshipRepo(breaker)

	hasher := password.NewBcryptHasher(cfg.BcryptCost)

	userSvc := &userUC.Service{Repo: users, Articles: articles, Authorships: authorships, Hasher: hasher}
	articleSvc := &articleUC.Service{Repo: articles, Authorships: authorships, Users: users}
	reviewSvc := &reviewUC.Service{Repo: reviews, Users: users, Articles: articles}
	regSvc := &regUC.Service{Users: userSvc, Hasher: hasher}
	checker := &permission.Checker{Users: users}

	authSvc := authservice.NewAuthService(&authservice.UserStoreProvider{Users: users, Hasher: hasher}, publicEndpoints)
	tokens := hauth.NewTokens(cfg.JWT)

	authLimiter := hhttp.NewRateLimiter(cfg.AuthRateLimit)
	logger.Info("auth rate limit configured", slog.Int("per_minute", cfg.AuthRateLimit))

	mux := http.NewServeMux()
	mux.Handle("POST /auth/token", authLimiter.Limit(hauth.TokenHandler(authSvc, tokens)))
	hregistration.Register(mux, regSvc, authLimiter.Limit)

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Breaker: breaker, Version: cfg.Version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	huser.Register(mux, userSvc, checker)
	harticle.Register(mux, articleSvc, checker)
	hreview.Register(mux, reviewSvc, checker)

	return hhttp.Chain(mux,
		hhttp.Recover(logger),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.SecurityHeaders,
		hhttp.MetricsMiddleware,
		hhttp.InputLimits(maxBodyBytes),
		hauth.Authn(tokens, users, authSvc),
	)
}

// runServer serves until SIGINT or SIGTERM, then drains in-flight requests.
func runServer(logger *slog.Logger, cfg *config.Config, handler http.Handler) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTPAddr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	logger.Info("server stopped")
	return err
}

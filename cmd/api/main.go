package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"newsboard/internal/common/pagination"
	"newsboard/internal/config"
	pgRepo "newsboard/internal/infra/adapter/persistence/postgres"
	"newsboard/internal/infra/db"
	"newsboard/internal/observability/logging"
	authservice "newsboard/internal/service/auth"

	artUC "newsboard/internal/usecase/article"
	cmtUC "newsboard/internal/usecase/comment"
	topUC "newsboard/internal/usecase/topic"
	usrUC "newsboard/internal/usecase/user"

	hhttp "newsboard/internal/handler/http"
	harticle "newsboard/internal/handler/http/article"
	hauth "newsboard/internal/handler/http/auth"
	hcomment "newsboard/internal/handler/http/comment"
	"newsboard/internal/handler/http/requestid"
	htopic "newsboard/internal/handler/http/topic"
	huser "newsboard/internal/handler/http/user"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load("")
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	secret, err := authservice.ValidateSecret()
	if err != nil {
		logger.Error("jwt secret validation failed", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger, cfg.Database.URL)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(logger, cfg, database, secret, version)

	runServer(logger, cfg, handler, version)
}

// initDatabase opens the pool, applies the schema, and seeds reference
// data on an empty database.
func initDatabase(logger *slog.Logger, dsn string) *sql.DB {
	database := db.Open(dsn)
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.Seed(database); err != nil {
		logger.Error("failed to seed database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires repositories, services and handlers into a single
// handler with the shared middleware chain applied.
func setupServer(logger *slog.Logger, cfg *config.Config, database *sql.DB, secret []byte, version string) http.Handler {
	articleRepo := pgRepo.NewArticleRepo(database)
	commentRepo := pgRepo.NewCommentRepo(database)
	userRepo := pgRepo.NewUserRepo(database)
	topicRepo := pgRepo.NewTopicRepo(database)

	paginationCfg := pagination.LoadFromEnv()

	artSvc := &artUC.Service{Repo: articleRepo, Cfg: paginationCfg}
	cmtSvc := &cmtUC.Service{Repo: commentRepo, Articles: articleRepo, Users: userRepo}
	usrSvc := &usrUC.Service{Repo: userRepo}
	topSvc := &topUC.Service{Repo: topicRepo}

	tokens := authservice.NewTokenService(secret)
	loginLimiter := hhttp.NewRateLimiter(cfg.RateLimit.LoginLimit, cfg.RateLimit.LoginWindow.Std())

	mux := http.NewServeMux()
	mux.Handle("GET /api", hhttp.IndexHandler())
	mux.Handle("GET /api/{$}", hhttp.IndexHandler())
	htopic.Register(mux, topSvc)
	harticle.Register(mux, artSvc, paginationCfg, logger)
	hcomment.Register(mux, cmtSvc)
	huser.Register(mux, usrSvc, tokens)
	hauth.Register(mux, usrSvc, tokens, loginLimiter, logger)

	mux.Handle("GET /healthz", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	// Request ID → recovery → logging → body limit → metrics.
	var handler http.Handler = mux
	handler = hhttp.MetricsMiddleware(handler)
	handler = hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes)(handler)
	handler = hhttp.Logging(logger)(handler)
	handler = hhttp.Recover(logger)(handler)
	handler = requestid.Middleware(handler)
	return handler
}

// runServer starts the HTTP server and blocks until shutdown completes.
func runServer(logger *slog.Logger, cfg *config.Config, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout.Std(),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}

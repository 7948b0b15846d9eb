package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookduck/internal/bookinfo"
	"bookduck/internal/config"
	"bookduck/internal/excerpt"
	"bookduck/internal/friend"
	"bookduck/internal/httpx"
	"bookduck/internal/library"
	"bookduck/internal/logger"
	"bookduck/internal/platform/googlebooks"
	"bookduck/internal/platform/postgres"
	"bookduck/internal/skin"
	"bookduck/internal/user"

	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

const userAgent = "bookduck/1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bookduck: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogEnv)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Open(ctx, cfg.DBDSN, 2*time.Second)
	if err != nil {
		return err
	}
	defer pool.Close()
	log.Info("database connection OK", zap.String("dsn", postgres.RedactDSN(cfg.DBDSN)))

	provider := googlebooks.NewClient(userAgent, cfg.GoogleBooksRPS,
		googlebooks.WithBaseURL(cfg.GoogleBooksBaseURL),
		googlebooks.WithAPIKey(cfg.GoogleBooksAPIKey),
	)

	bookService := bookinfo.NewService(bookinfo.NewPostgresRepo(pool, cfg.DBTimeout), provider, cfg.DefaultGenreID, log)
	libraryService := library.NewService(library.NewPostgresRepo(pool, cfg.DBTimeout), bookService)
	excerptService := excerpt.NewService(excerpt.NewPostgresRepo(pool, cfg.DBTimeout), bookService)
	skinService := skin.NewService(skin.NewPostgresRepo(pool, cfg.DBTimeout), cfg.DefaultSkinID)
	friendService := friend.NewService(friend.NewPostgresRepo(pool, cfg.DBTimeout), skinService, log)
	userService := user.NewService(user.NewPostgresRepo(pool, cfg.DBTimeout), cfg.JWTSecret, cfg.TokenTTL)

	router := newRouter(handlers{
		books:    bookinfo.NewHTTPHandler(bookService, log),
		library:  library.NewHTTPHandler(libraryService, log),
		excerpts: excerpt.NewHTTPHandler(excerptService, log),
		friends:  friend.NewHTTPHandler(friendService, log),
		skins:    skin.NewHTTPHandler(skinService, log),
		users:    user.NewHTTPHandler(userService, log),
	}, cfg.JWTSecret, pool.Ping)

	limiter := httpx.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer limiter.Close()

	middlewares := []func(http.Handler) http.Handler{
		httpx.RequestIDMiddleware,
		httpx.RecoveryMiddleware(log),
		httpx.AccessLogMiddleware(log),
		httpx.SecurityHeadersMiddleware(cfg.LogEnv == "production"),
	}
	if len(cfg.CORSAllowedOrigins) > 0 {
		middlewares = append(middlewares, cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"X-Request-Id"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}
	middlewares = append(middlewares,
		limiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      httpx.Chain(router, middlewares...),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", cfg.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

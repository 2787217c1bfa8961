package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/interlinear/internal/config"
	"github.com/heartmarshall/interlinear/internal/service/passage"
	"github.com/heartmarshall/interlinear/internal/transport/middleware"
	"github.com/heartmarshall/interlinear/internal/transport/rest"
)

// Run loads configuration, serves the HTTP API and blocks until ctx is
// cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("source", cfg.Source.Kind),
	)

	src, err := OpenSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer src.Close()

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewRouter(cfg, src, limiter, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app: http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	return nil
}

// NewRouter builds the HTTP handler tree.
func NewRouter(cfg *config.Config, src *Source, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	passages := rest.NewPassageHandler(passage.NewService(logger, src.Chapters, src.Catalog), cfg.Render, logger)
	catalog := rest.NewCatalogHandler(src.Catalog, logger)
	health := rest.NewHealthHandler(src.Pinger, src.Name, BuildVersion())

	render := middleware.Chain(limiter.Limit(cfg.Server.RateLimit), src.Middleware)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("GET /api/passages/{segment}", render(http.HandlerFunc(passages.Get)))
	mux.HandleFunc("GET /api/resolve", catalog.Resolve)
	mux.HandleFunc("GET /api/translations", catalog.Translations)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}

// Package app wires configuration, logging, the rhyme index and the HTTP
// API into a running server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/az-ai-labs/silabas/data"
	"github.com/az-ai-labs/silabas/internal/config"
	"github.com/az-ai-labs/silabas/internal/transport/middleware"
	"github.com/az-ai-labs/silabas/internal/transport/rest"
	"github.com/az-ai-labs/silabas/rhymeindex"
)

// Run is the server entry point. It loads configuration, initializes the
// logger, opens the rhyme index when one is configured, and serves HTTP
// until ctx is canceled.
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

	store, err := OpenIndex(ctx, cfg.Index, logger)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	srv := NewServer(cfg, logger, store)
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}
	return Serve(ctx, srv, ln, cfg.Server.ShutdownTimeout, logger)
}

// OpenIndex opens the rhyme index described by cfg and seeds it with the
// embedded word list when requested. It returns nil when cfg.Path is empty.
func OpenIndex(ctx context.Context, cfg config.IndexConfig, logger *slog.Logger) (*rhymeindex.Store, error) {
	if cfg.Path == "" {
		logger.Info("rhyme index disabled")
		return nil, nil
	}
	store, err := rhymeindex.Open(ctx, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open rhyme index: %w", err)
	}
	if cfg.Seed {
		stats, err := store.Import(ctx, strings.NewReader(data.Palabras), rhymeindex.ImportOptions{
			Workers:   cfg.Workers,
			BatchSize: cfg.BatchSize,
			Logger:    logger,
		})
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("seed rhyme index: %w", err)
		}
		logger.Info("rhyme index seeded", slog.Int("indexed", stats.Indexed))
	}
	logger.Info("rhyme index ready", slog.String("path", cfg.Path))
	return store, nil
}

// NewServer builds the HTTP server. store may be nil.
func NewServer(cfg *config.Config, logger *slog.Logger, store *rhymeindex.Store) *http.Server {
	opts := rest.Options{
		Rhyme:        cfg.Rhyme.Options(),
		DefaultLimit: cfg.Index.DefaultLimit,
		MaxLimit:     cfg.Index.MaxLimit,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		Version:      BuildVersion(),
		Logger:       logger,
	}
	if store != nil {
		opts.Index = store
	}
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(rest.NewHandler(opts).Routes())

	return &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

// Serve serves srv on ln until ctx is canceled, then shuts down gracefully
// within shutdownTimeout.
func Serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errc := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", ln.Addr().String()))
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

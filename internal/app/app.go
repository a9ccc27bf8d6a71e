package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/toneshift-backend/internal/config"
	"github.com/heartmarshall/toneshift-backend/internal/metrics"
	"github.com/heartmarshall/toneshift-backend/internal/service/community"
	"github.com/heartmarshall/toneshift-backend/internal/service/studio"
	"github.com/heartmarshall/toneshift-backend/internal/service/transform"
	"github.com/heartmarshall/toneshift-backend/internal/transport/rest"
)

// Run is the application entry point for the HTTP server. It loads
// configuration from configPath (empty means CONFIG_PATH or the default),
// initializes the logger and serves until ctx is canceled.
func Run(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Store.Driver),
		slog.String("provider", cfg.Generator.Provider),
		slog.String("model", cfg.Generator.ModelOrDefault()),
	)

	return Serve(ctx, cfg, logger)
}

// Serve wires the store, model client and services, then runs the HTTP
// server. When ctx ends the server stops accepting requests, in-flight
// requests finish, and pending background appends drain, all within
// server.shutdown_timeout.
func Serve(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeStore()

	gen, err := newGenerator(ctx, cfg.Generator, log)
	if err != nil {
		return fmt.Errorf("create generator: %w", err)
	}

	m := metrics.New()
	studioSvc := studio.NewService(log,
		transform.NewService(log, gen),
		community.NewService(log, store),
		m,
		cfg.Store.WriteTimeout,
	)

	handler := newRouter(routerDeps{
		cfg:     cfg,
		log:     log,
		studio:  studioSvc,
		health:  rest.NewHealthHandler(store, cfg.Store.Driver, BuildVersion()),
		metrics: m,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(log.Handler(), slog.LevelError),
	}

	return serveHTTP(ctx, srv, studioSvc, cfg.Server, log)
}

type drainer interface {
	Shutdown(ctx context.Context) error
}

func serveHTTP(ctx context.Context, srv *http.Server, pending drainer, cfg config.ServerConfig, log *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		var errs []error
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
		if err := pending.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("drain appends: %w", err))
		}
		if len(errs) == 0 {
			log.Info("server stopped")
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

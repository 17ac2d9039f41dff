package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/preston-bernstein/nfl-teams-console/internal/backend"
	"github.com/preston-bernstein/nfl-teams-console/internal/config"
	"github.com/preston-bernstein/nfl-teams-console/internal/logging"
	"github.com/preston-bernstein/nfl-teams-console/internal/store"
)

var openPostgres = func(ctx context.Context, dsn string) (backend.Store, error) {
	return store.NewPostgresStore(ctx, dsn)
}

// NewBackend constructs the development teams collection server.
func NewBackend(ctx context.Context, cfg config.BackendConfig, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Seed {
		if err := backend.SeedIfEmpty(ctx, st, logger); err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("seed teams: %w", err)
		}
	}

	gin.SetMode(gin.ReleaseMode)
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg.Metrics, logger, nil)
	router := backend.NewRouter(st, logger, recorder)

	return &Server{
		logger:        logger,
		metrics:       recorder,
		httpServer:    newNetHTTPServer(cfg.Port, router),
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		closers:       []func() error{st.Close},
	}, nil
}

func openStore(ctx context.Context, cfg config.BackendConfig, logger *slog.Logger) (backend.Store, error) {
	if cfg.DatabaseURL == "" {
		logging.Info(logger, "using in-memory team store")
		return store.NewMemoryStore(), nil
	}
	st, err := openPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres store: %w", err)
	}
	logging.Info(logger, "using postgres team store")
	return st, nil
}

package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"

	appteams "github.com/preston-bernstein/nfl-teams-console/internal/app/teams"
	"github.com/preston-bernstein/nfl-teams-console/internal/config"
	httpserver "github.com/preston-bernstein/nfl-teams-console/internal/http"
	"github.com/preston-bernstein/nfl-teams-console/internal/http/handlers"
	"github.com/preston-bernstein/nfl-teams-console/internal/http/middleware"
	"github.com/preston-bernstein/nfl-teams-console/internal/logging"
	"github.com/preston-bernstein/nfl-teams-console/internal/metrics"
	"github.com/preston-bernstein/nfl-teams-console/internal/providers"
	"github.com/preston-bernstein/nfl-teams-console/internal/view"
)

var metricsSetup = metrics.Setup

// Server owns the HTTP listeners and their graceful shutdown.
type Server struct {
	logger        *slog.Logger
	metrics       *metrics.Recorder
	controller    *appteams.Controller
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	closers       []func() error
	ready         atomic.Bool
}

// New constructs the console server: remote collection client, controller, and page routes.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithCollection(cfg, logger, nil, nil)
}

func newServerWithCollection(cfg config.Config, logger *slog.Logger, collection providers.TeamCollection, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg.Metrics, logger, recorder)

	if collection == nil {
		collection = buildCollection(cfg.TeamsAPI, logger, recorder)
	} else {
		collection = providers.NewInstrumentedCollection(collection, logger, recorder, "")
	}

	s := &Server{
		logger:        logger,
		metrics:       recorder,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
	s.controller = appteams.NewController(collection, view.NewPage(), logger, recorder)
	handler := handlers.NewHandler(s.controller, logger, s.ready.Load)
	router := httpserver.NewRouter(handler)
	s.httpServer = newNetHTTPServer(cfg.Port, middleware.LoggingMiddleware(logger, recorder, router))
	return s
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		logger:     logger,
		httpServer: httpSrv,
	}
}

// Run starts the servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.ready.Store(true)

	<-ctx.Done()
	s.ready.Store(false)
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			logging.Warn(s.logger, "close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.MetricsConfig, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Enabled,
		Port:         cfg.Port,
		ServiceName:  cfg.ServiceName,
		OtlpEndpoint: cfg.OtlpEndpoint,
		OtlpInsecure: cfg.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Ready reports whether the server has started and is not shutting down.
func (s *Server) Ready() bool {
	return s.ready.Load()
}

// Package server wires configuration, storage, the player provider chain
// and the HTTP surface into a runnable service.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ThantZinWinnnnn/team-task/internal/config"
	httpserver "github.com/ThantZinWinnnnn/team-task/internal/http"
	"github.com/ThantZinWinnnnn/team-task/internal/http/handlers"
	"github.com/ThantZinWinnnnn/team-task/internal/http/middleware"
	"github.com/ThantZinWinnnnn/team-task/internal/identity"
	"github.com/ThantZinWinnnnn/team-task/internal/logging"
	"github.com/ThantZinWinnnnn/team-task/internal/metrics"
	"github.com/ThantZinWinnnnn/team-task/internal/providers"
	"github.com/ThantZinWinnnnn/team-task/internal/providers/balldontlie"
	"github.com/ThantZinWinnnnn/team-task/internal/roster"
	"github.com/ThantZinWinnnnn/team-task/internal/storage"
)

var metricsSetup = metrics.Setup

const providerName = "balldontlie"

// Server owns the HTTP listener, the stores and the metrics pipeline.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	rosterStore   *roster.Store
	identityStore *identity.Store
	provider      providers.PlayerProvider
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with the default provider and storage wiring.
// The returned error covers unreadable persisted state.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.PlayerProvider) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if provider == nil {
		provider = balldontlie.NewClient(balldontlie.Config{
			BaseURL: cfg.Balldontlie.BaseURL,
			APIKey:  cfg.Balldontlie.APIKey,
			PerPage: cfg.Balldontlie.PerPage,
		})
	}
	provider = providers.NewRetryingProvider(provider, logger, recorder, providerName, 0)

	store := storage.NewFSStore(cfg.DataDir)
	rosterStore, err := roster.NewStore(store, logger, recorder)
	if err != nil {
		return nil, fmt.Errorf("build roster store: %w", err)
	}
	identityStore, err := identity.NewStore(store, logger)
	if err != nil {
		return nil, fmt.Errorf("build identity store: %w", err)
	}

	httpSrv := buildHTTPServer(cfg, provider, rosterStore, identityStore, store, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		rosterStore:   rosterStore,
		identityStore: identityStore,
		provider:      provider,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

func buildHTTPServer(cfg config.Config, provider providers.PlayerProvider, rosterStore *roster.Store, identityStore *identity.Store, store *storage.FSStore, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(provider, rosterStore, identityStore, logger, cfg.Balldontlie.PerPage, store.Ready)
	router := httpserver.NewRouter(handler)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.Logging(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
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

// Run starts the HTTP and metrics servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
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

	logging.Info(s.logger, "shutdown complete")
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", "addr", srv.Addr())
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

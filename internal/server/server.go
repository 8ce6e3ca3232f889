package server

import (
	"context"
	"log/slog"
	"net/http"

	"mlb-roster-service/internal/config"
	"mlb-roster-service/internal/enrich"
	httpapi "mlb-roster-service/internal/http"
	"mlb-roster-service/internal/logging"
	"mlb-roster-service/internal/metrics"
	"mlb-roster-service/internal/notes"
	"mlb-roster-service/internal/notes/memory"
	"mlb-roster-service/internal/notes/sqlite"
	"mlb-roster-service/internal/poller"
	"mlb-roster-service/internal/providers"
	"mlb-roster-service/internal/scheduler"
	"mlb-roster-service/internal/search"
	"mlb-roster-service/internal/standings"
)

var metricsSetup = metrics.Setup

// Poller defines the minimal poller behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}

// Server is the composition root: provider, caches, notes store, HTTP and
// metrics servers, interval poller, and the daily refresh scheduler.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	provider      providers.DataProvider
	standings     *standings.Service
	notesService  *notes.Service
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	scheduler     *scheduler.Scheduler
	metricsStop   func(context.Context) error
	storeClose    func() error
}

// New constructs a fully wired server from configuration.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, nil)

	provider := buildProvider(cfg, logger, recorder)
	standingsSvc := standings.NewService(provider, logger, cfg.Season)
	plr := poller.New(standingsSvc, logger, recorder, cfg.PollInterval)

	sched, err := scheduler.New(standingsSvc, logger, cfg.StandingsHour)
	if err != nil {
		return nil, err
	}

	store, storeClose, err := buildNotesStore(cfg, logger)
	if err != nil {
		return nil, err
	}
	notesSvc := notes.NewService(store, logger)

	httpSrv := buildHTTPServer(cfg, logger, recorder, provider, standingsSvc, notesSvc, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		provider:      provider,
		standings:     standingsSvc,
		notesService:  notesSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		scheduler:     sched,
		metricsStop:   metricsShutdown,
		storeClose:    storeClose,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildNotesStore(cfg config.Config, logger *slog.Logger) (notes.Store, func() error, error) {
	if cfg.Database.Path == "" {
		logging.Info(logger, "notes store: in-memory")
		return memory.NewStore(), nil, nil
	}

	store, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}
	logging.Info(logger, "notes store: sqlite", slog.String("path", cfg.Database.Path))
	return store, store.Close, nil
}

func buildHTTPServer(
	cfg config.Config,
	logger *slog.Logger,
	recorder *metrics.Recorder,
	provider providers.DataProvider,
	standingsSvc *standings.Service,
	notesSvc *notes.Service,
	plr Poller,
) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := httpapi.NewHandler(httpapi.Deps{
		Teams:     provider,
		Enricher:  enrich.New(provider, logger, recorder, cfg.EnrichTimeout),
		Search:    search.NewPipeline(provider, logger),
		Notes:     notesSvc,
		Standings: standingsSvc,
		StatusFn:  statusFn,
		Logger:    logger,
		Season:    cfg.Season,
	})
	router := httpapi.NewRouter(handler)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := httpapi.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

// Run starts everything, then waits for context cancellation to shut down
// gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)
	s.startScheduler(ctx)

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

func (s *Server) startScheduler(ctx context.Context) {
	if s.scheduler == nil {
		return
	}
	if err := s.scheduler.Start(ctx); err != nil {
		logging.Error(s.logger, "scheduler start failed", err)
	}
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.scheduler != nil {
		if err := s.scheduler.Stop(); err != nil {
			logging.Warn(s.logger, "scheduler shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

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

	if s.storeClose != nil {
		if err := s.storeClose(); err != nil {
			logging.Warn(s.logger, "notes store close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

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

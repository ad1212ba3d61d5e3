package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	appmatches "cricket-data-service/internal/app/matches"
	"cricket-data-service/internal/auth"
	"cricket-data-service/internal/chat"
	"cricket-data-service/internal/config"
	httpapi "cricket-data-service/internal/http"
	"cricket-data-service/internal/livesync"
	"cricket-data-service/internal/logging"
	"cricket-data-service/internal/metrics"
	"cricket-data-service/internal/poller"
	"cricket-data-service/internal/providers"
	"cricket-data-service/internal/providers/crictez"
	"cricket-data-service/internal/storage"
	"cricket-data-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	matches       *appmatches.Service
	users         *storage.Store
	auth          *auth.Service
	live          *livesync.Manager
	relay         *chat.Relay
	provider      providers.MatchProvider
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with the default crictez provider wiring.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.MatchProvider) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if provider == nil {
		provider = buildProvider(cfg, logger, recorder)
	} else {
		provider = providers.NewRetryingProvider(provider, logger, recorder, "crictez", 0, 0)
	}

	// Session tokens signed with an empty key are forgeable; there is no
	// usable default for this value.
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	users, err := storage.New(cfg.Auth.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open user store: %w", err)
	}
	authSvc := auth.NewService(users, cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTL), cfg.Auth.BcryptCost)

	memoryStore := store.NewMemoryStore()
	matchSvc := appmatches.NewService(memoryStore, logger)
	plr := poller.New(provider, memoryStore, logger, recorder, time.Duration(cfg.ListPollInterval))
	live := livesync.NewManager(provider, logger, recorder, livesync.ManagerConfig{
		PollInterval: time.Duration(cfg.LivePollInterval),
		IdleTimeout:  time.Duration(cfg.LiveIdleTimeout),
	})

	prompts := chat.NewPromptSource(cfg.Chat.PromptPath, logger)
	relay := buildRelay(cfg, prompts, logger, recorder)

	httpSrv := buildHTTPServer(cfg, matchSvc, live, relay, authSvc, prompts, plr, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		matches:       matchSvc,
		users:         users,
		auth:          authSvc,
		live:          live,
		relay:         relay,
		provider:      provider,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller, live *livesync.Manager) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
		live:       live,
	}
}

func buildProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.MatchProvider {
	base := crictez.NewClient(crictez.Config{
		BaseURL: cfg.Crictez.BaseURL,
		APIKey:  cfg.Crictez.APIKey,
	})
	limited := providers.NewRateLimitedProvider(base, minRequestInterval, logger)
	return providers.NewRetryingProvider(limited, logger, recorder, crictez.ProviderName, 0, 0)
}

func buildRelay(cfg config.Config, prompts *chat.PromptSource, logger *slog.Logger, recorder *metrics.Recorder) *chat.Relay {
	primary := chat.NewClient(chat.ClientConfig{
		Name:    "groq",
		BaseURL: cfg.Chat.GroqBaseURL,
		APIKey:  cfg.Chat.GroqAPIKey,
		Model:   cfg.Chat.GroqModel,
	})
	secondary := chat.NewClient(chat.ClientConfig{
		Name:    "openai",
		BaseURL: cfg.Chat.OpenAIBaseURL,
		APIKey:  cfg.Chat.OpenAIAPIKey,
		Model:   cfg.Chat.OpenAIModel,
	})
	return chat.NewRelay(primary, secondary, prompts, logger, recorder)
}

func buildHTTPServer(cfg config.Config, matchSvc *appmatches.Service, live *livesync.Manager, relay *chat.Relay, authSvc *auth.Service, prompts *chat.PromptSource, plr Poller, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	var ready httpapi.ReadyChecker
	if plr != nil {
		ready = func() bool { return plr.Status().IsReady() }
	}

	handler := httpapi.NewHandler(matchSvc, live, relay, authSvc, prompts, ready, logger)
	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		Logger:         logger,
		Metrics:        recorder,
		Auth:           authSvc,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return stdHTTPServer{srv: srv}
}

// Run starts the poller, the live sync manager and the HTTP server, then
// waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)
	if s.live != nil {
		s.live.Start(ctx)
	}

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

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
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if s.live != nil {
		s.live.Close()
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// Stop rate-limited providers to avoid ticker leaks when present.
	if rl, ok := s.provider.(interface{ Close() }); ok {
		rl.Close()
	}

	if s.users != nil {
		if err := s.users.Close(); err != nil && s.logger != nil {
			s.logger.Warn("user store close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
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
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = stdHTTPServer{
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
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
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

package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"cricket-data-service/internal/auth"
	"cricket-data-service/internal/metrics"
)

// RouterConfig carries the cross-cutting pieces the router needs.
type RouterConfig struct {
	Logger         *slog.Logger
	Metrics        *metrics.Recorder
	Auth           *auth.Service
	MetricsHandler nethttp.Handler
	AllowedOrigins []string
}

// NewRouter registers all HTTP routes and wraps them with CORS, request
// logging and metrics.
func NewRouter(handler *Handler, cfg RouterConfig) nethttp.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)

	r.HandleFunc("/matches", handler.Matches).Methods(nethttp.MethodGet)
	r.HandleFunc("/matches/{id}", handler.MatchByID).Methods(nethttp.MethodGet)
	r.HandleFunc("/matches/{id}/live", handler.MatchLive).Methods(nethttp.MethodGet)
	r.HandleFunc("/matches/{id}/info", handler.MatchInfo).Methods(nethttp.MethodGet)

	r.HandleFunc("/api/register", handler.Register).Methods(nethttp.MethodPost)
	r.HandleFunc("/api/login", handler.Login).Methods(nethttp.MethodPost)
	r.HandleFunc("/api/prompt", handler.Prompt).Methods(nethttp.MethodGet)
	r.Handle("/api/chat", RequireAuth(cfg.Auth, nethttp.HandlerFunc(handler.Chat))).Methods(nethttp.MethodPost)

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler).Methods(nethttp.MethodGet)
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
	})

	return LoggingMiddleware(cfg.Logger, cfg.Metrics, c.Handler(r))
}

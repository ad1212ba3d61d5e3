package config

import "time"

const (
	envPort             = "PORT"
	envListPollInterval = "LIST_POLL_INTERVAL"
	envLivePollInterval = "LIVE_POLL_INTERVAL"
	envLiveIdleTimeout  = "LIVE_IDLE_TIMEOUT"
	envAllowedOrigins   = "CORS_ALLOWED_ORIGINS"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// The match list refreshes every minute; a watched live match every
	// 30 seconds.
	defaultListPollInterval = 60 * Duration(time.Second)
	defaultLivePollInterval = 30 * Duration(time.Second)
	// A live synchronizer with no readers for this long is shut down.
	defaultLiveIdleTimeout = 5 * Duration(time.Minute)
	defaultMetricsPort     = "9090"
)

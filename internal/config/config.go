package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the server.
type Config struct {
	Port             string
	ListPollInterval Duration
	LivePollInterval Duration
	LiveIdleTimeout  Duration
	AllowedOrigins   []string
	Crictez          CrictezConfig
	Chat             ChatConfig
	Auth             AuthConfig
	Metrics          MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A local .env file, when present, is loaded first; real environment
// variables win over values from the file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:             envOrDefault(envPort, defaultPort),
		ListPollInterval: durationEnvOrDefault(envListPollInterval, defaultListPollInterval),
		LivePollInterval: durationEnvOrDefault(envLivePollInterval, defaultLivePollInterval),
		LiveIdleTimeout:  durationEnvOrDefault(envLiveIdleTimeout, defaultLiveIdleTimeout),
		AllowedOrigins:   listEnvOrDefault(envAllowedOrigins, []string{"*"}),
		Crictez:          loadCrictez(),
		Chat:             loadChat(),
		Auth:             loadAuth(),
		Metrics:          loadMetrics(),
	}
}

package config

import "time"

const (
	envDatabasePath = "DATABASE_PATH"
	envJWTSecret    = "JWT_SECRET"
	envTokenTTL     = "TOKEN_TTL"
	envBcryptCost   = "BCRYPT_COST"

	defaultDatabasePath = "cricket.db"
	defaultTokenTTL     = 24 * Duration(time.Hour)
	defaultBcryptCost   = 12
)

// AuthConfig holds credential-store and session-token settings.
type AuthConfig struct {
	DatabasePath string
	JWTSecret    string
	TokenTTL     Duration
	BcryptCost   int
}

func loadAuth() AuthConfig {
	return AuthConfig{
		DatabasePath: envOrDefault(envDatabasePath, defaultDatabasePath),
		JWTSecret:    envOrDefault(envJWTSecret, ""),
		TokenTTL:     durationEnvOrDefault(envTokenTTL, defaultTokenTTL),
		BcryptCost:   intEnvOrDefault(envBcryptCost, defaultBcryptCost),
	}
}

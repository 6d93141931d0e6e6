package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration values from environment variables. A .env
// file in the working directory, if present, is loaded first; real
// environment variables take precedence over it.
//
// Recognized variables:
//
//	ADDRESS                  HTTP bind address
//	DATABASE_DSN             PostgreSQL DSN
//	SECRET_KEY               JWT HMAC secret key
//	SIGNING_ALGORITHM        JWT signing algorithm
//	ACCESS_TOKEN_VALIDITY    access token validity, minutes
//	REFRESH_TOKEN_VALIDITY   refresh token validity, days
//	LOG_LEVEL                log level
func parseEnv(config *Config) {
	// Ignore a missing .env file, it is optional.
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("SIGNING_ALGORITHM"); v != "" {
		config.SigningAlgorithm = v
	}
	if v := os.Getenv("ACCESS_TOKEN_VALIDITY"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
	if v := os.Getenv("REFRESH_TOKEN_VALIDITY"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			config.RefreshTokenValidityDuration = time.Duration(days) * 24 * time.Hour
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
}

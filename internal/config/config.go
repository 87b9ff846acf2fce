// Package config provides application configuration through environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int

	// DBDriver is the database driver to use ("mysql" or "postgres").
	DBDriver string
	// DBConnectionString is the connection string for the database.
	DBConnectionString string
	// DBMaxOpenConnections is the maximum number of open connections to the database.
	DBMaxOpenConnections int
	// DBMaxIdleConnections is the maximum number of idle connections in the database pool.
	DBMaxIdleConnections int
	// DBConnMaxLifetime is the maximum amount of time a connection may be reused.
	DBConnMaxLifetime time.Duration
	// DBQueryTimeout bounds every store call made on behalf of a request.
	DBQueryTimeout time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// JWTSecret is the shared HMAC secret used to verify bearer tokens.
	JWTSecret string
	// JWTSecretCiphertext is JWTSecret sealed by the KMS keeper at KMSKeyURI (base64).
	// When set it takes precedence over JWTSecret.
	JWTSecretCiphertext string
	// KMSKeyURI is the gocloud.dev/secrets keeper URI used to unseal JWTSecretCiphertext.
	KMSKeyURI string
	// JWTLeeway is the clock drift tolerated when checking exp and nbf.
	JWTLeeway time.Duration

	// RateLimitEnabled indicates whether rate limiting for protected endpoints is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second per caller.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size for protected endpoints rate limiting.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 3000),

		// Database configuration
		DBDriver: env.GetString("DB_DRIVER", "mysql"),
		DBConnectionString: env.GetString(
			"DB_CONNECTION_STRING",
			"root:example@tcp(localhost:3306)/inventory_db?parseTime=true",
		),
		DBMaxOpenConnections: env.GetInt("DB_MAX_OPEN_CONNECTIONS", 25),
		DBMaxIdleConnections: env.GetInt("DB_MAX_IDLE_CONNECTIONS", 5),
		DBConnMaxLifetime:    env.GetDuration("DB_CONN_MAX_LIFETIME", 5, time.Minute),
		DBQueryTimeout:       env.GetDuration("DB_QUERY_TIMEOUT_SECONDS", 5, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Auth
		JWTSecret:           env.GetString("JWT_SECRET", ""),
		JWTSecretCiphertext: env.GetString("JWT_SECRET_CIPHERTEXT", ""),
		KMSKeyURI:           env.GetString("KMS_KEY_URI", ""),
		JWTLeeway:           env.GetDuration("JWT_LEEWAY_SECONDS", 0, time.Second),

		// Rate Limiting (protected endpoints)
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "inventory"),
		MetricsPort:      env.GetInt("METRICS_PORT", 3001),
	}
}

// Validate rejects values that would leave the API unusable, such as a write limiter
// that never grants a token.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.JWTLeeway, validation.Min(time.Duration(0)).Error("JWT_LEEWAY_SECONDS must not be negative")),
		validation.Field(&c.RateLimitRequestsPerSec, validation.When(c.RateLimitEnabled,
			validation.Required.Error("RATE_LIMIT_REQUESTS_PER_SEC must be greater than zero"),
			validation.Min(0.0).Exclusive().Error("RATE_LIMIT_REQUESTS_PER_SEC must be greater than zero"),
		)),
		validation.Field(&c.RateLimitBurst, validation.When(c.RateLimitEnabled,
			validation.Required.Error("RATE_LIMIT_BURST must be at least 1"),
			validation.Min(1).Error("RATE_LIMIT_BURST must be at least 1"),
		)),
	)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}

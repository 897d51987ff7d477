// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the API server binds to.
	ServerHost string
	// ServerPort is the port the API server listens on.
	ServerPort int
	// ShutdownTimeout bounds graceful shutdown of the servers.
	ShutdownTimeout time.Duration

	// LogLevel is the logging level ("debug", "info", "warn", "error").
	LogLevel string

	// DefaultCatalog is the catalog used by CLI commands when none is given.
	DefaultCatalog string
	// GraphQLStrict enables the parser-based GraphQL check in addition to the keyword check.
	GraphQLStrict bool
	// SlackAllowedChannels is a comma-separated allow-list of Slack channel IDs.
	// Empty means every public channel is readable.
	SlackAllowedChannels string

	// RateLimitEnabled enables per-IP rate limiting on the API.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the sustained request rate allowed per client IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size allowed per client IP.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace prefixes every metric name.
	MetricsNamespace string
	// MetricsPort is the port the metrics server listens on.
	MetricsPort int

	// PayloadMaxRecords is the number of records kept from a read result.
	PayloadMaxRecords int
	// PayloadTriggerNarrowAt is the result size above which callers should narrow the query.
	PayloadTriggerNarrowAt int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		// Server
		ServerHost:      env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:      env.GetInt("SERVER_PORT", 8080),
		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Gatekeeper
		DefaultCatalog:       env.GetString("GATEKEEPER_DEFAULT_CATALOG", "monday"),
		GraphQLStrict:        env.GetBool("GRAPHQL_STRICT", false),
		SlackAllowedChannels: env.GetString("SLACK_ALLOWED_CHANNELS", ""),

		// Rate Limiting (per client IP)
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "gatekeeper"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),

		// Payload control
		PayloadMaxRecords:      env.GetInt("PAYLOAD_MAX_RECORDS", 30),
		PayloadTriggerNarrowAt: env.GetInt("PAYLOAD_TRIGGER_NARROW_AT", 100),
	}
}

// GetGinMode returns the Gin mode for the configured log level.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// loadDotEnv walks from the working directory up to the filesystem root and loads
// the first .env file it finds.
func loadDotEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}

	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

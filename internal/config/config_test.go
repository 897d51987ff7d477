package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "0.0.0.0", cfg.ServerHost)
				assert.Equal(t, 8080, cfg.ServerPort)
				assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "monday", cfg.DefaultCatalog)
				assert.False(t, cfg.GraphQLStrict)
				assert.Empty(t, cfg.SlackAllowedChannels)
				assert.True(t, cfg.RateLimitEnabled)
				assert.Equal(t, 10.0, cfg.RateLimitRequestsPerSec)
				assert.Equal(t, 20, cfg.RateLimitBurst)
				assert.False(t, cfg.CORSEnabled)
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "gatekeeper", cfg.MetricsNamespace)
				assert.Equal(t, 8081, cfg.MetricsPort)
				assert.Equal(t, 30, cfg.PayloadMaxRecords)
				assert.Equal(t, 100, cfg.PayloadTriggerNarrowAt)
			},
		},
		{
			name: "load custom server configuration",
			envVars: map[string]string{
				"SERVER_HOST":              "localhost",
				"SERVER_PORT":              "9090",
				"SHUTDOWN_TIMEOUT_SECONDS": "3",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "localhost", cfg.ServerHost)
				assert.Equal(t, 9090, cfg.ServerPort)
				assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
			},
		},
		{
			name: "load custom gatekeeper configuration",
			envVars: map[string]string{
				"GATEKEEPER_DEFAULT_CATALOG": "slack",
				"GRAPHQL_STRICT":             "true",
				"SLACK_ALLOWED_CHANNELS":     "C01,C02",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "slack", cfg.DefaultCatalog)
				assert.True(t, cfg.GraphQLStrict)
				assert.Equal(t, "C01,C02", cfg.SlackAllowedChannels)
			},
		},
		{
			name: "load custom rate limit and cors configuration",
			envVars: map[string]string{
				"RATE_LIMIT_ENABLED":          "false",
				"RATE_LIMIT_REQUESTS_PER_SEC": "2.5",
				"RATE_LIMIT_BURST":            "5",
				"CORS_ENABLED":                "true",
				"CORS_ALLOW_ORIGINS":          "https://example.com",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.RateLimitEnabled)
				assert.Equal(t, 2.5, cfg.RateLimitRequestsPerSec)
				assert.Equal(t, 5, cfg.RateLimitBurst)
				assert.True(t, cfg.CORSEnabled)
				assert.Equal(t, "https://example.com", cfg.CORSAllowOrigins)
			},
		},
		{
			name: "load custom metrics and payload configuration",
			envVars: map[string]string{
				"METRICS_ENABLED":           "false",
				"METRICS_NAMESPACE":         "guard",
				"METRICS_PORT":              "9191",
				"PAYLOAD_MAX_RECORDS":       "10",
				"PAYLOAD_TRIGGER_NARROW_AT": "40",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.MetricsEnabled)
				assert.Equal(t, "guard", cfg.MetricsNamespace)
				assert.Equal(t, 9191, cfg.MetricsPort)
				assert.Equal(t, 10, cfg.PayloadMaxRecords)
				assert.Equal(t, 40, cfg.PayloadTriggerNarrowAt)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()

			for key, value := range tt.envVars {
				require.NoError(t, os.Setenv(key, value))
			}

			tt.validate(t, Load())
		})
	}
}

func TestGetGinMode(t *testing.T) {
	tests := []struct {
		logLevel string
		expected string
	}{
		{logLevel: "debug", expected: "debug"},
		{logLevel: "info", expected: "release"},
		{logLevel: "warn", expected: "release"},
		{logLevel: "error", expected: "release"},
		{logLevel: "bogus", expected: "release"},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.logLevel}
			assert.Equal(t, tt.expected, cfg.GetGinMode())
		})
	}
}

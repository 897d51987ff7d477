package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/gatekeeper/internal/config"
	apperrors "github.com/allisson/gatekeeper/internal/errors"
	"github.com/allisson/gatekeeper/internal/gatekeeper/domain"
	"github.com/allisson/gatekeeper/internal/metrics"
)

// testConfig returns a configuration with metrics and rate limiting off.
func testConfig() *config.Config {
	return &config.Config{
		ServerHost:       "localhost",
		ServerPort:       8080,
		LogLevel:         "error",
		DefaultCatalog:   "monday",
		MetricsNamespace: "gatekeeper",
		MetricsPort:      8081,
	}
}

func TestNewContainer(t *testing.T) {
	cfg := testConfig()

	container := NewContainer(cfg)
	t.Cleanup(func() { _ = container.Shutdown(context.Background()) })

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

func TestContainerLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "invalid"} {
		t.Run(level, func(t *testing.T) {
			cfg := testConfig()
			cfg.LogLevel = level
			container := NewContainer(cfg)
			t.Cleanup(func() { _ = container.Shutdown(context.Background()) })

			assert.Nil(t, container.logger)
			logger := container.Logger()
			require.NotNil(t, logger)
			assert.Same(t, logger, container.Logger())
		})
	}
}

func TestContainerGatekeepers(t *testing.T) {
	t.Run("Success_DefaultCatalog", func(t *testing.T) {
		container := NewContainer(testConfig())
		t.Cleanup(func() { _ = container.Shutdown(context.Background()) })

		gatekeepers, err := container.Gatekeepers()
		require.NoError(t, err)
		assert.Equal(t, []string{"monday", "slack"}, gatekeepers.Names())

		gk, err := container.Gatekeeper("")
		require.NoError(t, err)
		assert.Equal(t, domain.MondayCatalogName, gk.CatalogName())
		assert.ErrorIs(t, gk.ValidateOperation(context.Background(), "mcp_monday-mcp_create_item"),
			apperrors.ErrReadOnlyViolation)
	})

	t.Run("Error_UnknownDefaultCatalog", func(t *testing.T) {
		cfg := testConfig()
		cfg.DefaultCatalog = "jira"
		container := NewContainer(cfg)
		t.Cleanup(func() { _ = container.Shutdown(context.Background()) })

		_, err := container.Gatekeepers()
		assert.ErrorIs(t, err, apperrors.ErrNotFound)

		// The error is remembered.
		_, err = container.Gatekeepers()
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Success_SlackAllowList", func(t *testing.T) {
		cfg := testConfig()
		cfg.SlackAllowedChannels = "C111, C222"
		container := NewContainer(cfg)
		t.Cleanup(func() { _ = container.Shutdown(context.Background()) })

		slack, err := container.Gatekeeper(domain.SlackCatalogName)
		require.NoError(t, err)
		assert.NoError(t, slack.ValidateChannelAccess(context.Background(), "C111", domain.ChannelPublic))
		assert.ErrorIs(t, slack.ValidateChannelAccess(context.Background(), "C333", domain.ChannelPublic),
			apperrors.ErrForbidden)
	})
}

func TestContainerMetrics(t *testing.T) {
	t.Run("Success_Disabled", func(t *testing.T) {
		container := NewContainer(testConfig())
		t.Cleanup(func() { _ = container.Shutdown(context.Background()) })

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		assert.Nil(t, provider)

		bm, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.IsType(t, &metrics.NoOpBusinessMetrics{}, bm)
	})

	t.Run("Success_ViolationsExported", func(t *testing.T) {
		cfg := testConfig()
		cfg.MetricsEnabled = true
		container := NewContainer(cfg)
		t.Cleanup(func() { _ = container.Shutdown(context.Background()) })

		gk, err := container.Gatekeeper(domain.MondayCatalogName)
		require.NoError(t, err)
		require.Error(t, gk.ValidateOperation(context.Background(), "mcp_monday-mcp_delete_item"))

		metricsServer, err := container.MetricsServer()
		require.NoError(t, err)

		w := httptest.NewRecorder()
		metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.True(t, strings.Contains(body, "gatekeeper_read_only_violations_total"), body)
		assert.Contains(t, body, `reason="write_operation"`)
	})
}

func TestContainerHTTPServer(t *testing.T) {
	container := NewContainer(testConfig())
	t.Cleanup(func() { _ = container.Shutdown(context.Background()) })

	server, err := container.HTTPServer()
	require.NoError(t, err)
	assert.Same(t, server, must(container.HTTPServer()))

	w := httptest.NewRecorder()
	server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalogs", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestContainerPayloadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.PayloadMaxRecords = 10
	cfg.PayloadTriggerNarrowAt = 40

	container := NewContainer(cfg)
	t.Cleanup(func() { _ = container.Shutdown(context.Background()) })

	got := container.PayloadConfig()
	assert.Equal(t, 10, got.MaxRecords)
	assert.Equal(t, 40, got.TriggerNarrowAt)
}

func TestContainerShutdown(t *testing.T) {
	container := NewContainer(testConfig())

	assert.NoError(t, container.Shutdown(context.Background()))
	assert.Error(t, container.ctx.Err())
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Package app provides the dependency injection container that assembles the gatekeeper.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/gatekeeper/internal/config"
	"github.com/allisson/gatekeeper/internal/gatekeeper/domain"
	gatekeeperHTTP "github.com/allisson/gatekeeper/internal/gatekeeper/http"
	"github.com/allisson/gatekeeper/internal/gatekeeper/usecase"
	"github.com/allisson/gatekeeper/internal/http"
	"github.com/allisson/gatekeeper/internal/metrics"
	"github.com/allisson/gatekeeper/internal/payload"
)

// Container holds all application dependencies and provides methods to access them.
// Components are created on first access.
type Container struct {
	config *config.Config

	// ctx scopes background goroutines started by components; Shutdown cancels it.
	ctx    context.Context
	cancel context.CancelFunc

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Domain
	registry      *domain.Registry
	channelPolicy *domain.ChannelPolicy

	// Use Cases
	gatekeepers usecase.Gatekeepers

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	mu                  sync.Mutex
	loggerInit          sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	registryInit        sync.Once
	channelPolicyInit   sync.Once
	gatekeepersInit     sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	ctx, cancel := context.WithCancel(context.Background())
	return &Container{
		config:     cfg,
		ctx:        ctx,
		cancel:     cancel,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the JSON logger configured with LOG_LEVEL.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// Registry returns the catalog registry.
func (c *Container) Registry() *domain.Registry {
	c.registryInit.Do(func() {
		c.registry = domain.DefaultRegistry()
	})
	return c.registry
}

// ChannelPolicy returns the Slack channel policy built from SLACK_ALLOWED_CHANNELS.
func (c *Container) ChannelPolicy() *domain.ChannelPolicy {
	c.channelPolicyInit.Do(func() {
		c.channelPolicy = domain.NewChannelPolicy(domain.ParseChannelList(c.config.SlackAllowedChannels))
	})
	return c.channelPolicy
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := metrics.NewProvider()
		if err != nil {
			c.setInitError("metricsProvider", fmt.Errorf("failed to create metrics provider: %w", err))
			return
		}
		c.metricsProvider = provider
	})
	if err := c.initError("metricsProvider"); err != nil {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the guard decision metrics. It is a no-op when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		bm, err := c.initBusinessMetrics()
		if err != nil {
			c.setInitError("businessMetrics", err)
			return
		}
		c.businessMetrics = bm
	})
	if err := c.initError("businessMetrics"); err != nil {
		return nil, err
	}
	return c.businessMetrics, nil
}

// Gatekeepers returns the per-catalog gatekeeper use cases.
func (c *Container) Gatekeepers() (usecase.Gatekeepers, error) {
	c.gatekeepersInit.Do(func() {
		gk, err := c.initGatekeepers()
		if err != nil {
			c.setInitError("gatekeepers", err)
			return
		}
		c.gatekeepers = gk
	})
	if err := c.initError("gatekeepers"); err != nil {
		return nil, err
	}
	return c.gatekeepers, nil
}

// Gatekeeper returns the use case for catalog, or for DefaultCatalog when catalog is empty.
func (c *Container) Gatekeeper(catalog string) (usecase.GatekeeperUseCase, error) {
	gatekeepers, err := c.Gatekeepers()
	if err != nil {
		return nil, err
	}
	if catalog == "" {
		catalog = c.config.DefaultCatalog
	}
	return gatekeepers.Get(catalog)
}

// HTTPServer returns the API server with its router configured.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer()
		if err != nil {
			c.setInitError("httpServer", err)
			return
		}
		c.httpServer = server
	})
	if err := c.initError("httpServer"); err != nil {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the Prometheus metrics server.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.setInitError("metricsServer", fmt.Errorf("failed to get metrics provider for metrics server: %w", err))
			return
		}
		c.metricsServer = http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider)
	})
	if err := c.initError("metricsServer"); err != nil {
		return nil, err
	}
	return c.metricsServer, nil
}

// Shutdown stops initialized servers, flushes metrics and cancels background goroutines.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if err := c.metricsProvider.Shutdown(ctx); err != nil {
		shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
	}

	c.cancel()

	return errors.Join(shutdownErrors...)
}

func (c *Container) setInitError(key string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initErrors[key] = err
}

func (c *Container) initError(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[key]
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return bm, nil
}

// initGatekeepers builds one use case per registered catalog, wrapped with metrics if enabled.
func (c *Container) initGatekeepers() (usecase.Gatekeepers, error) {
	logger := c.Logger()
	policy := c.ChannelPolicy()

	var businessMetrics metrics.BusinessMetrics
	if c.config.MetricsEnabled {
		bm, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for gatekeepers: %w", err)
		}
		businessMetrics = bm
	}

	gatekeepers := usecase.NewGatekeepers(c.Registry(), func(catalog *domain.Catalog) usecase.GatekeeperUseCase {
		base := usecase.NewGatekeeperUseCase(catalog, policy, logger)
		if businessMetrics == nil {
			return base
		}
		return usecase.NewGatekeeperUseCaseWithMetrics(base, businessMetrics)
	})

	if _, err := gatekeepers.Get(c.config.DefaultCatalog); err != nil {
		return nil, fmt.Errorf("invalid default catalog %q: %w", c.config.DefaultCatalog, err)
	}

	return gatekeepers, nil
}

// initHTTPServer creates the API server and mounts every handler.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	gatekeepers, err := c.Gatekeepers()
	if err != nil {
		return nil, fmt.Errorf("failed to get gatekeepers for http server: %w", err)
	}
	queryGuard, err := gatekeepers.Get(c.config.DefaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("failed to get query gatekeeper for http server: %w", err)
	}
	channelGuard, err := gatekeepers.Get(domain.SlackCatalogName)
	if err != nil {
		return nil, fmt.Errorf("failed to get slack gatekeeper for http server: %w", err)
	}
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	handlers := http.Handlers{
		Catalogs: gatekeeperHTTP.NewCatalogHandler(gatekeepers, logger),
		Queries:  gatekeeperHTTP.NewQueryHandler(queryGuard, c.config.GraphQLStrict, logger),
		Channels: gatekeeperHTTP.NewChannelHandler(channelGuard, logger),
		Payloads: gatekeeperHTTP.NewPayloadHandler(c.PayloadConfig(), logger),
	}

	server := http.NewServer(gatekeepers, c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(c.ctx, c.config, handlers, provider)
	return server, nil
}

// PayloadConfig returns the payload limits from configuration.
func (c *Container) PayloadConfig() payload.Config {
	return payload.Config{
		MaxRecords:      c.config.PayloadMaxRecords,
		TriggerNarrowAt: c.config.PayloadTriggerNarrowAt,
	}
}

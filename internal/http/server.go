// Package http provides the HTTP API server, its middleware and the metrics server.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/gatekeeper/internal/config"
	gatekeeperHTTP "github.com/allisson/gatekeeper/internal/gatekeeper/http"
	"github.com/allisson/gatekeeper/internal/gatekeeper/usecase"
	"github.com/allisson/gatekeeper/internal/metrics"
)

// Server represents the gatekeeper HTTP API server.
type Server struct {
	server      *http.Server
	router      *gin.Engine
	logger      *slog.Logger
	gatekeepers usecase.Gatekeepers
	shutdown    atomic.Bool
}

// NewServer creates a new HTTP server. Call SetupRouter before Start.
func NewServer(
	gatekeepers usecase.Gatekeepers,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		logger:      logger,
		gatekeepers: gatekeepers,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Handlers groups the gatekeeper handlers mounted under /v1.
type Handlers struct {
	Catalogs *gatekeeperHTTP.CatalogHandler
	Queries  *gatekeeperHTTP.QueryHandler
	Channels *gatekeeperHTTP.ChannelHandler
	Payloads *gatekeeperHTTP.PayloadHandler
}

// SetupRouter builds the gin engine with middleware and all routes.
//
// The rate limiter cleanup goroutine lives until ctx is cancelled.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	handlers Handlers,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}
	{
		catalogs := v1.Group("/catalogs")
		catalogs.GET("", handlers.Catalogs.ListCatalogsHandler)
		catalogs.GET("/:catalog/operations", handlers.Catalogs.ListOperationsHandler)
		catalogs.GET("/:catalog/operations/:name", handlers.Catalogs.GetOperationHandler)
		catalogs.POST("/:catalog/operations/validate", handlers.Catalogs.ValidateOperationHandler)
		catalogs.POST("/:catalog/tools/filter", handlers.Catalogs.FilterToolsHandler)

		v1.POST("/queries/validate", handlers.Queries.ValidateQueryHandler)
		v1.POST("/channels/validate", handlers.Channels.ValidateChannelHandler)
		v1.POST("/payloads/process", handlers.Payloads.ProcessHandler)
	}

	s.router = router
	s.server.Handler = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server. It blocks until the server stops.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured: call SetupRouter before Start")
	}

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdown.Store(true)
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports ready once catalogs are loaded and until shutdown starts.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"catalogs": "ok"}
	ready := true

	if s.gatekeepers == nil || len(s.gatekeepers.Names()) == 0 {
		components["catalogs"] = "error"
		ready = false
	}
	if s.shutdown.Load() {
		components["server"] = "shutting_down"
		ready = false
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

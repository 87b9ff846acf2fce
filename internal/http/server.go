// Package http provides the HTTP server, router and cross-cutting middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/inventory/internal/auth/http"
	authService "github.com/allisson/inventory/internal/auth/service"
	categoryHTTP "github.com/allisson/inventory/internal/category/http"
	"github.com/allisson/inventory/internal/config"
	"github.com/allisson/inventory/internal/metrics"
	productHTTP "github.com/allisson/inventory/internal/product/http"
)

// Server represents the HTTP server.
type Server struct {
	*listener
	db     *sql.DB
	logger *slog.Logger
	router *gin.Engine
}

// NewServer creates a new HTTP server. SetupRouter must be called before Start.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		listener: newListener("http server", host, port, logger),
		db:       db,
		logger:   logger,
	}
}

// SetupRouter builds the gin engine with every route and middleware.
//
// Reads on /productos and /categorias are public. Mutations pass through the
// authentication middleware and then, when enabled, the per-caller rate limiter.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	productHandler *productHTTP.ProductHandler,
	categoryHandler *categoryHTTP.CategoryHandler,
	verifier authService.TokenVerifier,
	metricsProvider *metrics.Provider,
) {
	gin.SetMode(cfg.GetGinMode())

	router := newBaseRouter(s.logger)

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	protected := []gin.HandlerFunc{authHTTP.AuthenticationMiddleware(verifier, s.logger)}
	if cfg.RateLimitEnabled {
		protected = append(
			protected,
			authHTTP.RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger),
		)
	}

	products := router.Group("/productos")
	{
		products.GET("", productHandler.ListHandler)

		writes := products.Group("", protected...)
		writes.POST("", productHandler.CreateHandler)
		writes.PUT("/:id", productHandler.UpdateHandler)
	}

	categories := router.Group("/categorias")
	{
		categories.GET("", categoryHandler.ListHandler)

		writes := categories.Group("", protected...)
		writes.POST("", categoryHandler.CreateHandler)
		writes.PUT("/:id", categoryHandler.UpdateHandler)
		writes.DELETE("/:id", categoryHandler.DeleteHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	return s.serve(s.router)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports 503 until the database answers a ping.
func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}

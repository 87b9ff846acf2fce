package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/inventory/internal/metrics"
)

// MetricsServer exposes the Prometheus scrape endpoint on its own port, away from the
// inventory API.
type MetricsServer struct {
	*listener
	router http.Handler
}

// NewMetricsServer mounts /metrics for the given provider. A nil provider yields a
// server that only answers 404.
func NewMetricsServer(
	host string,
	port int,
	logger *slog.Logger,
	metricsProvider *metrics.Provider,
) *MetricsServer {
	router := newBaseRouter(logger)
	if metricsProvider != nil {
		router.GET("/metrics", gin.WrapH(metricsProvider.Handler()))
	}

	return &MetricsServer{
		listener: newListener("metrics server", host, port, logger),
		router:   router,
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *MetricsServer) GetHandler() http.Handler {
	return s.router
}

// Start serves /metrics and blocks until Shutdown.
func (s *MetricsServer) Start(ctx context.Context) error {
	return s.serve(s.router)
}

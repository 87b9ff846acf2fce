package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/allisson/inventory/internal/errors"
	"github.com/allisson/inventory/internal/httputil"
)

// listener owns one bound http.Server. Server and MetricsServer embed it.
type listener struct {
	name   string
	server *http.Server
	logger *slog.Logger
}

func newListener(name, host string, port int, logger *slog.Logger) *listener {
	return &listener{
		name:   name,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// serve blocks until the listener is shut down or fails to bind.
func (l *listener) serve(handler http.Handler) error {
	l.server.Handler = handler

	l.logger.Info("starting "+l.name, slog.String("addr", l.server.Addr))

	if err := l.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start %s: %w", l.name, err)
	}

	return nil
}

// Shutdown gracefully stops the listener, waiting for in-flight requests until ctx ends.
func (l *listener) Shutdown(ctx context.Context) error {
	l.logger.Info("shutting down " + l.name)
	return l.server.Shutdown(ctx)
}

// newBaseRouter returns the engine every listener starts from. Unmatched routes answer
// with the JSON not_found body.
func newBaseRouter(logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))
	router.NoRoute(func(c *gin.Context) {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrNotFound, c.Request.Method+" "+c.Request.URL.Path), nil)
	})
	return router
}

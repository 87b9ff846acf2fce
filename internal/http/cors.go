package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// corsConfig allows browser clients of the inventory API to send bearer tokens and read
// the request id and the write limiter's back-off. Tokens travel in the Authorization
// header, never in cookies, so credentials mode stays off.
func corsConfig(origins []string) cors.Config {
	return cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"X-Request-Id", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
}

// createCORSMiddleware returns nil when CORS is disabled or CORS_ALLOW_ORIGINS holds no
// usable origin.
func createCORSMiddleware(enabled bool, allowOriginsStr string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins := parseOrigins(allowOriginsStr)
	if len(origins) == 0 {
		logger.Warn("CORS enabled but CORS_ALLOW_ORIGINS is empty, not applying CORS")
		return nil
	}

	logger.Info("CORS enabled", slog.Any("origins", origins))

	return cors.New(corsConfig(origins))
}

func parseOrigins(originsStr string) []string {
	var origins []string
	for _, part := range strings.Split(originsStr, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

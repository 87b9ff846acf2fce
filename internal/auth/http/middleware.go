package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/inventory/internal/auth/domain"
	authService "github.com/allisson/inventory/internal/auth/service"
	"github.com/allisson/inventory/internal/httputil"
)

const bearerPrefix = "bearer "

// AuthenticationMiddleware verifies the "Authorization: Bearer <token>" header
// (case-insensitive scheme) and stores the decoded claims in the request context.
//
//   - no Authorization header: 401
//   - any other scheme, an empty token or a token the verifier rejects: 403
//
// A rejected request is aborted before any handler runs.
func AuthenticationMiddleware(verifier authService.TokenVerifier, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			reject(c, authDomain.ErrMissingCredential, logger)
			return
		}

		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			reject(c, authDomain.ErrInvalidCredential, logger)
			return
		}

		token := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if token == "" {
			logger.Debug("authentication failed: empty bearer token")
			reject(c, authDomain.ErrInvalidCredential, logger)
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			reject(c, err, logger)
			return
		}

		c.Request = c.Request.WithContext(WithClaims(c.Request.Context(), claims))

		logger.Debug("authentication successful", slog.String("subject", claims.Subject))

		c.Next()
	}
}

func reject(c *gin.Context, err error, logger *slog.Logger) {
	httputil.HandleErrorGin(c, err, logger)
	c.Abort()
}

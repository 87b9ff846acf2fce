package http

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/allisson/inventory/internal/httputil"
)

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterIdleTTL         = time.Hour
)

// rateLimiterStore holds one token bucket per caller.
type rateLimiterStore struct {
	limiters sync.Map // map[string]*rateLimiterEntry
	rps      float64
	burst    int
	now      func() time.Time
}

type rateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

// RateLimitMiddleware enforces a token bucket per caller. Callers are keyed by the
// verified token subject when AuthenticationMiddleware ran before it, and by client IP
// otherwise. Exceeding the limit yields 429 with a Retry-After header.
//
// Stale buckets are evicted in the background until ctx is cancelled.
func RateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newRateLimiterStore(rps, burst)

	go store.cleanupStale(ctx, limiterCleanupInterval)

	return func(c *gin.Context) {
		key := callerKey(c)
		limiter := store.getLimiter(key)

		if !limiter.Allow() {
			retryAfter := retryAfterSeconds(limiter)

			logger.Debug("rate limit exceeded",
				slog.String("caller", key),
				slog.Int("retry_after", retryAfter))

			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httputil.ErrorResponse{
				Error:   "rate_limit_exceeded",
				Message: "Demasiadas solicitudes, intente nuevamente más tarde",
			})
			return
		}

		c.Next()
	}
}

func newRateLimiterStore(rps float64, burst int) *rateLimiterStore {
	return &rateLimiterStore{
		rps:   rps,
		burst: burst,
		now:   time.Now,
	}
}

func callerKey(c *gin.Context) string {
	if claims, ok := GetClaims(c.Request.Context()); ok {
		if key := claims.CallerKey(); key != "" {
			return key
		}
	}
	return "ip:" + c.ClientIP()
}

// retryAfterSeconds rounds the wait for the next token up to whole seconds, min 1.
func retryAfterSeconds(limiter *rate.Limiter) int {
	reservation := limiter.Reserve()
	delay := reservation.Delay()
	reservation.Cancel()

	seconds := int(math.Ceil(delay.Seconds()))
	if seconds < 1 {
		return 1
	}
	return seconds
}

func (s *rateLimiterStore) getLimiter(key string) *rate.Limiter {
	if val, ok := s.limiters.Load(key); ok {
		entry := val.(*rateLimiterEntry)
		entry.mu.Lock()
		entry.lastAccess = s.now()
		entry.mu.Unlock()
		return entry.limiter
	}

	entry := &rateLimiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastAccess: s.now(),
	}
	actual, _ := s.limiters.LoadOrStore(key, entry)
	return actual.(*rateLimiterEntry).limiter
}

func (s *rateLimiterStore) cleanupStale(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.evictIdle(limiterIdleTTL)
		}
	}
}

func (s *rateLimiterStore) evictIdle(ttl time.Duration) {
	threshold := s.now().Add(-ttl)
	s.limiters.Range(func(key, value any) bool {
		entry := value.(*rateLimiterEntry)
		entry.mu.Lock()
		stale := entry.lastAccess.Before(threshold)
		entry.mu.Unlock()

		if stale {
			s.limiters.Delete(key)
		}
		return true
	})
}

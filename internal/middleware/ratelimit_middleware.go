package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"esports-api/internal/redis"
	"esports-api/internal/transport/httpdto"
	esports_errors "esports-api/pkg/errors"
	"esports-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Limiter is satisfied by *redis.RateLimiter.
type Limiter interface {
	AllowClient(ctx context.Context, ip string) (*redis.RateLimitResult, error)
}

// RateLimitMiddleware limits requests per client IP. When the limiter itself
// fails the request is let through and the failure logged.
func RateLimitMiddleware(limiter Limiter, l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		result, err := limiter.AllowClient(c.Request.Context(), ip)
		if err != nil {
			if l != nil {
				l.WithContext(c.Request.Context()).Warnf("rate limit unavailable: %v", err)
			}
			c.Next()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			_ = c.Error(fmt.Errorf("client %s: %w", ip, esports_errors.ErrRateLimited))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httpdto.Error("Rate limit exceeded. Please try again later."))
			return
		}

		c.Next()
	}
}

// setRateLimitHeaders sets standard rate limit response headers
func setRateLimitHeaders(c *gin.Context, result *redis.RateLimitResult) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(int64(result.ResetIn.Seconds()), 10))
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"items-service/pkg/response"
)

// RateLimit applies a global per-minute request budget. A budget of zero
// disables limiting entirely.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if m.rateLimitPerMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := rate.NewLimiter(rate.Limit(float64(m.rateLimitPerMin)/60.0), m.rateLimitPerMin)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "rate limit exceeded",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

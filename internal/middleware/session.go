package middleware

import (
	"github.com/gin-gonic/gin"

	pkgErrors "items-service/pkg/errors"
	"items-service/pkg/response"
	"items-service/pkg/sqldb"
)

// Session acquires one store session before the handler runs and releases
// it after, on every exit path — normal return, error response or panic
// (the deferred Close runs while Recovery unwinds). When acquisition fails
// the request is aborted with 503 before any data access happens.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		s, err := m.sessions.Acquire(ctx)
		if err != nil {
			m.l.Errorf(ctx, "middleware.Session acquire: %v", err)
			response.Error(c, pkgErrors.ErrServiceUnavailable)
			c.Abort()
			return
		}
		defer s.Close()

		c.Request = c.Request.WithContext(sqldb.WithSession(ctx, s))
		c.Next()
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"items-service/pkg/log"
)

// HeaderRequestID is the response header carrying the request ID.
const HeaderRequestID = "X-Request-ID"

// RequestID assigns a UUID to every request (honoring one supplied by the
// client), echoes it in the response header and stores it in the context
// so the logger attaches it to every record.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"items-service/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route runs behind the Session middleware: one store session is
// acquired before the handler and released after it, on every exit path.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	items := rg.Group("/items", mw.Session())
	{
		items.POST("/", h.Create)
		items.GET("/:item_id", h.Detail)
		items.PUT("/:item_id", h.Update)
		items.DELETE("/:item_id", h.Delete)
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"rental-ops/internal/middleware"
)

// RegisterRoutes mounts the inbox triage routes under rg. All routes require Auth.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	items := rg.Group("/inbox", mw.Auth())
	{
		items.GET("", h.List)
		items.POST("/:id/accept", h.Accept)
		items.POST("/:id/dismiss", h.Dismiss)
	}
}

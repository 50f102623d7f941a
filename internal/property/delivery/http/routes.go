package http

import (
	"github.com/gin-gonic/gin"

	"rental-ops/internal/middleware"
)

// RegisterRoutes mounts the property routes under rg. All routes require Auth.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	props := rg.Group("/properties", mw.Auth())
	{
		props.POST("", h.Create)
		props.GET("", h.List)
		props.GET("/:id", h.Detail)
		props.PUT("/:id", h.Update)
		props.DELETE("/:id", h.Delete)
	}
}

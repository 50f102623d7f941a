package http

import (
	"github.com/gin-gonic/gin"

	"rental-ops/internal/middleware"
)

// RegisterRoutes mounts the reservation routes under rg. All routes require Auth.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	res := rg.Group("/properties/:id/reservations", mw.Auth())
	{
		res.GET("", h.List)
		res.PUT("", h.Replace)
		res.POST("/sync", h.Sync)
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"rental-ops/internal/middleware"
)

// RegisterRoutes mounts the task and schedule routes under rg. All routes require Auth.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.GET("/:id/suggestions", h.Suggest)
		tasks.POST("/:id/schedule", h.Schedule)
	}

	rg.POST("/schedule/suggest", mw.Auth(), h.Preview)
}

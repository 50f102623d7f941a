package webhook

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the inbound webhook endpoints. They authenticate by
// signature, not by API key.
func RegisterRoutes(r gin.IRouter, h *Handler) {
	hooks := r.Group("/webhook")
	{
		hooks.POST("/inbox/:source", h.HandleInbox)
	}
}

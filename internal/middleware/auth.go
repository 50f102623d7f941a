package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"rental-ops/internal/model"
	"rental-ops/pkg/response"
)

// Auth guards internal API routes with the shared API key and stores the
// caller's Scope on the context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.internalKey != "" {
			key := c.GetHeader(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
				m.l.Warnf(c.Request.Context(), "middleware.Auth: rejected %s %s from %s", c.Request.Method, c.FullPath(), c.ClientIP())
				response.Unauthorized(c)
				return
			}
		}

		actor := c.GetHeader(HeaderActor)
		if actor == "" {
			actor = defaultActor
		}
		c.Set(scopeKey, model.Scope{UserID: actor})
		c.Next()
	}
}

// GetScope returns the Scope stored by Auth, or SystemScope when absent.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.SystemScope
}

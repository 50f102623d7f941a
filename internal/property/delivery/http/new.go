package http

import (
	"github.com/gin-gonic/gin"

	"rental-ops/internal/property"
	"rental-ops/pkg/log"
)

// Handler is the HTTP delivery for properties.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc property.UseCase
}

// New creates a new HTTP handler for the property domain.
func New(l log.Logger, uc property.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

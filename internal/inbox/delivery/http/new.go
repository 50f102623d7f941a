package http

import (
	"github.com/gin-gonic/gin"

	"rental-ops/internal/inbox"
	"rental-ops/pkg/log"
)

// Handler is the HTTP delivery for triaging inbox items.
type Handler interface {
	List(c *gin.Context)
	Accept(c *gin.Context)
	Dismiss(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc inbox.UseCase
}

// New creates a new HTTP handler for the inbox domain.
func New(l log.Logger, uc inbox.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"rental-ops/internal/task"
	"rental-ops/pkg/log"
)

// Handler is the HTTP delivery for tasks and schedule suggestions.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Suggest(c *gin.Context)
	Schedule(c *gin.Context)
	Preview(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"rental-ops/internal/reservation"
	"rental-ops/pkg/log"
)

// Handler is the HTTP delivery for property reservations.
type Handler interface {
	List(c *gin.Context)
	Replace(c *gin.Context)
	Sync(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  reservation.UseCase
	now func() time.Time
}

// New creates a new HTTP handler for the reservation domain.
func New(l log.Logger, uc reservation.UseCase) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		now: time.Now,
	}
}

package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"rental-ops/internal/middleware"
	"rental-ops/internal/property"
	"rental-ops/internal/reservation"
	reservationHTTP "rental-ops/internal/reservation/delivery/http"
	reservationRepo "rental-ops/internal/reservation/repository/postgre"
	reservationUC "rental-ops/internal/reservation/usecase"
)

// setupReservationDomain registers /api/v1/properties/:id/reservations.
func (srv *HTTPServer) setupReservationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, propertyUC property.UseCase) reservation.UseCase {
	repo := reservationRepo.New(srv.db, srv.l)
	uc := reservationUC.New(repo, propertyUC, srv.calendar, srv.lookaheadDays, srv.l)
	h := reservationHTTP.New(srv.l, uc)
	reservationHTTP.RegisterRoutes(api, h, mw)

	if srv.calendar == nil {
		srv.l.Infof(ctx, "httpserver: reservation domain registered (calendar sync disabled)")
	} else {
		srv.l.Infof(ctx, "httpserver: reservation domain registered")
	}
	return uc
}

package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"rental-ops/internal/middleware"
	"rental-ops/internal/property"
	"rental-ops/internal/reservation"
	"rental-ops/internal/task"
	taskHTTP "rental-ops/internal/task/delivery/http"
	taskRepo "rental-ops/internal/task/repository/postgre"
	"rental-ops/internal/task/suggester"
	taskUC "rental-ops/internal/task/usecase"
)

// setupTaskDomain registers /api/v1/tasks and /api/v1/schedule.
func (srv *HTTPServer) setupTaskDomain(
	ctx context.Context,
	api *gin.RouterGroup,
	mw middleware.Middleware,
	propertyUC property.UseCase,
	reservationUC reservation.UseCase,
) (task.UseCase, error) {
	s, err := suggester.New(srv.strategy, srv.llm, suggester.NewMetrics(srv.registry), srv.l)
	if err != nil {
		return nil, fmt.Errorf("suggester: %w", err)
	}

	repo := taskRepo.New(srv.db, srv.l)
	uc := taskUC.New(srv.l, taskUC.Deps{
		Repo:            repo,
		PropertyUC:      propertyUC,
		ReservationUC:   reservationUC,
		Suggester:       s,
		Calendar:        srv.calendar,
		DefaultLocation: srv.defaultLocation,
	})
	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "httpserver: task domain registered (strategy=%s)", s.Name())
	return uc, nil
}

package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"rental-ops/internal/middleware"
	"rental-ops/internal/property"
	propertyHTTP "rental-ops/internal/property/delivery/http"
	propertyRepo "rental-ops/internal/property/repository/postgre"
	propertyUC "rental-ops/internal/property/usecase"
)

// setupPropertyDomain registers /api/v1/properties.
//
// Every domain follows the same four steps:
//  1. Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. UseCase:      uc := mydomainUC.New(repo, ...)
//  3. HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Routes:       mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupPropertyDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) property.UseCase {
	repo := propertyRepo.New(srv.db, srv.l)
	uc := propertyUC.New(repo, srv.l)
	h := propertyHTTP.New(srv.l, uc)
	propertyHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "httpserver: property domain registered")
	return uc
}

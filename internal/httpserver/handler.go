package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rental-ops/internal/middleware"
	"rental-ops/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.internalKey, middleware.NewMetrics(srv.registry))

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes(mw)
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery(), mw.RequestID(), mw.Metrics())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "httpserver: production mode")
	} else {
		srv.l.Infof(ctx, "httpserver: %s mode", srv.environment)
	}
	if srv.internalKey == "" {
		srv.l.Warnf(ctx, "httpserver: auth.internal_key is empty, API routes are unauthenticated")
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.registry, promhttp.HandlerOpts{
		Registry: srv.registry,
	})))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires every domain bottom-up: properties, reservations,
// tasks, then the inbox that feeds tasks.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	propertyUC := srv.setupPropertyDomain(ctx, api, mw)
	reservationUC := srv.setupReservationDomain(ctx, api, mw, propertyUC)

	taskUC, err := srv.setupTaskDomain(ctx, api, mw, propertyUC, reservationUC)
	if err != nil {
		return err
	}

	srv.setupInboxDomain(ctx, api, mw, propertyUC, taskUC)
	return nil
}

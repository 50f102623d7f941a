package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	inboxHTTP "rental-ops/internal/inbox/delivery/http"
	inboxRepo "rental-ops/internal/inbox/repository/postgre"
	inboxUC "rental-ops/internal/inbox/usecase"
	"rental-ops/internal/middleware"
	"rental-ops/internal/property"
	"rental-ops/internal/task"
	"rental-ops/internal/webhook"
)

// setupInboxDomain registers /api/v1/inbox and, when enabled, the signed
// /webhook/inbox/:source intake.
func (srv *HTTPServer) setupInboxDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, propertyUC property.UseCase, taskUC task.UseCase) {
	repo := inboxRepo.New(srv.db, srv.l)
	uc := inboxUC.New(repo, propertyUC, taskUC, srv.l)
	inboxHTTP.RegisterRoutes(api, inboxHTTP.New(srv.l, uc), mw)

	if !srv.webhookEnabled {
		srv.l.Infof(ctx, "httpserver: inbox webhook disabled, skipping /webhook routes")
		return
	}
	if srv.webhookSecurity.Secret == "" {
		srv.l.Warnf(ctx, "httpserver: webhook.secret is empty, every inbox webhook will be rejected")
	}
	webhook.RegisterRoutes(srv.gin, webhook.NewHandler(uc, srv.webhookSecurity, srv.l))
	srv.l.Infof(ctx, "httpserver: inbox webhook registered at POST /webhook/inbox/:source")
}

package http

import (
	"github.com/gin-gonic/gin"

	"rental-ops/internal/middleware"
	"rental-ops/pkg/response"
)

// List godoc
// @Summary     List inbox items
// @Tags        Inbox
// @Produce     json
// @Param       status      query string false "pending (default), accepted, dismissed"
// @Param       property_id query string false "Filter by property"
// @Param       limit       query int    false "Page size (default 20)"
// @Param       offset      query int    false "Page offset"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp
// @Router      /api/v1/inbox [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "inbox.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Accept godoc
// @Summary     Accept an inbox item as a task
// @Tags        Inbox
// @Produce     json
// @Param       id path string true "Inbox item ID"
// @Success     200 {object} itemDetailResp
// @Failure     404 {object} response.Resp
// @Failure     409 {object} response.Resp "Already resolved"
// @Router      /api/v1/inbox/{id}/accept [POST]
func (h *handler) Accept(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Accept(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "inbox.http.Accept: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, itemDetailResp{Item: newItemResp(out.Item), TaskID: out.Task.ID})
}

// Dismiss godoc
// @Summary     Dismiss an inbox item
// @Tags        Inbox
// @Produce     json
// @Param       id path string true "Inbox item ID"
// @Success     200 {object} itemDetailResp
// @Failure     404 {object} response.Resp
// @Failure     409 {object} response.Resp "Already resolved"
// @Router      /api/v1/inbox/{id}/dismiss [POST]
func (h *handler) Dismiss(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Dismiss(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "inbox.http.Dismiss: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, itemDetailResp{Item: newItemResp(out.Item)})
}

package http

import (
	"github.com/gin-gonic/gin"

	"rental-ops/internal/middleware"
	"rental-ops/pkg/response"
)

// Create godoc
// @Summary     Create a property
// @Tags        Properties
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Property"
// @Success     200  {object} detailResp
// @Failure     400  {object} response.Resp
// @Failure     409  {object} response.Resp "Name already exists"
// @Router      /api/v1/properties [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Create(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "property.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Property: newPropertyResp(out.Property)})
}

// List godoc
// @Summary     List properties
// @Tags        Properties
// @Produce     json
// @Param       limit  query int false "Page size (default 20)"
// @Param       offset query int false "Page offset"
// @Success     200 {object} listResp
// @Router      /api/v1/properties [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "property.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get a property
// @Tags        Properties
// @Produce     json
// @Param       id path string true "Property ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/properties/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Detail(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "property.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Property: newPropertyResp(out.Property)})
}

// Update godoc
// @Summary     Update a property
// @Description Partial update. Send "calendar_id": "" to unlink the calendar.
// @Tags        Properties
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Property ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/properties/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Update(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "property.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Property: newPropertyResp(out.Property)})
}

// Delete godoc
// @Summary     Delete a property
// @Description Removes the property with its reservations and tasks.
// @Tags        Properties
// @Produce     json
// @Param       id path string true "Property ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/properties/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, middleware.GetScope(c), c.Param("id")); err != nil {
		h.l.Warnf(ctx, "property.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

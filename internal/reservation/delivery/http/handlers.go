package http

import (
	"github.com/gin-gonic/gin"

	"rental-ops/internal/middleware"
	"rental-ops/pkg/response"
)

// List godoc
// @Summary     List reservations of a property
// @Description Stays overlapping [from, to]. Both bounds are optional ISO-8601 values.
// @Tags        Reservations
// @Produce     json
// @Param       id   path  string true  "Property ID"
// @Param       from query string false "Lower bound"
// @Param       to   query string false "Upper bound"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/properties/{id}/reservations [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Warnf(ctx, "reservation.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out.Property, out.Reservations))
}

// Replace godoc
// @Summary     Replace the manual reservations of a property
// @Description Validates every entry first; one bad boundary rejects the whole set.
// @Description Values without an offset are read in the property timezone.
// @Tags        Reservations
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Property ID"
// @Param       body body replaceReq true "Reservations"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/properties/{id}/reservations [PUT]
func (h *handler) Replace(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReplaceReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Replace(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "reservation.http.Replace: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out.Property, out.Reservations))
}

// Sync godoc
// @Summary     Pull reservations from the linked Google Calendar
// @Tags        Reservations
// @Produce     json
// @Param       id path string true "Property ID"
// @Success     200 {object} syncResp
// @Failure     404 {object} response.Resp
// @Failure     409 {object} response.Resp "Calendar not linked"
// @Router      /api/v1/properties/{id}/reservations/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.SyncFromCalendar(ctx, c.Param("id"), h.now())
	if err != nil {
		h.l.Warnf(ctx, "reservation.http.Sync: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, syncResp{PropertyID: out.PropertyID, Imported: out.Imported, Skipped: out.Skipped})
}

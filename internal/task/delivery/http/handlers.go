package http

import (
	"github.com/gin-gonic/gin"

	"rental-ops/internal/middleware"
	"rental-ops/internal/task"
	"rental-ops/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Urgency defaults to "medium" when omitted.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task"
// @Success     200  {object} detailResp
// @Failure     400  {object} response.Resp
// @Failure     404  {object} response.Resp "Unknown property"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Create(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "task.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Task: newTaskResp(out.Task)})
}

// List godoc
// @Summary     List tasks
// @Tags        Tasks
// @Produce     json
// @Param       property_id query string false "Filter by property"
// @Param       status      query string false "open, scheduled, done, cancelled"
// @Param       urgency     query string false "urgent, high, medium, low"
// @Param       limit       query int    false "Page size (default 20)"
// @Param       offset      query int    false "Page offset"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "task.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Detail(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "task.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Task: newTaskResp(out.Task)})
}

// Update godoc
// @Summary     Update a task
// @Description Partial update. Setting status back to "open" clears the booking.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Update(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "task.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Task: newTaskResp(out.Task)})
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, middleware.GetScope(c), c.Param("id")); err != nil {
		h.l.Warnf(ctx, "task.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Suggest godoc
// @Summary     Suggest service times for a task
// @Description Uses the task's urgency and the property's stored reservations.
// @Tags        Scheduling
// @Produce     json
// @Param       id  path  string true  "Task ID"
// @Param       now query string false "Reference instant (ISO-8601). Defaults to the server clock."
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/tasks/{id}/suggestions [GET]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Suggest(ctx, middleware.GetScope(c), task.SuggestInput{
		TaskID: c.Param("id"),
		Now:    c.Query("now"),
	})
	if err != nil {
		h.l.Warnf(ctx, "task.http.Suggest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSuggestResp(out))
}

// Schedule godoc
// @Summary     Book a task
// @Description Mirrors the booking to the property's Google Calendar when linked.
// @Tags        Scheduling
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Task ID"
// @Param       body body scheduleReq true "Booking"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Failure     409 {object} response.Resp "Task closed"
// @Router      /api/v1/tasks/{id}/schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Schedule(ctx, middleware.GetScope(c), task.ScheduleInput{
		TaskID:          c.Param("id"),
		At:              req.At,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		h.l.Warnf(ctx, "task.http.Schedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Task: newTaskResp(out.Task)})
}

// Preview godoc
// @Summary     Suggest service times for an urgency and calendar
// @Tags        Scheduling
// @Accept      json
// @Produce     json
// @Param       body body previewReq true "Suggestion request"
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/schedule/suggest [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPreviewReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Preview(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "task.http.Preview: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSuggestResp(out))
}

package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"rental-ops/internal/reservation"
	"rental-ops/internal/scheduling"
	pkgErrors "rental-ops/pkg/errors"
)

var errIDRequired = errors.New("id is required")

func (h *handler) processListReq(c *gin.Context) (reservation.ListInput, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return reservation.ListInput{}, err
	}

	input := reservation.ListInput{PropertyID: c.Param("id")}
	if input.PropertyID == "" {
		return input, errIDRequired
	}

	var err error
	if input.From, err = h.parseBound("from", req.From); err != nil {
		return input, err
	}
	if input.To, err = h.parseBound("to", req.To); err != nil {
		return input, err
	}
	return input, nil
}

func (h *handler) parseBound(name, v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	t, err := scheduling.ParseDateTime(v, time.UTC)
	if err != nil {
		return time.Time{}, pkgErrors.NewBadRequest("%s: %v", name, err)
	}
	return t, nil
}

func (h *handler) processReplaceReq(c *gin.Context) (replaceReq, error) {
	var req replaceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.PropertyID = c.Param("id")
	if req.PropertyID == "" {
		return req, errIDRequired
	}
	return req, nil
}

package webhook

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"rental-ops/internal/inbox"
	"rental-ops/internal/model"
	"rental-ops/internal/property"
	pkgErrors "rental-ops/pkg/errors"
	"rental-ops/pkg/response"
)

// HandleInbox stores a signed maintenance request from an external source.
// Storage is synchronous so a 200 means the item is persisted.
func (h *Handler) HandleInbox(c *gin.Context) {
	ctx := c.Request.Context()
	source := c.Param("source")

	if !validSource(source) {
		response.Error(c, pkgErrors.NewBadRequest("invalid source %q", source))
		return
	}

	if err := h.security.ValidateIPAddress(c.ClientIP()); err != nil {
		h.l.Warnf(ctx, "webhook.HandleInbox: %v", err)
		response.Forbidden(c)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		h.l.Warnf(ctx, "webhook.HandleInbox: read body: %v", err)
		response.Error(c, pkgErrors.NewBadRequest("unreadable body"))
		return
	}

	if err := h.security.ValidateSignature(body, c.GetHeader(HeaderSignature)); err != nil {
		h.l.Warnf(ctx, "webhook.HandleInbox: %s: %v", source, err)
		response.Unauthorized(c)
		return
	}

	if err := h.security.CheckRateLimit(source); err != nil {
		h.l.Warnf(ctx, "webhook.HandleInbox: %v", err)
		response.TooManyRequests(c)
		return
	}

	var payload inboxPayload
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&payload); err != nil {
		response.Error(c, pkgErrors.NewBadRequest("invalid json: %v", err))
		return
	}
	if err := binding.Validator.ValidateStruct(&payload); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.inboxUC.Ingest(ctx, model.Scope{UserID: "webhook:" + source}, inbox.IngestInput{
		Source:     source,
		ExternalID: payload.ExternalID,
		PropertyID: payload.PropertyID,
		Title:      payload.Title,
		Body:       payload.Body,
		Urgency:    payload.Urgency,
	})
	if err != nil {
		h.l.Warnf(ctx, "webhook.HandleInbox.Ingest: %v", err)
		response.Error(c, mapError(err))
		return
	}

	status := "accepted"
	if out.Duplicate {
		status = "duplicate"
	}
	response.OK(c, ingestResp{Status: status, ItemID: out.Item.ID, Urgency: string(out.Item.Urgency)})
}

func mapError(err error) error {
	switch {
	case errors.Is(err, property.ErrPropertyNotFound):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, model.ErrInvalidUrgency),
		errors.Is(err, inbox.ErrExternalIDRequired),
		errors.Is(err, inbox.ErrTitleRequired),
		errors.Is(err, inbox.ErrPropertyRequired),
		errors.Is(err, inbox.ErrSourceRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// validSource accepts short lowercase slugs such as "guesty" or "email".
func validSource(s string) bool {
	if s == "" || len(s) > 32 {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' && r != '_' {
			return false
		}
	}
	return true
}

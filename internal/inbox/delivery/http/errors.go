package http

import (
	"errors"
	"net/http"

	"rental-ops/internal/inbox"
	"rental-ops/internal/model"
	"rental-ops/internal/property"
	"rental-ops/internal/task"
	pkgErrors "rental-ops/pkg/errors"
)

// mapError translates use-case errors into HTTP errors. Unknown errors become 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, inbox.ErrItemNotFound),
		errors.Is(err, property.ErrPropertyNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, inbox.ErrAlreadyResolved):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, inbox.ErrInvalidStatus),
		errors.Is(err, model.ErrInvalidUrgency),
		errors.Is(err, task.ErrTitleRequired),
		errors.Is(err, task.ErrPropertyRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

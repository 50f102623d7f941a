package http

import (
	"errors"
	"net/http"

	"rental-ops/internal/model"
	"rental-ops/internal/property"
	"rental-ops/internal/scheduling"
	"rental-ops/internal/task"
	pkgErrors "rental-ops/pkg/errors"
)

// mapError translates use-case errors into HTTP errors. Unknown errors become 500.
func (h *handler) mapError(err error) error {
	var pe *scheduling.ParseError
	switch {
	case errors.As(err, &pe):
		return pkgErrors.NewBadRequest("%s", pe.Error())
	case errors.Is(err, task.ErrTaskNotFound),
		errors.Is(err, property.ErrPropertyNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrInvalidUrgency),
		errors.Is(err, task.ErrTitleRequired),
		errors.Is(err, task.ErrPropertyRequired),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidNow),
		errors.Is(err, task.ErrInvalidTime):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrTaskClosed):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

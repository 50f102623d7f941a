package http

import (
	"errors"
	"net/http"

	"rental-ops/internal/property"
	pkgErrors "rental-ops/pkg/errors"
)

// mapError translates use-case errors into HTTP errors. Unknown errors become 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, property.ErrPropertyNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, property.ErrDuplicateName):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, property.ErrInvalidTimezone),
		errors.Is(err, property.ErrNameRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

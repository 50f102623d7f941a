package http

import (
	"errors"
	"net/http"

	"rental-ops/internal/property"
	"rental-ops/internal/reservation"
	"rental-ops/internal/scheduling"
	pkgErrors "rental-ops/pkg/errors"
)

// mapError translates use-case errors into HTTP errors. Unknown errors become 500.
func (h *handler) mapError(err error) error {
	var pe *scheduling.ParseError
	switch {
	case errors.As(err, &pe):
		return pkgErrors.NewBadRequest("%s", pe.Error())
	case errors.Is(err, property.ErrPropertyNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, reservation.ErrInvalidRange):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, reservation.ErrCalendarNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

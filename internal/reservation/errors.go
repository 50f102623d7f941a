package reservation

import "errors"

var (
	ErrCalendarNotConfigured = errors.New("calendar sync is not configured for this property")
	ErrInvalidRange          = errors.New("from must not be after to")
)

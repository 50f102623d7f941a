package inbox

import "errors"

var (
	ErrItemNotFound       = errors.New("inbox item not found")
	ErrAlreadyResolved    = errors.New("inbox item was already accepted or dismissed")
	ErrSourceRequired     = errors.New("source is required")
	ErrExternalIDRequired = errors.New("external_id is required")
	ErrTitleRequired      = errors.New("title is required")
	ErrPropertyRequired   = errors.New("property_id is required")
	ErrInvalidStatus      = errors.New("invalid inbox status")
)

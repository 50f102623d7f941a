package property

import "errors"

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrDuplicateName    = errors.New("property name already exists")
	ErrInvalidTimezone  = errors.New("invalid timezone")
	ErrNameRequired     = errors.New("property name is required")
)

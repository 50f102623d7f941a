package scheduling

import (
	"errors"
	"fmt"
)

var ErrInvalidDateTime = errors.New("not a valid ISO-8601 date-time")

// ParseError reports the first reservation boundary that could not be parsed.
type ParseError struct {
	Index int    // position in the input sequence
	Field string // "start" or "end"
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("reservation %d: %s %q: %v", e.Index, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

package task

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrTitleRequired    = errors.New("task title is required")
	ErrPropertyRequired = errors.New("property_id is required")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrInvalidNow       = errors.New("invalid now")
	ErrInvalidTime      = errors.New("invalid schedule time")
	ErrTaskClosed       = errors.New("task is already done or cancelled")
	ErrInvalidTimezone  = errors.New("invalid default timezone")
)

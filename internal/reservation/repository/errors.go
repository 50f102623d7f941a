package repository

import "errors"

var (
	ErrFailedToList    = errors.New("failed to list records")
	ErrFailedToReplace = errors.New("failed to replace records")
)

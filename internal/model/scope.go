package model

// Scope identifies the caller on whose behalf a use case runs.
type Scope struct {
	UserID string
}

// SystemScope is used by background jobs and webhooks.
var SystemScope = Scope{UserID: "system"}

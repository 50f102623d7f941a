package middleware

const (
	HeaderAPIKey    = "X-API-Key"
	HeaderActor     = "X-Actor"
	HeaderRequestID = "X-Request-ID"

	scopeKey     = "scope"
	defaultActor = "internal"
)

package log

const (
	ModeProduction = "production"
	ModeDebug      = "debug"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// RequestIDKey is the context key under which middleware stores the request ID.
type RequestIDKey struct{}

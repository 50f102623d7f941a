package middleware

import (
	"rental-ops/pkg/log"
)

type Middleware struct {
	l           log.Logger
	internalKey string
	metrics     *Metrics
}

// New builds the shared middleware set. An empty internalKey disables API key
// checks; a nil metrics disables request instrumentation.
func New(l log.Logger, internalKey string, metrics *Metrics) Middleware {
	return Middleware{
		l:           l,
		internalKey: internalKey,
		metrics:     metrics,
	}
}

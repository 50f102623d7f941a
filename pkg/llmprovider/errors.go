package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net"

	"rental-ops/pkg/gemini"
	"rental-ops/pkg/openai"
)

// Manager-level failures.
var (
	ErrAllProvidersFailed    = errors.New("llm: every provider failed")
	ErrNoProvidersConfigured = errors.New("llm: no provider enabled")
	ErrInvalidRequest        = errors.New("llm: empty prompt")
)

// Failure kinds a ProviderError can carry. Retrying the same provider after
// either one is wasted work; the manager moves on to the next provider.
var (
	ErrProviderTimeout     = errors.New("provider timed out")
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// ProviderError is a failure from one named provider. Kind is nil when the
// failure does not fall into a known category.
type ProviderError struct {
	Provider string
	Kind     error
	Err      error
}

// newProviderError classifies a client error for provider name.
func newProviderError(name string, err error) *ProviderError {
	return &ProviderError{Provider: name, Kind: classify(err), Err: err}
}

func (e *ProviderError) Error() string {
	if e.Kind != nil {
		return fmt.Sprintf("provider %s: %v: %v", e.Provider, e.Kind, e.Err)
	}
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap exposes both the kind and the underlying client error to errors.Is.
func (e *ProviderError) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

func classify(err error) error {
	if errors.Is(err, openai.ErrRateLimited) || errors.Is(err, gemini.ErrRateLimited) {
		return ErrProviderRateLimited
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrProviderTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrProviderTimeout
	}
	return nil
}

// retryable reports whether another attempt on the same provider can help.
func retryable(err error) bool {
	return !errors.Is(err, ErrProviderRateLimited) && !errors.Is(err, ErrProviderTimeout)
}

package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable signals that no provider instance is wired.
var ErrProviderUnavailable = errors.New("provider unavailable")

// ProviderError captures a failed upstream call: network error, non-success
// HTTP status, or malformed JSON. Callers inside a batch treat it as "no
// data for this player", never as a batch-level fatal condition.
type ProviderError struct {
	Provider   string
	Operation  string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("%s: %s failed", e.Provider, e.Operation)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError wraps an upstream failure with provider and operation context.
func NewProviderError(provider, operation string, statusCode int, err error) *ProviderError {
	return &ProviderError{Provider: provider, Operation: operation, StatusCode: statusCode, Err: err}
}

// AsProviderError attempts to unwrap an error into a ProviderError.
func AsProviderError(err error) (*ProviderError, bool) {
	var pErr *ProviderError
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}

package api

import (
	"errors"
	"fmt"
)

// ErrHeartsExhausted is the platform refusing to grade a submission because
// the server-side hearts balance is already zero. It is an expected business
// condition, not a failure: the caller routes to the hearts-acquisition
// flow and leaves session state alone.
var ErrHeartsExhausted = errors.New("api: hearts exhausted")

// ErrUnauthorized means the API token was missing or rejected. Not
// retryable without new credentials.
var ErrUnauthorized = errors.New("api: unauthorized")

// TransientError wraps network, timeout, and server-side failures. The
// caller may retry the same call manually; no session state should have
// moved.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("api: transient failure: %v", e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// IsTransient reports whether err is a retryable protocol failure.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

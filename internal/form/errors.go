package form

import "errors"

var (
	// ErrSubmissionInFlight is returned by Submit while a name check is pending.
	ErrSubmissionInFlight = errors.New("form: submission already in flight")
	// ErrNameCheckUnavailable wraps failures of the remote name check.
	ErrNameCheckUnavailable = errors.New("form: name validation service unavailable")
	// ErrClosed is returned once the form has been torn down.
	ErrClosed = errors.New("form: closed")
)

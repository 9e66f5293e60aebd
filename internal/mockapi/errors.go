package mockapi

import "errors"

var (
	// ErrInvalidName is returned for an empty name.
	ErrInvalidName = errors.New("mockapi: name is required")
	// ErrRateLimited is returned when a client checks names too quickly.
	ErrRateLimited = errors.New("mockapi: too many name checks")
)

package timestamps

import "errors"

var (
	// ErrNotFound indicates the requested timestamp does not exist
	ErrNotFound = errors.New("timestamp not found")

	// ErrValidation indicates rejected input; the wrapped message is safe to
	// surface to the caller
	ErrValidation = errors.New("validation failed")
)

package links

import "errors"

var (
	// ErrNotFound indicates the requested link does not exist or is not visible
	ErrNotFound = errors.New("timestamp link not found")

	// ErrValidation indicates rejected input; the wrapped message is safe to
	// surface to the caller
	ErrValidation = errors.New("validation failed")
)

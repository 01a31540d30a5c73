package videos

import "errors"

var (
	// ErrNotFound indicates the requested video does not exist
	ErrNotFound = errors.New("video not found")

	// ErrAlreadyExists indicates the source video is already cataloged
	ErrAlreadyExists = errors.New("video already exists")

	// ErrValidation indicates rejected input; the wrapped message is safe to
	// surface to the caller
	ErrValidation = errors.New("validation failed")
)

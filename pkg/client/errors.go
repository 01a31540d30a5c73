package client

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation indicates the server rejected the request payload
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates the resource does not exist
	ErrNotFound = errors.New("not found")

	// ErrForbidden indicates the server refused access to the resource
	ErrForbidden = errors.New("forbidden")

	// ErrStaleResponse indicates a list response arrived after a newer list
	// request was issued and was discarded
	ErrStaleResponse = errors.New("stale list response discarded")
)

// errorBody is the error envelope every endpoint uses
type errorBody struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// mapError classifies a server error body by its message. Unrecognized
// messages fall back to a generic error carrying the HTTP status.
func mapError(status int, body errorBody) error {
	message := body.Message
	if len(body.Errors) > 0 {
		message = fmt.Sprintf("%s: %s", message, strings.Join(body.Errors, "; "))
	}

	lower := strings.ToLower(body.Message)
	switch {
	case strings.Contains(lower, "validation"):
		return fmt.Errorf("%s: %w", message, ErrValidation)
	case strings.Contains(lower, "not found"):
		return fmt.Errorf("%s: %w", message, ErrNotFound)
	case strings.Contains(lower, "forbidden"):
		return fmt.Errorf("%s: %w", message, ErrForbidden)
	}

	if message == "" {
		return fmt.Errorf("request failed with status %d", status)
	}
	return fmt.Errorf("request failed with status %d: %s", status, message)
}

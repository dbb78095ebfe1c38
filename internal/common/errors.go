package common

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned for a missing or expired token and for
	// HTTP 401/403 responses.
	ErrUnauthorized = errors.New("unauthorized")

	// Network errors.
	ErrUnavailable   = errors.New("server unavailable")
	ErrRequestFailed = errors.New("request failed")

	ErrValidation = errors.New("validation failed")
	ErrUpload     = errors.New("upload failed")
)

// IsNetwork reports whether err is a transport or non-2xx failure, as
// opposed to an authorization or validation problem.
func IsNetwork(err error) bool {
	return errors.Is(err, ErrUnavailable) || errors.Is(err, ErrRequestFailed)
}

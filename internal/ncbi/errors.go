package ncbi

import "errors"

// Common errors returned by the NCBI client.
var (
	// ErrNotFound indicates the identifier has no record, or the
	// service kept returning an implausibly short body.
	ErrNotFound = errors.New("record not found at NCBI")

	// ErrNetworkError indicates a connectivity problem.
	ErrNetworkError = errors.New("network error communicating with NCBI")

	// ErrInvalidResponse indicates an unexpected response payload.
	ErrInvalidResponse = errors.New("invalid response from NCBI")
)

// IsNotFound reports whether err means the record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

package lookup

import "errors"

// Common errors returned by the lookup clients.
var (
	// ErrNotFound indicates no matching author or paper was found.
	ErrNotFound = errors.New("author not found")

	// ErrAuthError indicates an authentication error (missing or invalid API key).
	ErrAuthError = errors.New("lookup authentication error")

	// ErrRateLimited indicates the upstream rate limit was exceeded.
	ErrRateLimited = errors.New("lookup rate limit exceeded")

	// ErrNetworkError indicates a network connectivity issue.
	ErrNetworkError = errors.New("network error during lookup")

	// ErrInvalidResponse indicates an unexpected upstream response.
	ErrInvalidResponse = errors.New("invalid lookup response")
)

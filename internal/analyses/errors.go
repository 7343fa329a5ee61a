package analyses

import "errors"

var (
	ErrNotFound = errors.New("analysis not found")
	// ErrUnauthorized carries the exact message surfaced to API clients.
	ErrUnauthorized = errors.New("Unauthorized")
	// ErrUpstreamAuth marks identity provider failures, as opposed to a
	// token the provider rejected.
	ErrUpstreamAuth = errors.New("identity provider unavailable")
	ErrPersistence  = errors.New("failed to store analysis")
)

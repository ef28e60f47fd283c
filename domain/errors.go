package domain

import "errors"

var (
	// ErrNotFound indicates the story or thread no longer exists.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited indicates the site throttled us even after backoff.
	ErrRateLimited = errors.New("rate limited")

	// ErrNetwork indicates a transport failure that survived retries.
	ErrNetwork = errors.New("network failure")

	// ErrParse indicates the response body violated the API contract.
	ErrParse = errors.New("malformed response")

	// ErrMalformedThread indicates cyclic or inconsistent comment linkage.
	// It applies to a single thread, never the whole session.
	ErrMalformedThread = errors.New("malformed comment thread")

	// ErrState indicates a navigation invariant was violated. It should
	// never occur in correct operation and is treated as fatal.
	ErrState = errors.New("invalid navigation state")
)

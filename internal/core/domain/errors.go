package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested document does not exist,
	// either in memory or on disk.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a malformed query, caught before any
	// model call is made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates an invalid configuration value, such
	// as a chunk overlap that is not smaller than the chunk size.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotReady indicates no documents have been ingested yet.
	// The router reports this as an ordinary message, not a failure.
	ErrNotReady = errors.New("documents not ready")

	// ErrProvider indicates the language-model backend failed after
	// exhausting retries.
	ErrProvider = errors.New("provider error")

	// ErrRateLimited indicates a transient provider rate limit. It is
	// absorbed by the client's blocking limiter and never surfaces to
	// the router.
	ErrRateLimited = errors.New("rate limited")

	// ErrExternalSearch indicates the paper-search backend failed
	// after exhausting retries.
	ErrExternalSearch = errors.New("external search error")

	// ErrStorageCorrupt indicates a persisted document could not be
	// decoded. Callers degrade it to ErrNotFound.
	ErrStorageCorrupt = errors.New("storage corrupt")
)

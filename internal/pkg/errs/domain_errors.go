package errs

import "errors"

// Core error taxonomy. Handlers map these to HTTP statuses; the streaming
// gate maps them to error events on the socket.
var (
	// ErrUnauthorized covers bad/missing credentials and driver/vehicle
	// mismatches on ingestion.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden covers role and ownership check failures.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound covers unknown vehicles, students and check-in tokens.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput covers malformed coordinates, unknown actions and
	// missing required fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstreamUnavailable is recovered internally (ETA fallback,
	// notification retry) and never surfaced to the caller as-is.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrPersistence means a durable write failed; no partial state
	// mutation is allowed after it.
	ErrPersistence = errors.New("persistence failure")
)

package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested key or entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedData indicates stored or fetched data could not be decoded.
	ErrMalformedData = errors.New("malformed data")

	// ErrSeedUnavailable indicates the seed document could not be fetched.
	ErrSeedUnavailable = errors.New("seed document unavailable")

	// ErrUnknownPreset indicates a preset key that is not in the catalogue.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrUnknownBackend indicates an unsupported storage backend.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

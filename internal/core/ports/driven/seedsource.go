package driven

import "context"

// SeedSource fetches the raw seed document.
type SeedSource interface {
	// Fetch returns the document body.
	// Network failures and non-success statuses are errors.
	Fetch(ctx context.Context) ([]byte, error)

	// Location describes where the document is fetched from.
	Location() string
}

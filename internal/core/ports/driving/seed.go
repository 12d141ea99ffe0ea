package driving

import "context"

// SeedService replaces the catalogue with a remote seed document.
type SeedService interface {
	// Load fetches the seed and replaces the catalogue.
	// Returns the number of services loaded. On failure the catalogue
	// is left untouched.
	Load(ctx context.Context) (int, error)

	// Location describes where the seed is fetched from.
	Location() string
}

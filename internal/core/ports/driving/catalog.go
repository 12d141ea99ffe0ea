package driving

import (
	"context"

	"github.com/custodia-labs/cotiza/internal/core/domain"
)

// CatalogService owns the service collection and its persisted mirror.
type CatalogService interface {
	// Initialize loads the persisted collection, seeding the default
	// service when it is absent or empty.
	Initialize(ctx context.Context) ([]domain.Service, error)

	// List returns a copy of the current collection.
	List(ctx context.Context) []domain.Service

	// Add appends a service and persists.
	Add(ctx context.Context, service domain.Service) error

	// AddInput validates raw form values and adds the resulting service.
	// Invalid input returns domain.ErrInvalidInput and persists nothing.
	AddInput(ctx context.Context, name, price, quantity string) error

	// Hire appends the preset with the given key and persists.
	Hire(ctx context.Context, key string) error

	// RemoveAt deletes the entry at index and persists.
	// Returns false without error when index is out of range.
	RemoveAt(ctx context.Context, index int) (bool, error)

	// ReplaceAll discards the collection and adopts services verbatim.
	ReplaceAll(ctx context.Context, services []domain.Service) error

	// Total returns the sum of subtotals.
	Total(ctx context.Context) float64

	// Reset clears the persisted mirror and re-runs the bootstrap.
	Reset(ctx context.Context) error
}

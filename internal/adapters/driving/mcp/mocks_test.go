package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cotiza/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/cotiza/internal/core/domain"
	"github.com/custodia-labs/cotiza/internal/core/ports/driving"
	"github.com/custodia-labs/cotiza/internal/core/services"
)

// mockSeedService implements driving.SeedService for testing.
type mockSeedService struct {
	catalog  driving.CatalogService
	services []domain.Service
	err      error
}

func (m *mockSeedService) Load(ctx context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if err := m.catalog.ReplaceAll(ctx, m.services); err != nil {
		return 0, err
	}
	return len(m.services), nil
}

func (m *mockSeedService) Location() string { return "./datos.json" }

func newTestServer(t *testing.T) (*Server, *services.CatalogService) {
	t.Helper()
	catalog := services.NewCatalogService(memory.NewKVStore(), nil)
	server, err := NewServer(&Ports{Catalog: catalog})
	require.NoError(t, err)
	return server, catalog
}

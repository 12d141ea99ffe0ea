package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cotiza/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/cotiza/internal/core/domain"
	"github.com/custodia-labs/cotiza/internal/core/services"
)

func TestServer_handleListServices(t *testing.T) {
	server, _ := newTestServer(t)

	_, out, err := server.handleListServices(context.Background(), nil, EmptyInput{})

	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, ServiceOutput{
		Index: 0, Name: "Página web", UnitPrice: 2900, Quantity: 1, Subtotal: 2900,
	}, out.Services[0])
	assert.Equal(t, 2900.0, out.Total)
}

func TestServer_handleAddService(t *testing.T) {
	ctx := context.Background()

	t.Run("valid service is appended", func(t *testing.T) {
		server, catalog := newTestServer(t)

		_, out, err := server.handleAddService(ctx, nil, AddServiceInput{Name: "Dominio", Price: 10.5, Quantity: 2})

		require.NoError(t, err)
		assert.Equal(t, 2, out.Count)
		assert.Equal(t, 2921.0, out.Total)
		assert.Equal(t, domain.NewService("Dominio", 10.5, 2), catalog.List(ctx)[1])
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		server, catalog := newTestServer(t)

		_, _, err := server.handleAddService(ctx, nil, AddServiceInput{Name: " ", Price: 1, Quantity: 1})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Len(t, catalog.List(ctx), 1)
	})
}

func TestServer_handleRemoveService(t *testing.T) {
	ctx := context.Background()

	t.Run("in range", func(t *testing.T) {
		server, _ := newTestServer(t)

		_, out, err := server.handleRemoveService(ctx, nil, RemoveServiceInput{Index: 0})

		require.NoError(t, err)
		assert.True(t, out.Removed)
		assert.Zero(t, out.Catalog.Count)
	})

	t.Run("out of range is a no-op", func(t *testing.T) {
		server, _ := newTestServer(t)

		_, out, err := server.handleRemoveService(ctx, nil, RemoveServiceInput{Index: 3})

		require.NoError(t, err)
		assert.False(t, out.Removed)
		assert.Equal(t, 1, out.Catalog.Count)
	})
}

func TestServer_handleTotal(t *testing.T) {
	server, catalog := newTestServer(t)
	require.NoError(t, catalog.Add(context.Background(), domain.NewService("X", 10, 2)))

	_, out, err := server.handleTotal(context.Background(), nil, EmptyInput{})

	require.NoError(t, err)
	assert.Equal(t, 2920.0, out.Total)
	assert.Equal(t, "The total of hired services is $2920", out.Message)
}

func TestServer_handleHirePreset(t *testing.T) {
	ctx := context.Background()

	t.Run("known preset", func(t *testing.T) {
		server, _ := newTestServer(t)

		_, out, err := server.handleHirePreset(ctx, nil, HirePresetInput{Preset: "sitio-web"})

		require.NoError(t, err)
		assert.Equal(t, "Sitio web", out.Services[1].Name)
	})

	t.Run("unknown preset", func(t *testing.T) {
		server, _ := newTestServer(t)

		_, _, err := server.handleHirePreset(ctx, nil, HirePresetInput{Preset: "hosting"})

		assert.ErrorIs(t, err, domain.ErrUnknownPreset)
	})
}

func TestServer_handleLoadSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("not configured", func(t *testing.T) {
		server, _ := newTestServer(t)

		_, _, err := server.handleLoadSeed(ctx, nil, EmptyInput{})

		assert.ErrorIs(t, err, ErrSeedNotConfigured)
	})

	t.Run("replaces catalogue", func(t *testing.T) {
		catalog := services.NewCatalogService(memory.NewKVStore(), nil)
		seed := &mockSeedService{catalog: catalog, services: []domain.Service{domain.NewService("X", 10, 2)}}
		server, err := NewServer(&Ports{Catalog: catalog, Seed: seed})
		require.NoError(t, err)

		_, out, err := server.handleLoadSeed(ctx, nil, EmptyInput{})

		require.NoError(t, err)
		assert.Equal(t, LoadSeedOutput{Loaded: 1, Location: "./datos.json"}, out)
		assert.Equal(t, seed.services, catalog.List(ctx))
	})

	t.Run("failure is returned", func(t *testing.T) {
		catalog := services.NewCatalogService(memory.NewKVStore(), nil)
		seed := &mockSeedService{catalog: catalog, err: domain.ErrSeedUnavailable}
		server, err := NewServer(&Ports{Catalog: catalog, Seed: seed})
		require.NoError(t, err)

		_, _, err = server.handleLoadSeed(ctx, nil, EmptyInput{})

		assert.ErrorIs(t, err, domain.ErrSeedUnavailable)
	})
}

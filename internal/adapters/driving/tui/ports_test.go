package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cotiza/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/cotiza/internal/core/services"
)

func TestNewPorts(t *testing.T) {
	catalog := services.NewCatalogService(memory.NewKVStore(), nil)
	settings := services.NewSettingsService(memory.NewConfigStore())

	ports := NewPorts(catalog, nil, settings)

	require.NotNil(t, ports)
	assert.Equal(t, catalog, ports.Catalog)
	assert.Nil(t, ports.Seed)
	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate(t *testing.T) {
	var nilPorts *Ports

	assert.ErrorIs(t, nilPorts.Validate(), ErrInvalidPorts)
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingCatalogService)
}

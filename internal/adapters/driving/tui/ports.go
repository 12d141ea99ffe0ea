// Package tui provides an interactive terminal user interface for cotiza.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/cotiza/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Catalog owns the service collection. Required.
	Catalog driving.CatalogService

	// Seed replaces the collection from the seed document. Optional.
	Seed driving.SeedService

	// Settings decides whether the seed is loaded on start. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a Ports aggregate.
func NewPorts(catalog driving.CatalogService, seed driving.SeedService, settings driving.SettingsService) *Ports {
	return &Ports{
		Catalog:  catalog,
		Seed:     seed,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}

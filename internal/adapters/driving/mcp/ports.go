package mcp

import (
	"github.com/custodia-labs/cotiza/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Catalog owns the service collection. Required.
	Catalog driving.CatalogService

	// Seed replaces the collection from the seed document. Optional.
	Seed driving.SeedService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}

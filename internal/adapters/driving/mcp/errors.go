// Package mcp provides an MCP (Model Context Protocol) server adapter for cotiza.
// It lets AI assistants read the catalogue and add, remove or hire services.
package mcp

import "errors"

// ErrMissingCatalogService is returned when the catalogue service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalogue service is required")

// ErrSeedNotConfigured is returned by load_seed when no loader is wired.
var ErrSeedNotConfigured = errors.New("mcp: seed loader not configured")

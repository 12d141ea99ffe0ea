package mcp

import (
	"context"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/cotiza/internal/core/domain"
)

// EmptyInput is the input of tools that take no arguments.
type EmptyInput struct{}

// AddServiceInput is the input schema for the add_service tool.
type AddServiceInput struct {
	Name     string  `json:"name" jsonschema:"display name of the service"`
	Price    float64 `json:"price" jsonschema:"unit price"`
	Quantity int     `json:"quantity" jsonschema:"number of units"`
}

// RemoveServiceInput is the input schema for the remove_service tool.
type RemoveServiceInput struct {
	Index int `json:"index" jsonschema:"zero-based position as returned by list_services"`
}

// HirePresetInput is the input schema for the hire_preset tool.
type HirePresetInput struct {
	Preset string `json:"preset" jsonschema:"preset key: sitio-web or tienda-online"`
}

// ServiceOutput represents one row of the catalogue.
type ServiceOutput struct {
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// CatalogOutput is the catalogue with its total.
type CatalogOutput struct {
	Services []ServiceOutput `json:"services"`
	Count    int             `json:"count"`
	Total    float64         `json:"total"`
}

// RemoveServiceOutput reports whether an entry was removed.
type RemoveServiceOutput struct {
	Removed bool          `json:"removed"`
	Catalog CatalogOutput `json:"catalog"`
}

// TotalOutput is the output schema for the total tool.
type TotalOutput struct {
	Total   float64 `json:"total"`
	Message string  `json:"message"`
}

// LoadSeedOutput is the output schema for the load_seed tool.
type LoadSeedOutput struct {
	Loaded   int    `json:"loaded"`
	Location string `json:"location"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_services",
		Description: "List hired services with subtotals and the total",
	}, s.handleListServices)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_service",
		Description: "Append a service to the catalogue",
	}, s.handleAddService)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "remove_service",
		Description: "Remove the service at an index; out-of-range indexes change nothing",
	}, s.handleRemoveService)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "total",
		Description: "Compute the total of hired services",
	}, s.handleTotal)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "hire_preset",
		Description: "Hire one of the predefined services",
	}, s.handleHirePreset)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "load_seed",
		Description: "Replace the catalogue with the configured seed document",
	}, s.handleLoadSeed)
}

func (s *Server) handleListServices(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, CatalogOutput, error) {
	services, err := s.ports.Catalog.Initialize(ctx)
	if err != nil {
		return nil, CatalogOutput{}, err
	}
	return nil, toCatalogOutput(services), nil
}

func (s *Server) handleAddService(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddServiceInput,
) (*mcp.CallToolResult, CatalogOutput, error) {
	price := strconv.FormatFloat(input.Price, 'f', -1, 64)
	if err := s.ports.Catalog.AddInput(ctx, input.Name, price, strconv.Itoa(input.Quantity)); err != nil {
		return nil, CatalogOutput{}, err
	}
	return nil, toCatalogOutput(s.ports.Catalog.List(ctx)), nil
}

func (s *Server) handleRemoveService(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RemoveServiceInput,
) (*mcp.CallToolResult, RemoveServiceOutput, error) {
	removed, err := s.ports.Catalog.RemoveAt(ctx, input.Index)
	if err != nil {
		return nil, RemoveServiceOutput{}, err
	}
	return nil, RemoveServiceOutput{
		Removed: removed,
		Catalog: toCatalogOutput(s.ports.Catalog.List(ctx)),
	}, nil
}

func (s *Server) handleTotal(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, TotalOutput, error) {
	total := s.ports.Catalog.Total(ctx)
	return nil, TotalOutput{
		Total:   total,
		Message: "The total of hired services is $" + domain.FormatAmount(total),
	}, nil
}

func (s *Server) handleHirePreset(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HirePresetInput,
) (*mcp.CallToolResult, CatalogOutput, error) {
	if err := s.ports.Catalog.Hire(ctx, input.Preset); err != nil {
		return nil, CatalogOutput{}, err
	}
	return nil, toCatalogOutput(s.ports.Catalog.List(ctx)), nil
}

func (s *Server) handleLoadSeed(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, LoadSeedOutput, error) {
	if s.ports.Seed == nil {
		return nil, LoadSeedOutput{}, ErrSeedNotConfigured
	}
	n, err := s.ports.Seed.Load(ctx)
	if err != nil {
		return nil, LoadSeedOutput{}, err
	}
	return nil, LoadSeedOutput{Loaded: n, Location: s.ports.Seed.Location()}, nil
}

func toCatalogOutput(services []domain.Service) CatalogOutput {
	out := CatalogOutput{
		Services: make([]ServiceOutput, len(services)),
		Count:    len(services),
		Total:    domain.Total(services),
	}
	for i, svc := range services {
		out.Services[i] = ServiceOutput{
			Index:     i,
			Name:      svc.Name,
			UnitPrice: svc.UnitPrice,
			Quantity:  svc.Quantity,
			Subtotal:  domain.Subtotal(svc),
		}
	}
	return out
}

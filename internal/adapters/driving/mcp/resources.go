package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/cotiza/internal/core/services"
)

// servicesURI is the resource holding the catalogue in its stored layout.
const servicesURI = "cotiza://services"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         servicesURI,
		Name:        "services",
		Description: "The catalogue as a JSON array of {nombre, precio, cantidad}",
		MIMEType:    "application/json",
	}, s.handleServicesResource)
}

func (s *Server) handleServicesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	catalogue, err := s.ports.Catalog.Initialize(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading services: %w", err)
	}

	data, err := services.EncodeServices(catalogue)
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

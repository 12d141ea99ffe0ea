package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/cotiza/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server exposes the catalogue to MCP clients as tools and a resource.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "cotiza",
		Version: Version,
	}

	s := &Server{
		ports: ports,
		server: mcp.NewServer(impl, &mcp.ServerOptions{
			Instructions: instructions(ports),
		}),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// instructions tells clients how the catalogue behaves.
func instructions(ports *Ports) string {
	var b strings.Builder
	b.WriteString("cotiza keeps an ordered list of hired services (name, unit price, quantity). ")
	b.WriteString("Entries have no ids: they are addressed by zero-based index as returned by list_services, ")
	b.WriteString("and indexes shift after every removal, so list again before removing twice. ")
	b.WriteString("remove_service with an index out of range changes nothing and reports removed=false. ")
	b.WriteString("Subtotals and the total are derived and never stored. ")
	if ports.Seed != nil {
		fmt.Fprintf(&b, "load_seed replaces the whole list with the document at %s.", ports.Seed.Location())
	} else {
		b.WriteString("No seed document is configured, so load_seed fails.")
	}
	return b.String()
}

// Run serves MCP over stdio until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	logger.Info("MCP server on stdio")
	if err := s.server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("MCP stdio session ended: %v", err)
		return err
	}
	return nil
}

// RunHTTP serves streamable HTTP on addr until ctx is cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		logger.Debug("MCP request %s %s", r.Method, r.URL.Path)
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info("MCP server on %s shutting down", addr)
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	logger.Info("MCP server on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

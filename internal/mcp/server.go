// Package mcp implements a Model Context Protocol server exposing the
// battery reporter and commit message classifier as MCP tools over stdio
// transport.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shiptools/shiptools/internal/battery"
	"github.com/shiptools/shiptools/pkg/version"
)

const (
	// serverName is the MCP server implementation name.
	serverName = "shiptools"

	// toolCount is the expected number of registered tools.
	toolCount = 2
)

// ServerDeps holds injectable dependencies for the MCP server.
// Zero-value fields use production defaults.
type ServerDeps struct {
	// Logger is an optional structured logger. Nil uses slog default.
	Logger *slog.Logger

	// Runner executes system commands for battery collection. Nil uses
	// os/exec.
	Runner battery.Runner
}

// Server wraps the MCP SDK server with shiptools tool registrations.
type Server struct {
	inner     *mcpsdk.Server
	mu        sync.RWMutex
	tools     []string
	collector *battery.Collector
}

// NewServer creates a new MCP server with all shiptools tools registered.
func NewServer(deps ServerDeps) *Server {
	opts := &mcpsdk.ServerOptions{}
	if deps.Logger != nil {
		opts.Logger = deps.Logger
	}

	inner := mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    serverName,
			Version: version.Version,
		},
		opts,
	)

	srv := &Server{
		inner:     inner,
		tools:     make([]string, 0, toolCount),
		collector: battery.NewCollector(deps.Runner),
	}

	srv.registerTools()

	return srv
}

// ListToolNames returns the sorted names of all registered tools.
func (s *Server) ListToolNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.tools))
	copy(names, s.tools)
	sort.Strings(names)

	return names
}

// Run starts the MCP server on stdio transport. It blocks until the context
// is canceled or the connection closes.
func (s *Server) Run(ctx context.Context) error {
	err := s.inner.Run(ctx, &mcpsdk.StdioTransport{})
	if err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}

	return nil
}

// registerTools adds all shiptools MCP tools to the server.
func (s *Server) registerTools() {
	mcpsdk.AddTool(s.inner, &mcpsdk.Tool{
		Name:        ToolNameBatteryStatus,
		Description: batteryToolDescription,
	}, s.handleBatteryStatus)

	s.trackTool(ToolNameBatteryStatus)

	mcpsdk.AddTool(s.inner, &mcpsdk.Tool{
		Name:        ToolNameSuggestCommit,
		Description: suggestToolDescription,
	}, handleSuggestCommit)

	s.trackTool(ToolNameSuggestCommit)
}

func (s *Server) trackTool(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tools = append(s.tools, name)
}

// Package mcp exposes the winbridge inspector over the Model Context
// Protocol so agent clients can resolve live windows to raw handles.
package mcp

import (
	"context"
	"fmt"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winbridge/internal/config"
	"github.com/1broseidon/winbridge/internal/platform"
)

const (
	ServerName    = "winbridge"
	ServerVersion = "0.1.0"
)

// Server is the MCP server for window handle inspection.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	backend   platform.Backend
	logger    *slog.Logger
}

// NewServer creates an MCP server backed by the current OS window system.
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	backend, err := platform.New()
	if err != nil {
		return nil, fmt.Errorf("window system backend: %w", err)
	}
	return newServerWithBackend(cfg, backend, logger), nil
}

// newServerWithBackend wires an explicit backend; tests use it to avoid
// needing a live display.
func newServerWithBackend(cfg *config.Config, backend platform.Backend, logger *slog.Logger) *Server {
	s := &Server{
		config:  cfg,
		backend: backend,
		logger:  logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Close releases the window system connection.
func (s *Server) Close() {
	if s != nil && s.backend != nil {
		s.backend.Close()
	}
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "active_window",
		Description: "Return the focused window's metadata together with its raw platform handle (family plus native identifier fields). Non-present fields are omitted; consumers must tolerate that.",
	}, s.handleActiveWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List all normal top-level windows with their IDs, process IDs, application IDs and titles. Use window_handle to resolve an ID to its raw handle.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "window_handle",
		Description: "Resolve a window ID to its raw platform handle. Fails if the ID does not name a live window on the current display.",
	}, s.handleWindowHandle)
}

func (s *Server) logRequest(tool string, args ...any) {
	if s.logger == nil || s.config == nil || !s.config.MCP.LogRequests {
		return
	}
	s.logger.Info("tool call", append([]any{"tool", tool}, args...)...)
}

// Package server exposes xtree inspections as MCP tools.
package server

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/xtree/internal/platform"
	"github.com/mj1618/xtree/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// Server wraps the MCP server with a directory connection and a tree cache.
// Tool calls are serialized on the directory: each one is an independent
// inspection run.
type Server struct {
	dir    platform.Directory
	dirMu  sync.Mutex
	cache  *TreeCache
	logger *slog.Logger
	mcp    *mcpserver.MCPServer
}

// New creates an MCP server with the xtree tools registered.
func New(dir platform.Directory, cfg Config, logger *slog.Logger) *Server {
	s := &Server{
		dir:    dir,
		cache:  NewTreeCache(cfg.CacheTTL),
		logger: logger,
	}
	s.mcp = mcpserver.NewMCPServer("xtree", version.Version)
	s.registerTools()
	return s
}

// Serve runs the server on the configured transport until it stops.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		s.logger.Info("serving MCP over HTTP", "port", cfg.Port)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("tree",
			mcp.WithDescription("Inspect the X11 window hierarchy below a window and render it as a tree with names, attributes, geometry and decoded properties."),
			mcp.WithString("window-id", mcp.Description("Window id, decimal or 0x hex (default: root window)")),
			mcp.WithBoolean("recurse", mcp.Description("Also inspect children recursively")),
			mcp.WithNumber("max-depth", mcp.Description("Limit recursion depth (-1 = unlimited)")),
			mcp.WithBoolean("names", mcp.Description("Fetch _NET_WM_NAME / WM_NAME (default: true)")),
			mcp.WithBoolean("attributes", mcp.Description("Include window attributes (default: true)")),
			mcp.WithBoolean("geometry", mcp.Description("Include window geometry (default: true)")),
			mcp.WithBoolean("properties", mcp.Description("Include decoded window properties (default: true)")),
			mcp.WithString("style", mcp.Description("Tree style: cont, ascii, cont-round, double")),
			mcp.WithString("format", mcp.Description("Output format: text, yaml, json (default: text)")),
		),
		s.handleTree,
	)

	s.mcp.AddTool(
		mcp.NewTool("atom",
			mcp.WithDescription("Resolve an X atom name to its id, or an atom id to its name"),
			mcp.WithString("name", mcp.Description("Atom name to resolve")),
			mcp.WithNumber("id", mcp.Description("Atom id to resolve")),
		),
		s.handleAtom,
	)
}

// Package mcp assembles and serves the Model Context Protocol server,
// exposing the registered extensions' tools and resources to LLMs. The
// wire protocol, request routing and argument validation all belong to
// the mcp-go host library; this package only walks the extension registry
// and hands each capability over.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/MatesOfMate/extension-template/extension"
	"github.com/MatesOfMate/extension-template/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ErrNoCapabilities is returned when no registered extension exposes any
// MCP tool or resource. Serving an empty extension is almost certainly a
// wiring mistake (a missing blank import in extension/all), so fail at
// startup rather than presenting a hollow server to the host.
var ErrNoCapabilities = errors.New("no MCP tools or resources registered")

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other
// MCP clients.
func Serve(extCtx extension.Context) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := extCtx.Config()
	s := server.NewMCPServer(
		cfg.Name(),
		version.Short(),
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	tools, resources := register(s, extCtx)
	if tools == 0 && resources == 0 {
		return ErrNoCapabilities
	}

	slog.Info("MCP server ready",
		"name", cfg.Name(),
		"version", version.Short(),
		"transport", "stdio",
		"tools", tools,
		"resources", resources,
	)

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// register walks the extension registry and adds every declared tool and
// resource to the server. Returns the counts for startup logging.
func register(s *server.MCPServer, extCtx extension.Context) (tools, resources int) {
	for _, ext := range extension.All() {
		for _, t := range ext.MCPTools() {
			s.AddTool(t.Tool, wrapTool(extCtx, t.Handler))
			slog.Debug("registered tool", "extension", ext.Name(), "tool", t.Tool.Name)
			tools++
		}
		for _, r := range ext.MCPResources() {
			s.AddResource(r.Resource, wrapResource(extCtx, r.Handler))
			slog.Debug("registered resource", "extension", ext.Name(), "uri", r.Resource.URI)
			resources++
		}
	}
	return tools, resources
}

// wrapTool adapts an extension tool handler to the mcp-go handler shape,
// closing over the shared extension context. This is the whole of the
// "dependency injection" story: collaborators reach handlers through an
// explicitly constructed context, not a global container.
func wrapTool(extCtx extension.Context, h extension.MCPToolHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return h(ctx, extCtx, req)
	}
}

// wrapResource adapts an extension resource handler to the mcp-go shape.
func wrapResource(extCtx extension.Context, h extension.MCPResourceHandler) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return h(ctx, extCtx, req)
	}
}

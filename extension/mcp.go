// mcp.go defines types for MCP tool and resource registration by extensions.
//
// Separated from extension.go to isolate MCP-specific concerns. Not all
// extensions expose MCP capabilities - some only provide CLI commands.
//
// Design: MCPTool and MCPResource pair the capability definition with its
// handler, enabling extensions to register complete implementations. Handlers
// receive both Go context (for cancellation) and extension Context (for
// collaborator access). Handlers must be reentrant: no shared mutable state
// beyond injected collaborators, no cross-call memory.

package extension

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTool pairs an MCP tool definition with its handler.
//
// Tool names follow the pattern {extension}-{action}, lowercase and
// hyphen-separated (e.g. "example-list-entities"), so they stay unique
// across all extensions loaded into one host.
type MCPTool struct {
	Tool    mcp.Tool
	Handler MCPToolHandler
}

// MCPToolHandler processes MCP tool requests.
// The Context provides access to the entity catalog, config and manifest.
//
// Results carry a JSON string built with JSONResult. A handler that cannot
// encode its payload returns the error rather than a partial result - the
// host never sees malformed JSON.
type MCPToolHandler func(ctx context.Context, extCtx Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)

// MCPResource pairs an MCP resource definition with its handler.
//
// Resource URIs follow the pattern {scheme}://{path} where {scheme} is the
// short lowercase identifier declared in the discovery manifest. The handler
// returns the declared URI, a mimeType and a text payload; when the data
// cannot be produced it returns an error, never a malformed record.
type MCPResource struct {
	Resource mcp.Resource
	Handler  MCPResourceHandler
}

// MCPResourceHandler serves MCP resource read requests.
type MCPResourceHandler func(ctx context.Context, extCtx Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)

// tools.go defines the example MCP tools and their handlers.
//
// Each tool follows the {extension}-{action} naming pattern and returns
// pretty-printed JSON via extension.JSONResult. Handlers are stateless:
// every invocation reads its collaborators from the injected Context and
// constructs its result fresh, so identical inputs always produce
// byte-identical output.

package example

import (
	"context"

	"github.com/MatesOfMate/extension-template/extension"
	"github.com/MatesOfMate/extension-template/internal/diff"
	"github.com/MatesOfMate/extension-template/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTools returns the example tools with their handlers.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		{
			Tool: mcp.NewTool("example-list-entities",
				mcp.WithDescription("List all entities in the example catalog with their kind, description and attributes"),
				mcp.WithBoolean("compact", mcp.Description("If true, return only id, name and kind per entity")),
			),
			Handler: listEntities,
		},
		{
			Tool: mcp.NewTool("example-describe-entity",
				mcp.WithDescription("Describe a single entity from the example catalog by name"),
				mcp.WithString("name", mcp.Required(), mcp.Description("Entity name (see example-list-entities)")),
			),
			Handler: describeEntity,
		},
		{
			Tool: mcp.NewTool("example-compare-entities",
				mcp.WithDescription("Compare two catalog entities and return a line diff of their records"),
				mcp.WithString("a", mcp.Required(), mcp.Description("First entity name")),
				mcp.WithString("b", mcp.Required(), mcp.Description("Second entity name")),
			),
			Handler: compareEntities,
		},
	}
}

// listEntities handles example-list-entities tool calls. The optional
// compact flag is read with the permissive helper: absent or mistyped
// means full output, never a tool failure.
func listEntities(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entities := extCtx.Catalog().List()
	compact := extension.GetBool(req, "compact", false)
	log.Event("mcp:example-list-entities", "list").Author("mcp").
		Detail("count", len(entities)).Detail("compact", compact).Write(nil)

	if compact {
		slim := make([]map[string]string, len(entities))
		for i, e := range entities {
			slim[i] = map[string]string{"id": e.ID, "name": e.Name, "kind": e.Kind}
		}
		return extension.JSONResult(map[string]any{"entities": slim})
	}
	return extension.JSONResult(map[string]any{"entities": entities})
}

// describeEntity handles example-describe-entity tool calls.
func describeEntity(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil //nolint:nilerr
	}

	ent, err := extCtx.Catalog().Get(name)
	log.Event("mcp:example-describe-entity", "describe").Author("mcp").Name(name).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return extension.JSONResult(ent)
}

// compareEntities handles example-compare-entities tool calls. It exists to
// show a tool using two injected collaborators: the catalog to resolve both
// entities and the diff engine to compare their records.
func compareEntities(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := req.RequireString("a")
	if err != nil {
		return mcp.NewToolResultError("a is required"), nil //nolint:nilerr
	}
	b, err := req.RequireString("b")
	if err != nil {
		return mcp.NewToolResultError("b is required"), nil //nolint:nilerr
	}

	entA, err := extCtx.Catalog().Get(a)
	if err != nil {
		log.Event("mcp:example-compare-entities", "compare").Author("mcp").Name(a).Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	entB, err := extCtx.Catalog().Get(b)
	if err != nil {
		log.Event("mcp:example-compare-entities", "compare").Author("mcp").Name(b).Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	docA, err := extension.MarshalJSON(entA)
	if err != nil {
		return nil, err
	}
	docB, err := extension.MarshalJSON(entB)
	if err != nil {
		return nil, err
	}

	result := diff.Compute(string(docA), string(docB), a, b)
	log.Event("mcp:example-compare-entities", "compare").Author("mcp").
		Detail("a", a).Detail("b", b).Write(nil)

	return extension.JSONResult(map[string]string{
		"a":    a,
		"b":    b,
		"diff": result.Diff,
	})
}

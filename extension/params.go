// params.go provides helper functions shared by MCP tool handlers.
//
// Separated to centralise the boilerplate of extracting typed parameters
// from MCP's generic argument map and of encoding results. These live in
// the extension package because every extension's handlers need them.
//
// Design: We use permissive extraction (return default on error) rather
// than strict validation because MCP tools should be forgiving - an LLM
// omitting an optional parameter shouldn't cause cryptic errors. The host's
// argument-binding layer has already validated required parameters against
// the tool's declared schema by the time a handler runs.

package extension

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetString extracts a string parameter from the MCP request, returning the
// provided default if the parameter is missing or cannot be parsed as a
// string. Optional parameters should never cause tool failures; the caller
// specifies what default makes sense for their use case.
func GetString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// GetBool extracts a boolean parameter from the MCP request arguments.
//
// We access the raw argument map directly: JSON booleans decode as Go bool
// values, so a simple type assertion suffices. Returns the default if the
// parameter is missing or not a boolean, which handles cases where an LLM
// passes "true" (string) instead of true (boolean).
func GetBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// GetInt extracts an integer parameter from the MCP request arguments.
//
// JSON numbers decode as float64 in Go's encoding/json, so we type assert
// to float64 first and then convert to int. Returns the default if the
// parameter is missing or not a number.
func GetInt(req mcp.CallToolRequest, name string, def int) int {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(float64); ok {
		return int(v)
	}
	return def
}

// MarshalJSON encodes a value with indentation.
//
// Tool results are pretty-printed rather than compact because LLMs parse
// structured output more reliably when it's formatted for readability. The
// slight increase in token count is worthwhile for the improved parsing
// accuracy and debuggability when inspecting logs.
func MarshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// JSONResult serialises a value as pretty-printed JSON and wraps it in an
// MCP text result for return to the LLM client.
//
// Encoding failure propagates as an error rather than producing a partial
// result: the tool contract is valid JSON or nothing. The host owns
// translating the error into a model-visible response.
func JSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := MarshalJSON(v)
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

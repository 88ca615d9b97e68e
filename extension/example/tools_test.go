package example

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// callRequest builds a CallToolRequest with the given arguments.
func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

// resultText extracts the text payload from a tool result.
func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestListEntities(t *testing.T) {
	extCtx := newTestContext()

	res, err := listEntities(context.Background(), extCtx, callRequest(nil))
	require.NoError(t, err)
	require.False(t, res.IsError)

	out := resultText(t, res)

	// The result is always valid JSON with the documented shape
	var decoded struct {
		Entities []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
			Kind string `json:"kind"`
		} `json:"entities"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Entities, 3)
	assert.Equal(t, "aurora", decoded.Entities[0].Name)
	assert.Equal(t, "borealis", decoded.Entities[1].Name)
	assert.Equal(t, "cascade", decoded.Entities[2].Name)
}

func TestListEntities_Compact(t *testing.T) {
	extCtx := newTestContext()

	t.Run("compact drops description and attributes", func(t *testing.T) {
		res, err := listEntities(context.Background(), extCtx, callRequest(map[string]any{"compact": true}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		var decoded struct {
			Entities []map[string]any `json:"entities"`
		}
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &decoded))
		require.Len(t, decoded.Entities, 3)
		for _, e := range decoded.Entities {
			assert.Contains(t, e, "id")
			assert.Contains(t, e, "name")
			assert.Contains(t, e, "kind")
			assert.NotContains(t, e, "description")
			assert.NotContains(t, e, "attributes")
		}
	})

	t.Run("mistyped compact falls back to full output", func(t *testing.T) {
		res, err := listEntities(context.Background(), extCtx, callRequest(map[string]any{"compact": "true"}))
		require.NoError(t, err)

		full, err := listEntities(context.Background(), extCtx, callRequest(nil))
		require.NoError(t, err)
		assert.Equal(t, resultText(t, full), resultText(t, res))
	})
}

func TestListEntities_Idempotent(t *testing.T) {
	extCtx := newTestContext()

	first, err := listEntities(context.Background(), extCtx, callRequest(nil))
	require.NoError(t, err)
	second, err := listEntities(context.Background(), extCtx, callRequest(nil))
	require.NoError(t, err)

	// Identical inputs with no state change yield byte-identical output
	assert.Equal(t, resultText(t, first), resultText(t, second))
}

func TestDescribeEntity(t *testing.T) {
	extCtx := newTestContext()

	t.Run("known entity", func(t *testing.T) {
		res, err := describeEntity(context.Background(), extCtx, callRequest(map[string]any{"name": "aurora"}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		var ent map[string]any
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &ent))
		assert.Equal(t, "aurora", ent["name"])
		assert.Equal(t, "service", ent["kind"])
	})

	t.Run("unknown entity returns error result", func(t *testing.T) {
		res, err := describeEntity(context.Background(), extCtx, callRequest(map[string]any{"name": "nonesuch"}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})

	t.Run("missing name returns error result", func(t *testing.T) {
		res, err := describeEntity(context.Background(), extCtx, callRequest(nil))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})
}

func TestCompareEntities(t *testing.T) {
	extCtx := newTestContext()

	res, err := compareEntities(context.Background(), extCtx, callRequest(map[string]any{"a": "aurora", "b": "cascade"}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &decoded))
	assert.Equal(t, "aurora", decoded["a"])
	assert.Equal(t, "cascade", decoded["b"])
	assert.Contains(t, decoded["diff"], "-")
	assert.Contains(t, decoded["diff"], "+")
}

func TestCompareEntities_UnknownName(t *testing.T) {
	extCtx := newTestContext()

	res, err := compareEntities(context.Background(), extCtx, callRequest(map[string]any{"a": "aurora", "b": "nonesuch"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

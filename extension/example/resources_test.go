package example

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contents asserts a resource read returned exactly one text record.
func contents(t *testing.T, got []mcp.ResourceContents, err error) mcp.TextResourceContents {
	t.Helper()
	require.NoError(t, err)
	require.Len(t, got, 1)
	text, ok := got[0].(mcp.TextResourceContents)
	require.True(t, ok, "expected text resource contents")
	return text
}

func TestReadConfig(t *testing.T) {
	extCtx := newTestContext()

	got, err := readConfig(context.Background(), extCtx, mcp.ReadResourceRequest{})
	rec := contents(t, got, err)

	// The record carries exactly the declared URI and mimeType
	assert.Equal(t, "example://config", rec.URI)
	assert.Equal(t, "application/json", rec.MIMEType)

	// application/json text must parse as JSON
	var doc map[string]string
	require.NoError(t, json.Unmarshal([]byte(rec.Text), &doc))
	assert.Contains(t, doc, "extension.name")
}

func TestReadManifest(t *testing.T) {
	extCtx := newTestContext()

	got, err := readManifest(context.Background(), extCtx, mcp.ReadResourceRequest{})
	rec := contents(t, got, err)

	assert.Equal(t, "example://manifest", rec.URI)
	assert.Equal(t, "application/json", rec.MIMEType)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(rec.Text), &doc))
	assert.Equal(t, "example", doc["scheme"])
}

func TestReadGuide(t *testing.T) {
	extCtx := newTestContext()

	got, err := readGuide(context.Background(), extCtx, mcp.ReadResourceRequest{})
	rec := contents(t, got, err)

	assert.Equal(t, "example://guide", rec.URI)
	assert.Equal(t, "text/plain", rec.MIMEType)
	// text/plain passes the guide through unmodified
	assert.Contains(t, rec.Text, "# Extension Template Guide")
}

func TestResources_Idempotent(t *testing.T) {
	extCtx := newTestContext()

	got1, err1 := readConfig(context.Background(), extCtx, mcp.ReadResourceRequest{})
	first := contents(t, got1, err1)
	got2, err2 := readConfig(context.Background(), extCtx, mcp.ReadResourceRequest{})
	second := contents(t, got2, err2)
	assert.Equal(t, first, second)
}

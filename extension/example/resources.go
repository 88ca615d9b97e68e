// resources.go defines the example MCP resources and their handlers.
//
// Resources return records with exactly uri, mimeType and text. The URI a
// handler returns is the URI it was registered under - clients correlate
// the two - and the text payload must match the declared mimeType: JSON
// text for application/json, raw text for text/plain. A handler that
// cannot produce its data returns an error, never a partial record.

package example

import (
	"context"
	"fmt"

	"github.com/MatesOfMate/extension-template/extension"
	"github.com/MatesOfMate/extension-template/guide"
	"github.com/MatesOfMate/extension-template/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// Resource URIs, declared statically under the extension scheme.
const (
	ConfigURI   = Scheme + "://config"
	ManifestURI = Scheme + "://manifest"
	GuideURI    = Scheme + "://guide"
)

// MCPResources returns the example resources with their handlers.
func (e *Extension) MCPResources() []extension.MCPResource {
	return []extension.MCPResource{
		{
			Resource: mcp.NewResource(ConfigURI, "Extension configuration",
				mcp.WithResourceDescription("Effective extension configuration as a JSON document"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: readConfig,
		},
		{
			Resource: mcp.NewResource(ManifestURI, "Discovery manifest",
				mcp.WithResourceDescription("The discovery manifest this extension was loaded with, as JSON"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: readManifest,
		},
		{
			Resource: mcp.NewResource(GuideURI, "Template guide",
				mcp.WithResourceDescription("The extension template guide as plain markdown"),
				mcp.WithMIMEType("text/plain"),
			),
			Handler: readGuide,
		},
	}
}

// readConfig serves example://config: the effective configuration as JSON.
func readConfig(_ context.Context, extCtx extension.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := extension.MarshalJSON(extCtx.Config().All())
	log.Event("mcp:resource", "read").Author("mcp").Name(ConfigURI).Write(err)
	if err != nil {
		return nil, fmt.Errorf("encode config resource: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      ConfigURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// readManifest serves example://manifest: the discovery manifest as JSON.
func readManifest(_ context.Context, extCtx extension.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := extension.MarshalJSON(extCtx.Manifest())
	log.Event("mcp:resource", "read").Author("mcp").Name(ManifestURI).Write(err)
	if err != nil {
		return nil, fmt.Errorf("encode manifest resource: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      ManifestURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// readGuide serves example://guide: the embedded guide, passed through
// unmodified as text/plain.
func readGuide(_ context.Context, _ extension.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	content, err := guide.Get("")
	log.Event("mcp:resource", "read").Author("mcp").Name(GuideURI).Write(err)
	if err != nil {
		return nil, fmt.Errorf("load guide resource: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      GuideURI,
			MIMEType: "text/plain",
			Text:     content,
		},
	}, nil
}

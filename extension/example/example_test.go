package example

import (
	"testing"

	"github.com/MatesOfMate/extension-template/extension"
	"github.com/MatesOfMate/extension-template/internal/config"
	"github.com/MatesOfMate/extension-template/internal/entity"
	"github.com/MatesOfMate/extension-template/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestContext builds the extension context the way the composition root
// does, against the fixture catalog and an empty config.
func newTestContext() extension.Context {
	mf := manifest.Manifest{
		Name:     "example-extension",
		Version:  "0.1.0",
		Scheme:   Scheme,
		ScanDirs: []string{"extension/core", "extension/example"},
	}
	return extension.NewContext(entity.NewCatalog(), &config.Config{}, mf)
}

func TestInit(t *testing.T) {
	e := &Extension{}

	t.Run("accepts matching scheme", func(t *testing.T) {
		require.NoError(t, e.Init(newTestContext()))
	})

	t.Run("rejects scheme drift", func(t *testing.T) {
		mf := manifest.Manifest{Scheme: "other", ScanDirs: []string{"x"}}
		ctx := extension.NewContext(entity.NewCatalog(), &config.Config{}, mf)
		assert.Error(t, e.Init(ctx))
	})
}

func TestToolNaming(t *testing.T) {
	// Tool names follow {extension}-{action}: lowercase, hyphen-separated,
	// prefixed with the extension name
	e := &Extension{}
	for _, tool := range e.MCPTools() {
		name := tool.Tool.Name
		assert.Regexp(t, `^example(-[a-z]+)+$`, name)
		assert.NotNil(t, tool.Handler, "tool %s has no handler", name)
	}
}

func TestResourceURIs(t *testing.T) {
	// Every resource is addressed under the declared scheme
	e := &Extension{}
	for _, res := range e.MCPResources() {
		assert.Regexp(t, `^example://[a-z]+$`, res.Resource.URI)
		assert.NotNil(t, res.Handler, "resource %s has no handler", res.Resource.URI)
	}
}

// Package core provides the core extension for the template.
// It registers commands: serve, guide, config, manifest, version.
package core

import (
	"github.com/MatesOfMate/extension-template/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension  = (*Extension)(nil)
	_ extension.Standalone = (*Extension)(nil)
)

// Name returns "core" - this extension provides the fundamental commands.
func (e *Extension) Name() string { return "core" }

// Commands returns all core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newServeCmd(),
		newGuideCmd(),
		newConfigCmd(),
		newManifestCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil - core commands have no MCP tool equivalents.
// MCP capabilities are provided by the example extension.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// MCPResources returns nil - see MCPTools.
func (e *Extension) MCPResources() []extension.MCPResource {
	return nil
}

// StandaloneCommands returns commands that work without the shared context.
// config: loads and saves configuration itself, no manifest needed.
// manifest: loads the manifest itself so "manifest validate" can report
// errors instead of failing in PersistentPreRunE.
func (e *Extension) StandaloneCommands() []string {
	return []string{"config", "manifest"}
}

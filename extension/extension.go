// Package extension provides the plugin architecture for the template.
// Extensions encapsulate related functionality (CLI commands, MCP tools and
// resources) and register at init time, enabling modular feature development
// without touching core code.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for template extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool

	// MCPResources returns MCP resources to register with the server.
	MCPResources() []MCPResource
}

// Initializable extensions can perform setup against the shared context.
// Init runs once at startup, before any command or MCP request executes.
// An error from Init aborts startup - misconfiguration surfaces at wiring
// time, never at request time.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Standalone is an optional interface for extensions with commands that
// don't require the shared context. Commands returned by StandaloneCommands()
// will not trigger context initialisation in PersistentPreRunE.
//
// Use cases:
// 1. Documentation commands (guide, version) that must work anywhere
// 2. Commands that manage their own configuration lifecycle (config)
type Standalone interface {
	StandaloneCommands() []string
}

// serve.go implements the "mcpext serve" command for MCP server operation.
//
// Separated from extension.go because serve has unique lifecycle
// requirements. Unlike other commands that run and exit, serve blocks
// indefinitely handling MCP requests over stdio.

package core

import (
	"github.com/MatesOfMate/extension-template/cmd"
	"github.com/MatesOfMate/extension-template/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

The server exposes every tool and resource declared by registered
extensions. Point an MCP client at this command:

  mcpext serve
  mcpext serve --manifest path/to/extension.yaml`,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	return mcp.Serve(cmd.ExtContext())
}

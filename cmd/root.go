/*
Copyright © 2026 MatesOfMate
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// Design: PersistentPreRunE handles context initialisation lazily - only
// commands that need the shared context trigger extension init. This keeps
// documentation commands (guide, version) working even when no manifest
// exists in the working directory. The standaloneCommands map controls
// which commands skip initialisation.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/MatesOfMate/extension-template/internal/config"
	"github.com/MatesOfMate/extension-template/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mcpext",
	Short: "Template MCP extension with example tools and resources",
	Long:  `A template for building MCP (Model Context Protocol) extensions: an explicit capability registry, a discovery manifest, and example tools and resources to copy from.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		// Initialise the shared context for commands that need it
		if !standaloneCommands[topLevelCmdName(cmd)] {
			if err := initExtensions(); err != nil {
				if JSON() {
					_ = PrintJSON(map[string]string{"error": err.Error()})
					cmd.SilenceErrors = true
					cmd.SilenceUsage = true
				}
				return fmt.Errorf("initialise extensions: %w", err)
			}
		}

		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of
// root). For "mcpext manifest validate", returns "manifest".
func topLevelCmdName(cmd *cobra.Command) string {
	// Walk up until we find a command whose parent has no parent (the root)
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers extension commands, executes the command,
// and closes the audit log before exit. Exit code 1 indicates error.
func Execute() {
	// Open the audit log unless config disables it (warn if it fails, but
	// continue - logging is best-effort)
	if cfg, err := config.Load(); err != nil || cfg.LogEnabled() {
		if err := log.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
		}
	}
	defer log.Close()

	registerExtensions()
	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}

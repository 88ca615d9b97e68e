// config.go implements the "mcpext config" command for configuration
// management.
//
// Separated from extension.go to isolate config-specific logic including
// the local vs global config precedence rules.
//
// Design: Config follows a cascade model similar to git: local config
// (.mcpext/config.yaml) takes precedence over global (~/.mcpext/config.yaml).
// The --local flag forces use of local config even if it doesn't exist yet.

package core

import (
	"fmt"

	"github.com/MatesOfMate/extension-template/cmd"
	"github.com/MatesOfMate/extension-template/internal/config"
	"github.com/MatesOfMate/extension-template/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  mcpext config                          # show config
  mcpext config extension.name           # show extension.name value
  mcpext config extension.name my-ext    # set extension.name

Configuration locations:
  Global: ~/.mcpext/config.yaml
  Local:  .mcpext/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool("local", false, "Use local config (.mcpext/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool("local")

	// Load config: local if exists, otherwise global
	// --local flag forces local even if it doesn't exist yet
	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	switch len(args) {
	case 0:
		// Show all values
		if cmd.JSON() {
			log.Event("core:config", "list").Write(nil)
			return cmd.PrintJSON(cfg.All())
		}
		for _, k := range config.ValidKeys() {
			v, _ := cfg.Get(k)
			fmt.Fprintf(cmd.Out(), "%s: %s\n", k, v)
		}
		log.Event("core:config", "list").Write(nil)

	case 1:
		// Get single value
		v, err := cfg.Get(args[0])
		log.Event("core:config", "get").Detail("key", args[0]).Write(err)
		if err != nil {
			return cmd.PrintJSONError(err)
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(cmd.Out(), v)

	case 2:
		// Set value
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("core:config", "set").Detail("key", args[0]).Write(err)
			return cmd.PrintJSONError(err)
		}
		err := cfg.Save()
		log.Event("core:config", "set").Detail("key", args[0]).Detail("value", args[1]).Write(err)
		if err != nil {
			return cmd.PrintJSONError(err)
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{args[0]: args[1]})
		}
		fmt.Fprintf(cmd.Out(), "%s = %s\n", args[0], args[1])
	}

	return nil
}

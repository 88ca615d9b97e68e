// manifest.go implements the "mcpext manifest" command for inspecting the
// discovery manifest.
//
// Separated from extension.go so the manifest command can load the file
// itself: "manifest validate" must be able to report a broken manifest
// rather than dying in PersistentPreRunE before the command runs.

package core

import (
	"fmt"
	"strings"

	"github.com/MatesOfMate/extension-template/cmd"
	"github.com/MatesOfMate/extension-template/internal/log"
	"github.com/MatesOfMate/extension-template/internal/manifest"
	"github.com/spf13/cobra"
)

func newManifestCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "manifest",
		Short: "Show the discovery manifest",
		Long: `Show the discovery manifest the host reads when loading this extension.

  mcpext manifest            # show the manifest
  mcpext manifest validate   # check manifest invariants`,
		RunE: runManifestShow,
	}
	c.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate the discovery manifest",
		RunE:  runManifestValidate,
	})
	return c
}

func runManifestShow(_ *cobra.Command, _ []string) error {
	mf, err := manifest.Load(cmd.ManifestPath())
	log.Event("core:manifest", "show").Write(err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		return cmd.PrintJSON(mf)
	}

	fmt.Fprintf(cmd.Out(), "name:      %s\n", mf.Name)
	fmt.Fprintf(cmd.Out(), "version:   %s\n", mf.Version)
	fmt.Fprintf(cmd.Out(), "scheme:    %s\n", mf.Scheme)
	fmt.Fprintf(cmd.Out(), "scan-dirs: %s\n", strings.Join(mf.ScanDirs, ", "))
	fmt.Fprintf(cmd.Out(), "includes:  %s\n", strings.Join(mf.Includes, ", "))
	return nil
}

func runManifestValidate(_ *cobra.Command, _ []string) error {
	path := cmd.ManifestPath()
	_, err := manifest.Load(path)
	log.Event("core:manifest", "validate").Detail("path", path).Write(err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"manifest": path, "status": "valid"})
	}
	fmt.Fprintf(cmd.Out(), "%s: valid\n", path)
	return nil
}

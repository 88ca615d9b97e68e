// Package example provides the example extension: the capability object a
// developer copies when turning this template into a real extension. It
// demonstrates the two capability kinds the host understands - tools
// (callable actions returning JSON) and resources (URI-addressed records) -
// plus a CLI command built on the same collaborator services.
package example

import (
	"fmt"

	"github.com/MatesOfMate/extension-template/extension"
	"github.com/spf13/cobra"
)

// Scheme is the URI scheme for this extension's resources. Compiled in
// because resource URIs are declared statically; Init checks it against
// the discovery manifest so a drift between the two fails at startup.
const Scheme = "example"

func init() {
	extension.Register(&Extension{})
}

// Extension implements the example extension.
type Extension struct{}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "example" - this extension provides the example capabilities.
func (e *Extension) Name() string { return "example" }

// Init verifies the manifest scheme matches the compiled-in scheme the
// resource URIs were declared with. Collaborators themselves are read from
// the Context per invocation, so there is nothing to store here.
func (e *Extension) Init(ctx extension.Context) error {
	if s := ctx.Manifest().Scheme; s != Scheme {
		return fmt.Errorf("manifest scheme %q does not match declared resource scheme %q", s, Scheme)
	}
	return nil
}

// Commands returns the entities command for CLI access to the catalog.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newEntitiesCmd(),
	}
}

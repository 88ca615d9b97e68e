// entities.go implements the "mcpext entities" command, the CLI view of
// the example catalog. It exists so the same collaborator service backs
// both an MCP tool and a human-facing command, which is how real
// extensions usually end up structured.

package example

import (
	"fmt"

	"github.com/MatesOfMate/extension-template/cmd"
	"github.com/MatesOfMate/extension-template/internal/diff"
	"github.com/MatesOfMate/extension-template/internal/log"
	"github.com/spf13/cobra"
)

func newEntitiesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "entities [name]",
		Short: "List or describe example catalog entities",
		Long: `List or describe entities in the example catalog.

  mcpext entities                   # list all entities
  mcpext entities aurora            # describe one entity
  mcpext entities compare a b       # diff two entity records`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEntities,
	}
	c.AddCommand(&cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Diff two entity records",
		Args:  cobra.ExactArgs(2),
		RunE:  runEntitiesCompare,
	})
	return c
}

func runEntities(_ *cobra.Command, args []string) error {
	catalog := cmd.ExtContext().Catalog()

	if len(args) == 0 {
		entities := catalog.List()
		log.Event("example:entities", "list").Detail("count", len(entities)).Write(nil)

		if cmd.JSON() {
			return cmd.PrintJSON(map[string]any{"entities": entities})
		}
		for _, e := range entities {
			fmt.Fprintf(cmd.Out(), "%-10s %-8s %s\n", e.Name, e.Kind, e.Description)
		}
		return nil
	}

	ent, err := catalog.Get(args[0])
	log.Event("example:entities", "describe").Name(args[0]).Write(err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		return cmd.PrintJSON(ent)
	}
	fmt.Fprintf(cmd.Out(), "id:          %s\n", ent.ID)
	fmt.Fprintf(cmd.Out(), "name:        %s\n", ent.Name)
	fmt.Fprintf(cmd.Out(), "kind:        %s\n", ent.Kind)
	fmt.Fprintf(cmd.Out(), "description: %s\n", ent.Description)
	for k, v := range ent.Attributes {
		fmt.Fprintf(cmd.Out(), "  %s: %s\n", k, v)
	}
	return nil
}

func runEntitiesCompare(_ *cobra.Command, args []string) error {
	catalog := cmd.ExtContext().Catalog()

	entA, err := catalog.Get(args[0])
	if err != nil {
		log.Event("example:entities", "compare").Name(args[0]).Write(err)
		return cmd.PrintJSONError(err)
	}
	entB, err := catalog.Get(args[1])
	if err != nil {
		log.Event("example:entities", "compare").Name(args[1]).Write(err)
		return cmd.PrintJSONError(err)
	}

	docA := fmt.Sprintf("name: %s\nkind: %s\ndescription: %s\n", entA.Name, entA.Kind, entA.Description)
	docB := fmt.Sprintf("name: %s\nkind: %s\ndescription: %s\n", entB.Name, entB.Kind, entB.Description)

	result := diff.Compute(docA, docB, args[0], args[1])
	log.Event("example:entities", "compare").Detail("a", args[0]).Detail("b", args[1]).Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"a": args[0], "b": args[1], "diff": result.Diff})
	}
	fmt.Fprint(cmd.Out(), result.Format(false))
	return nil
}

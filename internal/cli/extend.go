package cli

import (
	"fmt"
	"os"

	"github.com/graph-gophers/graphql-editor/ast"
	"github.com/graph-gophers/graphql-editor/internal/cli/config"
	"github.com/graph-gophers/graphql-editor/menu"
	"github.com/spf13/cobra"
)

func newExtendCommand() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "extend <type>...",
		Short: "Add an empty extension of a type",
		Long: `Append "extend <kind> <type>" for each named type of the schema or its
libraries and print the resulting schema.`,
		Example: `  # Extend a library type and save the schema
  graphql-editor extend -l federation.graphql -w Query`,
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			c, _, err := newController(cmd)
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			var names []string
			for _, n := range menu.Pickable(c.AllNodes()) {
				names = append(names, n.Name)
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtend(cmd, args, write)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the schema file")
	return cmd
}

func runExtend(cmd *cobra.Command, names []string, write bool) error {
	c, src, err := newController(cmd)
	if err != nil {
		return err
	}
	if c.ReadOnly() {
		return fmt.Errorf("schema %s is read-only", src.schemaPath)
	}

	logger := config.GetLogger(cmd.Context())
	candidates := menu.Pickable(c.AllNodes())
	for _, name := range names {
		target := findByName(candidates, name)
		if target == nil {
			return fmt.Errorf("no type %q to extend", name)
		}
		c.AddExtension(target)
		logger.Debug("extended", "type", name, "kind", target.Kind().String())
	}

	if !write {
		fmt.Fprint(cmd.OutOrStdout(), c.Schema())
		return nil
	}
	if err := os.WriteFile(src.schemaPath, []byte(c.Schema()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", src.schemaPath, err)
	}
	return nil
}

func findByName(nodes []*ast.Node, name string) *ast.Node {
	for _, n := range nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

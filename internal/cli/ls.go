package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/graph-gophers/graphql-editor/ast"
	"github.com/graph-gophers/graphql-editor/menu"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type lsOptions struct {
	kind       string
	search     string
	extendable bool
	json       bool
}

func newLsCommand() *cobra.Command {
	var opts lsOptions

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List the types of the schema and its libraries",
		Example: `  # List types that can be extended, matching "user"
  graphql-editor ls --extendable --search user

  # List enums as JSON
  graphql-editor ls --kind EnumTypeDefinition --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLs(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "", "only list nodes of this kind")
	cmd.Flags().StringVar(&opts.search, "search", "", "only list names containing this text, ignoring case")
	cmd.Flags().BoolVar(&opts.extendable, "extendable", false, "only list nodes that can be extended, sorted by name")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON")
	_ = cmd.RegisterFlagCompletionFunc("kind", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var kinds []string
		for _, k := range ast.Kinds() {
			kinds = append(kinds, k.String())
		}
		return kinds, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

type lsRow struct {
	Name       string   `json:"name"`
	Kind       ast.Kind `json:"kind"`
	Family     string   `json:"family"`
	Fields     int      `json:"fields"`
	Directives []string `json:"directives,omitempty"`
	Library    bool     `json:"library"`
}

func runLs(cmd *cobra.Command, opts lsOptions) error {
	c, _, err := newController(cmd)
	if err != nil {
		return err
	}

	library := make(map[string]bool)
	for _, n := range c.LibraryNodes() {
		library[n.ID] = true
	}

	nodes := c.AllNodes()
	if opts.extendable {
		nodes = menu.Pickable(nodes)
	}
	if opts.kind != "" {
		k, err := ast.ParseKind(opts.kind)
		if err != nil {
			return err
		}
		var kept []*ast.Node
		for _, n := range nodes {
			if n.Kind() == k {
				kept = append(kept, n)
			}
		}
		nodes = kept
	}
	nodes = menu.Search(nodes, opts.search)

	rows := make([]lsRow, 0, len(nodes))
	for _, n := range nodes {
		var directives []string
		for _, d := range n.Directives {
			directives = append(directives, menu.Label(d))
		}
		rows = append(rows, lsRow{
			Name:       n.Name,
			Kind:       n.Kind(),
			Family:     n.Kind().Family().String(),
			Fields:     len(n.Args),
			Directives: directives,
			Library:    library[n.ID],
		})
	}

	if opts.json {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "(no types)")
		return nil
	}
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Kind", "Family", "Fields", "Directives", "Source"})
	for _, r := range rows {
		source := "schema"
		if r.Library {
			source = "library"
		}
		t.AppendRow(table.Row{r.Name, ast.DisplayName(r.Kind), r.Family, r.Fields, strings.Join(r.Directives, " "), source})
	}
	t.Render()
	return nil
}

package menu

import (
	"sort"
	"strings"

	"github.com/graph-gophers/graphql-editor/ast"
)

// Pickable returns the nodes that can be the target of a fresh extension:
// extensions and directive definitions are dropped and the rest is sorted
// by name, byte-wise, keeping the input order of equal names.
func Pickable(nodes []*ast.Node) []*ast.Node {
	var picked []*ast.Node
	for _, n := range nodes {
		if n.Kind().IsExtension() || n.Kind() == ast.DirectiveDefinition {
			continue
		}
		picked = append(picked, n)
	}
	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].Name < picked[j].Name
	})
	return picked
}

// Search keeps the nodes whose name contains query, ignoring case. An empty
// query keeps every node.
func Search(nodes []*ast.Node, query string) []*ast.Node {
	if query == "" {
		return nodes
	}
	q := strings.ToLower(query)
	var found []*ast.Node
	for _, n := range nodes {
		if strings.Contains(strings.ToLower(n.Name), q) {
			found = append(found, n)
		}
	}
	return found
}

// Label renders a node the way menus list it: directive usages with their
// arguments, fields with their type.
func Label(n *ast.Node) string {
	switch n.Kind() {
	case ast.Directive:
		var b strings.Builder
		b.WriteString("@" + n.Name)
		if len(n.Args) > 0 {
			b.WriteString("(")
			for i, a := range n.Args {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(a.Name + ": ")
				if a.Value != nil {
					b.WriteString(a.Value.String())
				} else {
					b.WriteString("null")
				}
			}
			b.WriteString(")")
		}
		return b.String()
	case ast.FieldDefinition, ast.InputValueDefinition:
		return n.Name + ": " + n.Type.String()
	case ast.DirectiveDefinition:
		return "@" + n.Name
	}
	return n.Name
}

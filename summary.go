package editor

import "github.com/graph-gophers/graphql-editor/ast"

// TreeSummary is a concise description of a tree, suitable for logs and
// listings.
type TreeSummary struct {
	Definitions int            `json:",omitempty"`
	Extensions  int            `json:",omitempty"`
	Kinds       map[string]int `json:",omitempty"`
	Nodes       []NodeSummary  `json:",omitempty"`
}

// NodeSummary describes one top-level node.
type NodeSummary struct {
	Name       string
	Kind       ast.Kind
	Fields     int      `json:",omitempty"`
	Directives []string `json:",omitempty"`
}

func summarizeNode(n *ast.Node) NodeSummary {
	var directives []string
	for _, d := range n.Directives {
		directives = append(directives, d.Name)
	}
	return NodeSummary{
		Name:       n.Name,
		Kind:       n.Kind(),
		Fields:     len(n.Args),
		Directives: directives,
	}
}

// Summarize describes the top-level nodes of t.
func Summarize(t *ast.Tree) TreeSummary {
	var s TreeSummary
	if t == nil {
		return s
	}
	s.Nodes = make([]NodeSummary, 0, len(t.Nodes))
	for _, n := range t.Nodes {
		switch {
		case n.Kind().IsDefinition():
			s.Definitions++
		case n.Kind().IsExtension():
			s.Extensions++
		}
		if s.Kinds == nil {
			s.Kinds = make(map[string]int)
		}
		s.Kinds[ast.DisplayName(n.Kind())]++
		s.Nodes = append(s.Nodes, summarizeNode(n))
	}
	return s
}

// Summary describes the editable tree of the controller.
func (c *Controller) Summary() TreeSummary {
	return Summarize(c.tree)
}

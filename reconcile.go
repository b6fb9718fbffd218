package editor

import "github.com/graph-gophers/graphql-editor/ast"

type identity struct {
	name       string
	kind       ast.Kind
	occurrence int
}

// reconcile carries IDs and positions from prev over to next. Nodes are
// matched by name, kind and occurrence among their siblings, then their
// children are matched the same way. Unmatched nodes get fresh IDs, so a
// renamed node is a new node.
func reconcile(prev, next []*ast.Node) {
	index := make(map[identity]*ast.Node, len(prev))
	for k, n := range identities(prev) {
		index[k] = n
	}
	for k, n := range identities(next) {
		old, ok := index[k]
		if !ok || old.ID == "" {
			assignIDs(n)
			continue
		}
		n.ID = old.ID
		if n.Position == nil && old.Position != nil {
			p := *old.Position
			n.Position = &p
		}
		reconcile(old.Args, n.Args)
		reconcile(old.Directives, n.Directives)
	}
}

func identities(nodes []*ast.Node) map[identity]*ast.Node {
	seen := make(map[identity]int, len(nodes))
	m := make(map[identity]*ast.Node, len(nodes))
	for _, n := range nodes {
		k := identity{name: n.Name, kind: n.Kind()}
		k.occurrence = seen[k]
		seen[k]++
		m[k] = n
	}
	return m
}

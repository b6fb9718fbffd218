package menu

import "github.com/graph-gophers/graphql-editor/ast"

// ExplorerGraph is what the explorer needs from the graph controller.
type ExplorerGraph interface {
	Nodes() []*ast.Node
	Selected() []*ast.Node
	CenterOnNodeByID(id string)
}

type ExplorerItem struct {
	Node     *ast.Node
	Selected bool
}

// ExplorerGroup holds the visible nodes of one family in tree order.
type ExplorerGroup struct {
	Family ast.Family
	Items  []ExplorerItem
}

// Explorer is the hierarchy list shown next to the diagram.
type Explorer struct {
	graph  ExplorerGraph
	search string
}

func NewExplorer(g ExplorerGraph) *Explorer {
	return &Explorer{graph: g}
}

func (e *Explorer) SetSearch(q string) { e.search = q }

// Groups lists the editable nodes matching the search text, definitions
// first, then extensions. Empty groups are left out.
func (e *Explorer) Groups() []ExplorerGroup {
	selected := make(map[string]bool)
	for _, n := range e.graph.Selected() {
		selected[n.ID] = true
	}
	var defs, exts ExplorerGroup
	defs.Family, exts.Family = ast.Definitions, ast.Extensions
	for _, n := range Search(e.graph.Nodes(), e.search) {
		item := ExplorerItem{Node: n, Selected: selected[n.ID]}
		if n.Kind().IsExtension() {
			exts.Items = append(exts.Items, item)
		} else {
			defs.Items = append(defs.Items, item)
		}
	}
	var groups []ExplorerGroup
	for _, g := range []ExplorerGroup{defs, exts} {
		if len(g.Items) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// Center selects the node and moves the diagram to it.
func (e *Explorer) Center(id string) {
	e.graph.CenterOnNodeByID(id)
}

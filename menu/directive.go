package menu

import (
	editor "github.com/graph-gophers/graphql-editor"
	"github.com/graph-gophers/graphql-editor/ast"
)

// DirectiveGraph is what the directive listing of a node needs from the
// graph controller.
type DirectiveGraph interface {
	Node(id string) *ast.Node
	DirectiveAffordances(id string) editor.Affordances
	ToggleDirectiveMenu(id string) bool
	DirectiveMenu() string
	DeleteDirective(id string)
}

// DirectiveEntry is one directive usage shown under a node.
type DirectiveEntry struct {
	Node        *ast.Node
	Label       string
	Affordances editor.Affordances
	// Open is set when the detail menu of this entry is shown.
	Open bool
}

// DirectiveMenu lists the directives attached to one node and routes the
// detail menu actions to the controller.
type DirectiveMenu struct {
	graph DirectiveGraph
	owner string
}

func NewDirectiveMenu(g DirectiveGraph, ownerID string) *DirectiveMenu {
	return &DirectiveMenu{graph: g, owner: ownerID}
}

// Entries lists the directives of the owner in order. A vanished owner has
// none.
func (m *DirectiveMenu) Entries() []DirectiveEntry {
	owner := m.graph.Node(m.owner)
	if owner == nil {
		return nil
	}
	open := m.graph.DirectiveMenu()
	entries := make([]DirectiveEntry, 0, len(owner.Directives))
	for _, d := range owner.Directives {
		entries = append(entries, DirectiveEntry{
			Node:        d,
			Label:       Label(d),
			Affordances: m.graph.DirectiveAffordances(d.ID),
			Open:        d.ID == open,
		})
	}
	return entries
}

// Toggle opens or closes the detail menu of the entry id.
func (m *DirectiveMenu) Toggle(id string) bool {
	return m.graph.ToggleDirectiveMenu(id)
}

// Delete removes the entry id when the entry offers deletion.
func (m *DirectiveMenu) Delete(id string) {
	if !m.graph.DirectiveAffordances(id).Delete {
		return
	}
	m.graph.DeleteDirective(id)
}

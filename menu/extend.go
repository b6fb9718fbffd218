package menu

import (
	"github.com/graph-gophers/graphql-editor/ast"
	"github.com/graph-gophers/graphql-editor/view"
)

// Graph is what the extend menu needs from the graph controller.
type Graph interface {
	AllNodes() []*ast.Node
	AddExtension(target *ast.Node)
	ReadOnly() bool
}

// Locker hands out diagram scroll locks and closes menus when the view
// closes them all.
type Locker interface {
	AcquireScrollLock() *view.Lease
	OnCloseMenus(fn func())
}

// ExtendMenu lists the nodes of both trees that can be extended and adds an
// extension of the chosen one. While the pointer is over the menu the
// diagram scroll lock is held.
type ExtendMenu struct {
	graph  Graph
	locker Locker
	search string
	lease  *view.Lease
	open   bool
}

func NewExtendMenu(g Graph, l Locker) *ExtendMenu {
	m := &ExtendMenu{graph: g, locker: l}
	l.OnCloseMenus(m.Close)
	return m
}

// Open shows the menu with an empty search. Read-only graphs offer no
// extend menu.
func (m *ExtendMenu) Open() bool {
	if m.graph.ReadOnly() {
		return false
	}
	m.open = true
	m.search = ""
	return true
}

// IsOpen reports whether the menu is shown.
func (m *ExtendMenu) IsOpen() bool { return m.open }

// Close hides the menu and gives back its scroll lock.
func (m *ExtendMenu) Close() {
	m.open = false
	m.Leave()
}

func (m *ExtendMenu) SetSearch(q string) { m.search = q }

func (m *ExtendMenu) ClearSearch() { m.search = "" }

func (m *ExtendMenu) SearchText() string { return m.search }

// Items lists the extendable nodes that match the search text.
func (m *ExtendMenu) Items() []*ast.Node {
	return Search(Pickable(m.graph.AllNodes()), m.search)
}

// Choose extends the listed node named name, then closes the menu. It
// reports whether an entry was chosen.
func (m *ExtendMenu) Choose(name string) bool {
	if !m.open {
		return false
	}
	for _, n := range m.Items() {
		if n.Name == name {
			m.graph.AddExtension(n)
			m.Close()
			return true
		}
	}
	return false
}

// Hover takes the scroll lock while the pointer is over the open menu. A
// lease revoked by the view does not count as held.
func (m *ExtendMenu) Hover() {
	if m.open && !m.lease.Held() {
		m.lease = m.locker.AcquireScrollLock()
	}
}

// Leave releases the scroll lock taken by Hover.
func (m *ExtendMenu) Leave() {
	if m.lease != nil {
		m.lease.Release()
		m.lease = nil
	}
}

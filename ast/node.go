package ast

// Data holds the catalog tag of a node.
type Data struct {
	Type Kind
}

// Position is the diagram placement of a node. It is owned by the rendering
// layer; the core only carries it across re-parses.
type Position struct {
	X, Y float64
}

// Node is a single type system construct: a definition, an extension, a field,
// an argument, an enum value or a directive usage.
type Node struct {
	// ID is the identity of the node inside an editing session. The codec
	// leaves it empty; the controller assigns and preserves it.
	ID          string
	Name        string
	Data        Data
	Description string
	Type        TypeRef

	// Args holds the ordered children: fields of object and interface types,
	// input fields, enum values, and arguments of fields, directive
	// definitions and directive usages.
	Args       []*Node
	Directives []*Node

	Interfaces []string // implemented interfaces
	Members    []string // union member types
	Locations  []string // directive definition locations
	Repeatable bool

	// Value is the default value of an input value or the value passed to a
	// directive argument.
	Value Value

	Position *Position
}

// Kind is shorthand for n.Data.Type.
func (n *Node) Kind() Kind { return n.Data.Type }

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Type = n.Type.clone()
	c.Args = cloneNodes(n.Args)
	c.Directives = cloneNodes(n.Directives)
	c.Interfaces = cloneStrings(n.Interfaces)
	c.Members = cloneStrings(n.Members)
	c.Locations = cloneStrings(n.Locations)
	if n.Value != nil {
		c.Value = n.Value.Clone()
	}
	if n.Position != nil {
		p := *n.Position
		c.Position = &p
	}
	return &c
}

// Arg returns the child named name.
func (n *Node) Arg(name string) *Node {
	for _, a := range n.Args {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Walk calls fn for n and every descendant, depth first. Returning false stops
// the descent below that node.
func (n *Node) Walk(fn func(n *Node) bool) {
	if !fn(n) {
		return
	}
	for _, a := range n.Args {
		a.Walk(fn)
	}
	for _, d := range n.Directives {
		d.Walk(fn)
	}
}

// NewDefinition returns an empty definition or extension node of kind k.
func NewDefinition(k Kind, name string) *Node {
	return &Node{
		Name: name,
		Data: Data{Type: k},
		Type: TypeRef{Name: DisplayName(k)},
	}
}

// Operation is a root operation type entry of a schema block.
type Operation struct {
	Operation string // query, mutation or subscription
	Type      string
}

// SchemaDefinition is the `schema` block, or one `extend schema`.
type SchemaDefinition struct {
	Description string
	Directives  []*Node
	Operations  []Operation
}

func (s *SchemaDefinition) Clone() *SchemaDefinition {
	if s == nil {
		return nil
	}
	c := *s
	c.Directives = cloneNodes(s.Directives)
	c.Operations = append([]Operation(nil), s.Operations...)
	return &c
}

// Tree is the ordered content of one schema source.
type Tree struct {
	Nodes            []*Node
	Schema           *SchemaDefinition
	SchemaExtensions []*SchemaDefinition
}

// Clone returns a deep copy of t.
func (t *Tree) Clone() *Tree {
	if t == nil {
		return &Tree{}
	}
	c := &Tree{
		Nodes:  cloneNodes(t.Nodes),
		Schema: t.Schema.Clone(),
	}
	for _, ext := range t.SchemaExtensions {
		c.SchemaExtensions = append(c.SchemaExtensions, ext.Clone())
	}
	return c
}

// Find returns the first top-level node with the given name and kind.
func (t *Tree) Find(name string, kind Kind) *Node {
	for _, n := range t.Nodes {
		if n.Name == name && n.Kind() == kind {
			return n
		}
	}
	return nil
}

// Definition returns the type or directive definition named name.
func (t *Tree) Definition(name string, directive bool) *Node {
	for _, n := range t.Nodes {
		if n.Name != name || !n.Kind().IsDefinition() {
			continue
		}
		if (n.Kind() == DirectiveDefinition) == directive {
			return n
		}
	}
	return nil
}

// Concat lists the nodes of the given trees one after another. The trees are
// not modified and the result shares their nodes.
func Concat(trees ...*Tree) []*Node {
	var nodes []*Node
	for _, t := range trees {
		if t != nil {
			nodes = append(nodes, t.Nodes...)
		}
	}
	return nodes
}

func cloneNodes(nodes []*Node) []*Node {
	if nodes == nil {
		return nil
	}
	c := make([]*Node, len(nodes))
	for i, n := range nodes {
		c[i] = n.Clone()
	}
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

package menu_test

import (
	"testing"

	editor "github.com/graph-gophers/graphql-editor"
	"github.com/graph-gophers/graphql-editor/ast"
	"github.com/graph-gophers/graphql-editor/menu"
	"github.com/graph-gophers/graphql-editor/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(nodes []*ast.Node) []string {
	s := []string{}
	for _, n := range nodes {
		s = append(s, n.Name)
	}
	return s
}

func scenario() []*ast.Node {
	return []*ast.Node{
		ast.NewDefinition(ast.ObjectTypeDefinition, "Zebra"),
		ast.NewDefinition(ast.ObjectTypeDefinition, "apple"),
		ast.NewDefinition(ast.DirectiveDefinition, "auth"),
		ast.NewDefinition(ast.ObjectTypeDefinition, "Mango"),
	}
}

func TestPickable(t *testing.T) {
	assert.Equal(t, []string{"Mango", "Zebra", "apple"}, names(menu.Pickable(scenario())))

	nodes := append(scenario(), ast.NewDefinition(ast.ObjectTypeExtension, "Mango"))
	assert.Equal(t, []string{"Mango", "Zebra", "apple"}, names(menu.Pickable(nodes)))
}

func TestPickableIsStable(t *testing.T) {
	nodes := []*ast.Node{
		ast.NewDefinition(ast.ScalarTypeDefinition, "Same"),
		ast.NewDefinition(ast.EnumTypeDefinition, "A"),
		ast.NewDefinition(ast.ObjectTypeDefinition, "Same"),
	}
	picked := menu.Pickable(nodes)
	require.Len(t, picked, 3)
	assert.Equal(t, ast.ScalarTypeDefinition, picked[1].Kind())
	assert.Equal(t, ast.ObjectTypeDefinition, picked[2].Kind())
}

func TestSearch(t *testing.T) {
	picked := menu.Pickable(scenario())
	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Mango", "Zebra", "apple"}},
		{"a", []string{"Mango", "Zebra", "apple"}},
		{"AN", []string{"Mango"}},
		{"p", []string{"apple"}},
		{"e", []string{"Zebra", "apple"}},
		{"x", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, names(menu.Search(picked, tt.query)))
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		node *ast.Node
		want string
	}{
		{&ast.Node{Name: "key", Data: ast.Data{Type: ast.Directive}}, "@key"},
		{&ast.Node{Name: "key", Data: ast.Data{Type: ast.Directive}, Args: []*ast.Node{
			{Name: "fields", Data: ast.Data{Type: ast.Argument}, Value: &ast.StringValue{Value: "id"}},
			{Name: "resolvable", Data: ast.Data{Type: ast.Argument}, Value: &ast.PrimitiveValue{Text: "true"}},
		}}, `@key(fields: "id", resolvable: true)`},
		{&ast.Node{Name: "tags", Data: ast.Data{Type: ast.FieldDefinition}, Type: ast.ListOf(ast.Required(ast.Named("String")))}, "tags: [String!]"},
		{ast.NewDefinition(ast.DirectiveDefinition, "auth"), "@auth"},
		{ast.NewDefinition(ast.EnumTypeDefinition, "Color"), "Color"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, menu.Label(tt.node))
		})
	}
}

const schema = `type Zebra {
  stripes: Int @deprecated @tag(name: "a")
}

type apple

enum Mango {
  RIPE
}

directive @auth on OBJECT
`

const libraries = `scalar Date

extend scalar Date @specifiedBy(url: "x")
`

func setup(t *testing.T, readOnly bool) (*editor.Controller, *view.Coordinator) {
	t.Helper()
	var opts []editor.ControllerOpt
	if readOnly {
		opts = append(opts, editor.ReadOnly())
	}
	c := editor.NewController(opts...)
	require.NoError(t, c.LoadGraphQLAndLibraries(schema, libraries))
	return c, view.NewCoordinator(view.PaneCodeDiagram)
}

func TestExtendMenuItems(t *testing.T) {
	c, v := setup(t, false)
	m := menu.NewExtendMenu(c, v)
	require.True(t, m.Open())

	assert.Equal(t, []string{"Date", "Mango", "Zebra", "apple"}, names(m.Items()))
	m.SetSearch("A")
	assert.Equal(t, []string{"Date", "Mango", "Zebra", "apple"}, names(m.Items()))
	m.SetSearch("ang")
	assert.Equal(t, []string{"Mango"}, names(m.Items()))
	m.ClearSearch()
	assert.Equal(t, "", m.SearchText())
}

func TestExtendMenuChoose(t *testing.T) {
	c, v := setup(t, false)
	m := menu.NewExtendMenu(c, v)
	m.Open()
	m.Hover()
	require.True(t, v.ScrollLocked())

	m.SetSearch("ang")
	assert.False(t, m.Choose("Zebra"), "filtered out entries cannot be chosen")
	require.True(t, m.Choose("Mango"))

	assert.False(t, m.IsOpen())
	assert.False(t, v.ScrollLocked())
	assert.Contains(t, c.Schema(), "\nextend enum Mango\n")

	assert.False(t, m.Choose("Mango"), "closed menus do nothing")
}

func TestExtendMenuHover(t *testing.T) {
	c, v := setup(t, false)
	m := menu.NewExtendMenu(c, v)

	m.Hover()
	assert.False(t, v.ScrollLocked(), "closed menus do not lock")

	m.Open()
	m.Hover()
	m.Hover()
	assert.True(t, v.ScrollLocked())
	m.Leave()
	assert.False(t, v.ScrollLocked())

	m.Hover()
	m.Close()
	assert.False(t, v.ScrollLocked())
}

func TestExtendMenuLockReleasedByCoordinator(t *testing.T) {
	c, v := setup(t, false)
	m := menu.NewExtendMenu(c, v)
	m.Open()
	m.Hover()
	v.CloseMenus()
	assert.False(t, v.ScrollLocked())

	other := v.AcquireScrollLock()
	m.Leave()
	assert.True(t, other.Held(), "a stale lease must not release someone else's lock")
}

func TestExtendMenuClosedByCoordinator(t *testing.T) {
	tests := []struct {
		name  string
		close func(v *view.Coordinator)
	}{
		{name: "CloseMenus", close: func(v *view.Coordinator) { v.CloseMenus() }},
		{name: "Unmount", close: func(v *view.Coordinator) { v.Unmount() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, v := setup(t, false)
			m := menu.NewExtendMenu(c, v)
			require.True(t, m.Open())
			m.Hover()
			require.True(t, v.ScrollLocked())

			tt.close(v)
			assert.False(t, m.IsOpen())
			assert.False(t, v.ScrollLocked())
			assert.False(t, m.Choose("Mango"))
			assert.NotContains(t, c.Schema(), "extend enum Mango")

			require.True(t, m.Open())
			m.Hover()
			assert.True(t, v.ScrollLocked(), "reopened menus lock again")
		})
	}
}

func TestExtendMenuHoverAfterRevokedLease(t *testing.T) {
	c, v := setup(t, false)
	m := menu.NewExtendMenu(c, v)
	m.Open()
	m.Hover()
	v.CloseMenus()
	m.Open()
	m.Hover()
	assert.True(t, v.ScrollLocked())
	m.Leave()
	assert.False(t, v.ScrollLocked())
}

func TestExtendMenuReadOnly(t *testing.T) {
	c, v := setup(t, true)
	m := menu.NewExtendMenu(c, v)
	assert.False(t, m.Open())
	assert.False(t, m.Choose("Mango"))
	assert.Len(t, c.Nodes(), 4)
}

func TestDirectiveMenu(t *testing.T) {
	c, _ := setup(t, false)
	field := c.Nodes()[0].Args[0]
	m := menu.NewDirectiveMenu(c, field.ID)

	entries := m.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "@deprecated", entries[0].Label)
	assert.Equal(t, `@tag(name: "a")`, entries[1].Label)
	assert.Equal(t, editor.Affordances{EditArguments: true, Delete: true}, entries[1].Affordances)

	require.True(t, m.Toggle(entries[0].Node.ID))
	assert.True(t, m.Entries()[0].Open)
	m.Delete(entries[0].Node.ID)

	entries = m.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, `@tag(name: "a")`, entries[0].Label)
	assert.False(t, entries[0].Open)
	assert.Contains(t, c.Schema(), `stripes: Int @tag(name: "a")`)
}

func TestDirectiveMenuEnumValue(t *testing.T) {
	c, _ := setup(t, false)
	ripe := c.Nodes()[2].Args[0]
	c.AddDirective(ripe.ID, "deprecated")

	entries := menu.NewDirectiveMenu(c, ripe.ID).Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, editor.Affordances{Delete: true}, entries[0].Affordances)
}

func TestDirectiveMenuReadOnly(t *testing.T) {
	c, _ := setup(t, true)
	field := c.Nodes()[0].Args[0]
	m := menu.NewDirectiveMenu(c, field.ID)

	entries := m.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, editor.Affordances{}, entries[0].Affordances)
	m.Delete(entries[0].Node.ID)
	assert.Len(t, m.Entries(), 2)
	assert.Nil(t, menu.NewDirectiveMenu(c, "missing").Entries())
}

type viewport struct{ centered []string }

func (v *viewport) CenterOnNode(n *ast.Node) { v.centered = append(v.centered, n.Name) }

func TestExplorer(t *testing.T) {
	c, _ := setup(t, false)
	c.AddExtension(c.Nodes()[0])
	vp := &viewport{}
	c.SetViewport(vp)
	e := menu.NewExplorer(c)

	groups := e.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, ast.Definitions, groups[0].Family)
	assert.Len(t, groups[0].Items, 4)
	assert.Equal(t, ast.Extensions, groups[1].Family)
	require.Len(t, groups[1].Items, 1)
	assert.Equal(t, "Zebra", groups[1].Items[0].Node.Name)

	mango := c.Nodes()[2]
	e.Center(mango.ID)
	assert.Equal(t, []string{"Mango"}, vp.centered)

	e.SetSearch("mango")
	groups = e.Groups()
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Items, 1)
	assert.True(t, groups[0].Items[0].Selected)
}

package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	editor "github.com/graph-gophers/graphql-editor"
	"github.com/graph-gophers/graphql-editor/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schema = `type Pet {
  name: String @deprecated
}

enum Color {
  RED
}
`

func start(t *testing.T, opts Options) *Model {
	t.Helper()
	s := editor.NewSession(editor.WithSchema(schema, "scalar Date"))
	m := New(s, opts)
	m.Init()
	require.Equal(t, view.Attaching, s.View().Attach())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Equal(t, view.Attached, s.View().Attach())
	return m
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "ctrl+f":
			msg = tea.KeyMsg{Type: tea.KeyCtrlF}
		case "ctrl+s":
			msg = tea.KeyMsg{Type: tea.KeyCtrlS}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestAttachLoadsSchema(t *testing.T) {
	m := start(t, Options{Title: "test"})
	assert.Equal(t, schema, m.ctrl.Schema())
	assert.Contains(t, m.View(), "Pet")
	assert.Contains(t, m.View(), "[code-diagram]")
}

func TestToKey(t *testing.T) {
	assert.Equal(t, view.Key{Key: "f", Ctrl: true}, toKey(tea.KeyMsg{Type: tea.KeyCtrlF}))
	assert.Equal(t, view.Key{Key: "f", Meta: true}, toKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f"), Alt: true}))
	assert.Equal(t, view.Key{Key: "x"}, toKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}))
}

func TestFindChordNeedsFocus(t *testing.T) {
	m := start(t, Options{})
	press(m, "ctrl+f")
	assert.Equal(t, view.PaneCodeDiagram, m.view.Pane())

	press(m, "tab", "ctrl+f")
	assert.Equal(t, view.PaneExplorerDiagram, m.view.Pane())
	assert.True(t, m.search.Focused())
	assert.True(t, m.Resized())
}

func TestPaneKeys(t *testing.T) {
	m := start(t, Options{})
	press(m, "1")
	assert.Equal(t, view.PaneCode, m.view.Pane())
	assert.False(t, m.Resized())
	press(m, "2")
	assert.Equal(t, view.PaneDiagram, m.view.Pane())
	assert.True(t, m.Resized())
}

func TestExtendFromKeyboard(t *testing.T) {
	m := start(t, Options{})
	press(m, "tab", "e")
	require.True(t, m.extend.IsOpen())
	assert.True(t, m.view.ScrollLocked())

	press(m, "C", "o", "enter")
	assert.False(t, m.extend.IsOpen())
	assert.False(t, m.view.ScrollLocked())
	assert.Contains(t, m.ctrl.Schema(), "extend enum Color")
	assert.Equal(t, "extended Color", m.status)
}

func TestExtendMenuEscape(t *testing.T) {
	m := start(t, Options{})
	press(m, "tab", "e", "esc")
	assert.False(t, m.extend.IsOpen())
	assert.False(t, m.view.ScrollLocked())
	assert.Equal(t, schema, m.ctrl.Schema())
}

func TestSelectAndDelete(t *testing.T) {
	m := start(t, Options{})
	press(m, "tab", "down", " ")
	require.Len(t, m.ctrl.Selected(), 1)
	assert.Equal(t, "Color", m.ctrl.Selected()[0].Name)

	press(m, "x")
	assert.Len(t, m.ctrl.Nodes(), 1)
	assert.Empty(t, m.ctrl.Selected())
	assert.Equal(t, 0, m.cursor)
}

func TestReload(t *testing.T) {
	m := start(t, Options{})
	m.Update(ReloadMsg{Schema: "type", Libraries: ""})
	assert.NotEmpty(t, m.errs)
	assert.Equal(t, schema, m.ctrl.Schema())

	m.Update(ReloadMsg{Schema: "scalar Time", Libraries: ""})
	assert.Empty(t, m.errs)
	assert.Equal(t, "reloaded", m.status)
	assert.Equal(t, "scalar Time\n", m.ctrl.Schema())
}

func TestSave(t *testing.T) {
	var saved string
	m := start(t, Options{Save: func(s string) error {
		saved = s
		return nil
	}})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, schema, saved)
	assert.Equal(t, "saved", m.status)

	m.Update(savedMsg{err: errors.New("disk full")})
	assert.Equal(t, "save failed: disk full", m.status)
}

func TestQuitUnmounts(t *testing.T) {
	m := start(t, Options{})
	press(m, "tab", "e")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, view.Unattached, m.view.Attach())
	assert.False(t, m.view.ScrollLocked())
}

func TestFitTruncatesByDisplayWidth(t *testing.T) {
	m := start(t, Options{})
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	assert.Equal(t, "Pet", m.fit("Pet"))
	got := m.fit("AVeryLongTypeNameThatDoesNotFit")
	assert.Equal(t, "AVeryLongTypeNa…", got)
	assert.Equal(t, "类型类型类型类…", m.fit("类型类型类型类型类型"))
}

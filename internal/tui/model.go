// Package tui is the terminal front end of the editor. The node list plays
// the role of the diagram surface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	editor "github.com/graph-gophers/graphql-editor"
	"github.com/graph-gophers/graphql-editor/ast"
	"github.com/graph-gophers/graphql-editor/menu"
	"github.com/graph-gophers/graphql-editor/view"
	"github.com/mattn/go-runewidth"
)

// ReloadMsg carries new text read from disk.
type ReloadMsg struct {
	Schema    string
	Libraries string
}

type savedMsg struct{ err error }

// Options configure the model.
type Options struct {
	Title string
	// Save persists the canonical schema text. Nil disables saving.
	Save func(schema string) error
}

// diagram is the surface the view coordinator attaches.
type diagram struct {
	resized  bool
	centered string
}

func (d *diagram) Resize() { d.resized = true }

func (d *diagram) CenterOnNode(n *ast.Node) { d.centered = n.ID }

// Model drives an editor session from the keyboard.
type Model struct {
	session  *editor.Session
	ctrl     *editor.Controller
	view     *view.Coordinator
	diagram  *diagram
	extend   *menu.ExtendMenu
	explorer *menu.Explorer
	search   textinput.Model
	code     viewport.Model
	opts     Options

	cursor    int
	menuIndex int
	width     int
	height    int
	status    string
	errs      string
}

// New returns a model for s. The session's diagram is attached on the first
// window size message.
func New(s *editor.Session, opts Options) *Model {
	search := textinput.New()
	search.Placeholder = "search"
	search.Prompt = "/ "

	m := &Model{
		session: s,
		ctrl:    s.Controller(),
		view:    s.View(),
		diagram: &diagram{},
		search:  search,
		code:    viewport.New(80, 20),
		opts:    opts,
		width:   80,
		height:  24,
	}
	m.extend = menu.NewExtendMenu(m.ctrl, m.view)
	m.explorer = menu.NewExplorer(m.ctrl)
	m.ctrl.OnGraphChanged(func(schema, _ string) {
		m.errs = ""
		m.code.SetContent(schema)
	})
	m.ctrl.OnErrors(func(errs string) { m.errs = errs })
	return m
}

func (m *Model) Init() tea.Cmd {
	m.view.Mount(m.diagram)
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		// The surface has a size now; finish attaching.
		m.view.Mounted()
		return m, nil
	case ReloadMsg:
		if err := m.session.SetSchema(msg.Schema, msg.Libraries); err == nil {
			m.status = "reloaded"
		}
		m.clampCursor()
		return m, nil
	case savedMsg:
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
		} else {
			m.status = "saved"
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.view.Unmount()
		return m, tea.Quit
	}
	if m.extend.IsOpen() {
		return m.handleExtendKey(msg)
	}
	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}
	if m.view.HandleKey(toKey(msg)) {
		m.search.Focus()
		return m, textinput.Blink
	}
	if p, ok := paneKeys[msg.String()]; ok {
		m.view.SetPane(p)
		m.layout()
		return m, nil
	}

	switch msg.String() {
	case "q":
		m.view.Unmount()
		return m, tea.Quit
	case "tab":
		if m.view.Focused() {
			m.view.Blur()
		} else if m.view.Pane().HasDiagram() {
			m.view.Focus()
		}
		return m, nil
	case "ctrl+s":
		return m, m.save()
	case "ctrl+r":
		m.session.SetReadOnly(!m.ctrl.ReadOnly())
		return m, nil
	}

	if !m.view.Focused() {
		var cmd tea.Cmd
		m.code, cmd = m.code.Update(msg)
		return m, cmd
	}

	nodes := m.visible()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(nodes)-1 {
			m.cursor++
		}
	case " ":
		if n := m.current(); n != nil {
			m.ctrl.Select(n.ID)
		}
	case "enter":
		if n := m.current(); n != nil {
			m.ctrl.CenterOnNodeByID(n.ID)
			m.syncCursor()
		}
	case "e":
		if m.extend.Open() {
			m.menuIndex = 0
			m.extend.Hover()
		}
	case "x":
		if n := m.current(); n != nil {
			m.ctrl.DeleteNode(n.ID)
			m.clampCursor()
		}
	}
	return m, nil
}

func (m *Model) handleExtendKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.extend.Items()
	switch msg.Type {
	case tea.KeyEsc:
		m.extend.Close()
		return m, nil
	case tea.KeyUp:
		if m.menuIndex > 0 {
			m.menuIndex--
		}
		return m, nil
	case tea.KeyDown:
		if m.menuIndex < len(items)-1 {
			m.menuIndex++
		}
		return m, nil
	case tea.KeyEnter:
		if m.menuIndex < len(items) {
			name := items[m.menuIndex].Name
			if m.extend.Choose(name) {
				m.status = "extended " + name
			}
		}
		return m, nil
	case tea.KeyBackspace:
		if q := m.extend.SearchText(); q != "" {
			m.extend.SetSearch(q[:len(q)-1])
		}
	case tea.KeyRunes:
		m.extend.SetSearch(m.extend.SearchText() + string(msg.Runes))
	}
	m.menuIndex = 0
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.search.Blur()
		m.clampCursor()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.explorer.SetSearch(m.search.Value())
	m.cursor = 0
	return m, cmd
}

func (m *Model) save() tea.Cmd {
	if m.opts.Save == nil {
		return nil
	}
	save, schema := m.opts.Save, m.ctrl.Schema()
	return func() tea.Msg {
		return savedMsg{err: save(schema)}
	}
}

// visible lists the nodes of the diagram, or of the explorer when it is
// shown.
func (m *Model) visible() []*ast.Node {
	if m.view.Pane() != view.PaneExplorerDiagram {
		return m.ctrl.Nodes()
	}
	var nodes []*ast.Node
	for _, g := range m.explorer.Groups() {
		for _, it := range g.Items {
			nodes = append(nodes, it.Node)
		}
	}
	return nodes
}

func (m *Model) current() *ast.Node {
	nodes := m.visible()
	if m.cursor < 0 || m.cursor >= len(nodes) {
		return nil
	}
	return nodes[m.cursor]
}

func (m *Model) clampCursor() {
	if n := len(m.visible()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// syncCursor moves the cursor to the node the diagram was centered on.
func (m *Model) syncCursor() {
	for i, n := range m.visible() {
		if n.ID == m.diagram.centered {
			m.cursor = i
			return
		}
	}
}

func (m *Model) layout() {
	w := m.width - 4
	if m.view.Pane() == view.PaneCodeDiagram {
		w = m.width/2 - 4
	}
	if w < 20 {
		w = 20
	}
	m.code.Width = w
	m.code.Height = max(m.height-6, 3)
}

// fit truncates s to the display width left for labels in a pane.
func (m *Model) fit(s string) string {
	return runewidth.Truncate(s, max(m.width/2-12, 16), "…")
}

// Resized reports whether the surface has been asked to resize.
func (m *Model) Resized() bool { return m.diagram.resized }

func (m *Model) View() string {
	var b strings.Builder
	header := fmt.Sprintf("%s [%s]", m.opts.Title, m.view.Pane())
	if m.ctrl.ReadOnly() {
		header += " read-only"
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")

	var panes []string
	switch m.view.Pane() {
	case view.PaneCode:
		panes = append(panes, m.codeView())
	case view.PaneDiagram:
		panes = append(panes, m.diagramView())
	case view.PaneCodeDiagram:
		panes = append(panes, m.codeView(), m.diagramView())
	case view.PaneExplorerDiagram:
		panes = append(panes, m.explorerView(), m.diagramView())
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panes...))
	b.WriteString("\n")

	if m.extend.IsOpen() {
		b.WriteString(m.extendView())
		b.WriteString("\n")
	}
	if m.errs != "" {
		b.WriteString(errorStyle.Render(m.errs))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(kindStyle.Render("1-4 panes  tab focus  ctrl+f find  e extend  x delete  space select  ctrl+s save  q quit"))
	return b.String()
}

func (m *Model) codeView() string {
	style := paneStyle
	if !m.view.Focused() {
		style = focusedStyle
	}
	return style.Render(m.code.View())
}

func (m *Model) diagramView() string {
	style := paneStyle
	if m.view.Focused() {
		style = focusedStyle
	}
	if m.view.Attach() != view.Attached {
		return style.Render("attaching...")
	}

	selected := make(map[string]bool)
	for _, n := range m.ctrl.Selected() {
		selected[n.ID] = true
	}
	var b strings.Builder
	for i, n := range m.visible() {
		line := m.fit(n.Name) + " " + kindStyle.Render(ast.DisplayName(n.Kind()))
		if selected[n.ID] {
			line = selectedStyle.Render("* ") + line
		} else {
			line = "  " + line
		}
		if i == m.cursor && m.view.Focused() {
			line = cursorStyle.Render(">") + line
		} else {
			line = " " + line
		}
		b.WriteString(line + "\n")
		if i == m.cursor {
			b.WriteString(m.detailView(n))
		}
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

// detailView lists the fields of n and their directives.
func (m *Model) detailView(n *ast.Node) string {
	var b strings.Builder
	for _, f := range n.Args {
		b.WriteString("      " + m.fit(menu.Label(f)))
		for _, e := range menu.NewDirectiveMenu(m.ctrl, f.ID).Entries() {
			label := directiveStyle.Render(e.Label)
			if !e.Affordances.Delete {
				label += kindStyle.Render(" (locked)")
			}
			b.WriteString(" " + label)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) explorerView() string {
	var b strings.Builder
	b.WriteString(m.search.View())
	b.WriteString("\n")
	for _, g := range m.explorer.Groups() {
		b.WriteString(titleStyle.Render(g.Family.String()) + "\n")
		for _, it := range g.Items {
			mark := "  "
			if it.Selected {
				mark = selectedStyle.Render("* ")
			}
			b.WriteString(mark + m.fit(it.Node.Name) + "\n")
		}
	}
	return paneStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) extendView() string {
	var b strings.Builder
	b.WriteString("extend: " + m.extend.SearchText() + "\n")
	for i, n := range m.extend.Items() {
		prefix := "  "
		if i == m.menuIndex {
			prefix = cursorStyle.Render("> ")
		}
		b.WriteString(prefix + n.Name + " " + kindStyle.Render(ast.DisplayName(n.Kind())) + "\n")
	}
	return menuStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// Run returns the program, whose Send delivers messages from other
// goroutines onto the update loop, and a function that runs it.
func Run(m *Model, opts ...tea.ProgramOption) (*tea.Program, func() error) {
	p := tea.NewProgram(m, opts...)
	return p, func() error {
		_, err := p.Run()
		return err
	}
}

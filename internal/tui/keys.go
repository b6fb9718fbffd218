package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/graph-gophers/graphql-editor/view"
)

// toKey converts a terminal key press into the editor's key model.
func toKey(msg tea.KeyMsg) view.Key {
	s := msg.String()
	var k view.Key
	for {
		switch {
		case strings.HasPrefix(s, "ctrl+"):
			k.Ctrl = true
			s = strings.TrimPrefix(s, "ctrl+")
			continue
		case strings.HasPrefix(s, "alt+"):
			k.Meta = true
			s = strings.TrimPrefix(s, "alt+")
			continue
		}
		break
	}
	if msg.Alt {
		k.Meta = true
	}
	k.Key = s
	return k
}

var paneKeys = map[string]view.Pane{
	"1": view.PaneCode,
	"2": view.PaneDiagram,
	"3": view.PaneCodeDiagram,
	"4": view.PaneExplorerDiagram,
}

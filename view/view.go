// Package view tracks the presentation state shared by the code pane, the
// diagram and the explorer: which pane is active, whether the diagram may
// scroll, and whether the diagram surface is ready for the graph controller.
package view

import (
	"fmt"
	"strings"
)

// Pane is the layout of the editor window. The zero value is PaneCodeDiagram.
type Pane int

const (
	PaneCodeDiagram Pane = iota
	PaneCode
	PaneDiagram
	PaneExplorerDiagram
)

var paneNames = [...]string{
	PaneCodeDiagram:     "code-diagram",
	PaneCode:            "code",
	PaneDiagram:         "diagram",
	PaneExplorerDiagram: "explorer-diagram",
}

func (p Pane) String() string {
	if p < 0 || int(p) >= len(paneNames) {
		return fmt.Sprintf("Pane(%d)", int(p))
	}
	return paneNames[p]
}

// HasDiagram reports whether the diagram surface is visible in the pane.
func (p Pane) HasDiagram() bool {
	return p != PaneCode
}

// ParsePane returns the pane with the given name, as printed by String.
func ParsePane(s string) (Pane, error) {
	for i, n := range paneNames {
		if n == s {
			return Pane(i), nil
		}
	}
	return 0, fmt.Errorf("unknown pane %q", s)
}

func (p Pane) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Pane) UnmarshalText(text []byte) error {
	v, err := ParsePane(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Key is a key press delivered to the editor.
type Key struct {
	Key  string
	Ctrl bool
	Meta bool
}

// IsFind reports whether k is the find chord: f with ctrl or meta.
func (k Key) IsFind() bool {
	return (k.Ctrl || k.Meta) && strings.EqualFold(k.Key, "f")
}

// AttachState is the lifecycle of the diagram surface.
type AttachState int

const (
	Unattached AttachState = iota
	Attaching
	Attached
)

func (s AttachState) String() string {
	switch s {
	case Unattached:
		return "unattached"
	case Attaching:
		return "attaching"
	case Attached:
		return "attached"
	}
	return fmt.Sprintf("AttachState(%d)", int(s))
}

// Surface is the diagram renderer.
type Surface interface {
	Resize()
}

// State is a snapshot of the coordinator.
type State struct {
	Pane         Pane
	Focused      bool
	ScrollLocked bool
	Attach       AttachState
}

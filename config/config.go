package config

import "github.com/graph-gophers/graphql-editor/view"

// Config holds the editor options that are not part of the graph itself.
type Config struct {
	// ReadOnly disables every mutation on the graph controller.
	ReadOnly bool
	// InitialPane is the pane shown before the user picks one.
	InitialPane view.Pane
	// ReloadDebounceMillis delays reparsing after a burst of file writes.
	ReloadDebounceMillis int
}

func Default() *Config {
	return &Config{
		ReadOnly:             false,
		InitialPane:          view.PaneCodeDiagram,
		ReloadDebounceMillis: 100,
	}
}

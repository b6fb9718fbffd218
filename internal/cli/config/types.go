// Package config loads the settings of the graphql-editor command line.
package config

import (
	"time"

	editorcfg "github.com/graph-gophers/graphql-editor/config"
	"github.com/graph-gophers/graphql-editor/view"
)

const (
	DefaultConfigFile     = "graphql-editor.yaml"
	DefaultTOMLConfigFile = "graphql-editor.toml"
	DefaultSchemaFile     = "schema.graphql"
	DefaultLogLevel       = "info"
	EnvPrefix             = "GQLEDITOR_"
)

// Config is the merged result of defaults, the config file, environment
// variables and flags.
type Config struct {
	Schema    string   `koanf:"schema"`
	Libraries []string `koanf:"libraries"`
	ReadOnly  bool     `koanf:"read_only"`
	Pane      string   `koanf:"pane"`
	Debounce  int      `koanf:"debounce_ms"`
	LogLevel  string   `koanf:"log_level"`
	Trace     bool     `koanf:"trace"`
	NoColor   bool     `koanf:"no_color"`
	Jobs      int      `koanf:"jobs"`
}

// Editor converts the command line settings into editor options.
func (c *Config) Editor() (*editorcfg.Config, error) {
	cfg := editorcfg.Default()
	cfg.ReadOnly = c.ReadOnly
	if c.Pane != "" {
		p, err := view.ParsePane(c.Pane)
		if err != nil {
			return nil, err
		}
		cfg.InitialPane = p
	}
	if c.Debounce > 0 {
		cfg.ReloadDebounceMillis = c.Debounce
	}
	return cfg, nil
}

// DebounceInterval is the delay between the last file event and a reload.
func (c *Config) DebounceInterval() time.Duration {
	if c.Debounce <= 0 {
		return time.Duration(editorcfg.Default().ReloadDebounceMillis) * time.Millisecond
	}
	return time.Duration(c.Debounce) * time.Millisecond
}

package cli

import (
	"fmt"
	"os"
	"sync"

	editor "github.com/graph-gophers/graphql-editor"
	"github.com/graph-gophers/graphql-editor/errors"
	"github.com/graph-gophers/graphql-editor/internal/cli/config"
	"github.com/spf13/cobra"
)

// sources holds the text of the configured schema and library files.
type sources struct {
	schemaPath string
	schema     string

	mu   sync.Mutex
	libs *libraries
}

func readSources(cfg *config.Config) (*sources, error) {
	libs, err := readLibraries(cfg.Libraries)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(cfg.Schema)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read schema %s: %w", cfg.Schema, err)
	}
	return &sources{schemaPath: cfg.Schema, schema: string(data), libs: libs}, nil
}

// locateErrors names files and file-relative lines in parse errors.
func (s *sources) locateErrors() editor.Middleware {
	return editor.ParseErrorsMiddleware(func(perr *errors.ParseError) *errors.ParseError {
		return s.libraries().locate(s.schemaPath, perr)
	})
}

func (s *sources) libraries() *libraries {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.libs
}

// setLibraries replaces the library files read by the error middleware,
// which runs on the goroutine that loads the schema.
func (s *sources) setLibraries(l *libraries) {
	s.mu.Lock()
	s.libs = l
	s.mu.Unlock()
}

// newController returns a controller loaded with the configured files.
func newController(cmd *cobra.Command) (*editor.Controller, *sources, error) {
	src, err := readSources(config.GetConfig(cmd.Context()))
	if err != nil {
		return nil, nil, err
	}
	opts := append(controllerOpts(cmd), editor.UseMiddleware(src.locateErrors()))
	c := editor.NewController(opts...)
	if err := c.LoadGraphQLAndLibraries(src.schema, src.libs.text); err != nil {
		return nil, nil, err
	}
	return c, src, nil
}

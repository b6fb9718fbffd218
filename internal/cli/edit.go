package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	editor "github.com/graph-gophers/graphql-editor"
	"github.com/graph-gophers/graphql-editor/internal/cli/config"
	"github.com/graph-gophers/graphql-editor/internal/tui"
	"github.com/graph-gophers/graphql-editor/internal/watch"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

func newEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the schema in the terminal editor",
		Long: `Open the interactive editor. Keys:

  1-4      switch pane (code+diagram, code, diagram, explorer+diagram)
  tab      focus the diagram, then ctrl+f to search
  j/k      move, space selects, enter centers the node
  e        extend the node under the cursor, or pick one from the menu
  x        delete the node under the cursor
  ctrl+r   toggle read-only
  ctrl+s   save the schema file
  q        quit

Changes made to the files on disk are reloaded while the editor is open.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEdit(cmd)
		},
	}
}

func runEdit(cmd *cobra.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("edit needs an interactive terminal; use fmt, extend or watch instead")
	}

	ctx := cmd.Context()
	cfg := config.GetConfig(ctx)
	logger := config.GetLogger(ctx)

	src, err := readSources(cfg)
	if err != nil {
		return err
	}
	editorCfg, err := cfg.Editor()
	if err != nil {
		return err
	}

	session := editor.NewSession(
		editor.WithConfig(editorCfg),
		editor.WithSchema(src.schema, src.libs.text),
		editor.WithControllerOpts(append(controllerOpts(cmd), editor.UseMiddleware(src.locateErrors()))...),
		editor.WithControllerAccess(func(c *editor.Controller) {
			logger.Debug("editor attached", "schema", src.schemaPath, "read_only", c.ReadOnly())
		}),
	)

	var save func(string) error
	if !editorCfg.ReadOnly {
		save = func(schema string) error {
			return os.WriteFile(src.schemaPath, []byte(schema), 0o644)
		}
	}
	files := append([]string{cfg.Schema}, cfg.Libraries...)
	w, err := watch.New(files, watch.Debounce(cfg.DebounceInterval()), watch.Logger(logger))
	if err != nil {
		return err
	}

	// A failing watcher cancels gctx, which stops the program.
	g, gctx := errgroup.WithContext(ctx)
	watchCtx, stopWatch := context.WithCancel(gctx)
	model := tui.New(session, tui.Options{Title: filepath.Base(src.schemaPath), Save: save})
	p, run := tui.Run(model, tea.WithAltScreen(), tea.WithContext(gctx))
	g.Go(func() error {
		defer stopWatch()
		if err := run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("editor: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		err := w.Run(watchCtx, func([]string) {
			next, err := readSources(cfg)
			if err != nil {
				logger.Error("failed to read sources", "error", err)
				return
			}
			src.setLibraries(next.libs)
			p.Send(tui.ReloadMsg{Schema: next.schema, Libraries: next.libs.text})
		})
		if watchCtx.Err() != nil {
			return nil
		}
		return err
	})
	return g.Wait()
}

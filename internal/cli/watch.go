package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	editor "github.com/graph-gophers/graphql-editor"
	"github.com/graph-gophers/graphql-editor/internal/cli/config"
	"github.com/graph-gophers/graphql-editor/internal/watch"
	"github.com/spf13/cobra"
)

func newWatchCommand() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Check the schema whenever it or a library changes",
		Long: `Watch the schema and library files and report whether the schema still
parses and validates after each change. Element identities are kept across
reloads, so the log shows which definitions were added or removed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, cmd, write)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the schema file in canonical form after each valid change")
	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, write bool) error {
	cfg := config.GetConfig(ctx)
	logger := config.GetLogger(ctx)

	src, err := readSources(cfg)
	if err != nil {
		return err
	}
	opts := append(controllerOpts(cmd), editor.UseMiddleware(src.locateErrors()))
	c := editor.NewController(opts...)

	known := make(map[string]string)
	c.OnGraphChanged(func(schema, _ string) {
		current := make(map[string]string)
		for _, n := range c.Nodes() {
			current[n.ID] = n.Name
			if _, ok := known[n.ID]; !ok && len(known) > 0 {
				logger.Info("added", "name", n.Name, "kind", n.Kind().String())
			}
		}
		for id, name := range known {
			if _, ok := current[id]; !ok {
				logger.Info("removed", "name", name)
			}
		}
		known = current
		printOK(cmd.OutOrStdout(), src.schemaPath, summaryLine(c.Summary()))
		if write && schema != src.schema {
			if err := os.WriteFile(src.schemaPath, []byte(schema), 0o644); err != nil {
				logger.Error("failed to write schema", "file", src.schemaPath, "error", err)
				return
			}
			src.schema = schema
		}
	})

	reload := func() {
		if err := c.LoadGraphQLAndLibraries(src.schema, src.libraries().text); err != nil {
			printFailure(cmd.ErrOrStderr(), src.schemaPath, err)
		}
	}
	reload()

	files := append([]string{cfg.Schema}, cfg.Libraries...)
	w, err := watch.New(files, watch.Debounce(cfg.DebounceInterval()), watch.Logger(logger))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "watching %d files\n", len(files))
	return w.Run(ctx, func(changed []string) {
		logger.Debug("files changed", "files", changed)
		next, err := readSources(cfg)
		if err != nil {
			logger.Error("failed to read sources", "error", err)
			return
		}
		src.schema = next.schema
		src.setLibraries(next.libs)
		reload()
	})
}

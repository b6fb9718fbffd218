package cli

import (
	"fmt"
	"os"

	"github.com/graph-gophers/graphql-editor/internal/cli/config"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newFmtCommand() *cobra.Command {
	var write, check bool

	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Print schema files in canonical form",
		Long: `Format schema files. Without arguments the configured schema file is
formatted. Library files are only used as extension targets.`,
		Example: `  # Print the canonical form of schema.graphql
  graphql-editor fmt

  # Rewrite files in place
  graphql-editor fmt -w a.graphql b.graphql

  # Fail when a file is not formatted
  graphql-editor fmt --check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, write, check)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")
	cmd.Flags().BoolVar(&check, "check", false, "only report files that are not formatted")
	return cmd
}

// processFiles runs fn over files with bounded concurrency and returns the
// results in input order.
func processFiles(cmd *cobra.Command, files []string, fn func(path string) fileResult) []fileResult {
	cfg := config.GetConfig(cmd.Context())
	results := make([]fileResult, len(files))
	var g errgroup.Group
	g.SetLimit(cfg.Jobs)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			results[i] = fn(f)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func targetFiles(cmd *cobra.Command, args []string) []string {
	if len(args) > 0 {
		return args
	}
	return []string{config.GetConfig(cmd.Context()).Schema}
}

func runFmt(cmd *cobra.Command, args []string, write, check bool) error {
	ctx := cmd.Context()
	cfg := config.GetConfig(ctx)
	logger := config.GetLogger(ctx)

	libs, err := readLibraries(cfg.Libraries)
	if err != nil {
		return err
	}

	files := targetFiles(cmd, args)
	results := processFiles(cmd, files, func(path string) fileResult {
		return formatFile(path, libs)
	})

	var failed, unformatted int
	for _, res := range results {
		if res.err != nil {
			failed++
			printFailure(cmd.ErrOrStderr(), res.path, res.err)
			continue
		}
		changed := res.output != res.input
		switch {
		case check:
			if changed {
				unformatted++
				fmt.Fprintln(cmd.OutOrStdout(), res.path)
			}
		case write:
			if !changed {
				continue
			}
			if err := os.WriteFile(res.path, []byte(res.output), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", res.path, err)
			}
			logger.Info("formatted", "file", res.path)
		default:
			fmt.Fprint(cmd.OutOrStdout(), res.output)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(files))
	}
	if unformatted > 0 {
		return fmt.Errorf("%d of %d files are not formatted", unformatted, len(files))
	}
	return nil
}

package cli

import (
	"fmt"
	"strings"

	editor "github.com/graph-gophers/graphql-editor"
	"github.com/graph-gophers/graphql-editor/codec"
	"github.com/graph-gophers/graphql-editor/internal/cli/config"
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "Parse and validate schema files",
		Long: `Check that schema files parse and validate against the library files:
names are unique, reserved names are not used and every extension has a
base of the same kind.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args)
		},
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			printFailure(cmd.ErrOrStderr(), res.path, res.err)
			continue
		}
		tree, _, err := codec.Parse(res.output, libs.text)
		if err != nil {
			return fmt.Errorf("canonical form of %s does not parse: %w", res.path, err)
		}
		s := editor.Summarize(tree)
		logger.Debug("checked", "file", res.path, "definitions", s.Definitions, "extensions", s.Extensions)
		printOK(cmd.OutOrStdout(), res.path, summaryLine(s))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

func summaryLine(s editor.TreeSummary) string {
	parts := []string{fmt.Sprintf("%d definitions", s.Definitions)}
	if s.Extensions > 0 {
		parts = append(parts, fmt.Sprintf("%d extensions", s.Extensions))
	}
	return strings.Join(parts, ", ")
}

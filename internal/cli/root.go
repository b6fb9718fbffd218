// Package cli provides the command-line interface for graphql-editor.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	editor "github.com/graph-gophers/graphql-editor"
	"github.com/graph-gophers/graphql-editor/internal/cli/config"
	"github.com/graph-gophers/graphql-editor/log"
	"github.com/graph-gophers/graphql-editor/trace/opentracing"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

// tracerKey is used to store the tracing closer in context.
type tracerKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "graphql-editor",
		Short: "Edit, format and check GraphQL schemas",
		Long: `graphql-editor keeps GraphQL schema files in canonical form.

It formats and checks schema text against library files, adds type
extensions, lists the types of a schema, and opens an interactive
terminal editor that follows changes on disk.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, used, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			if cfg.NoColor {
				color.NoColor = true
				lipgloss.SetColorProfile(termenv.Ascii)
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg)
			if used != "" {
				logger.Debug("using config file", "path", used)
			}

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			if cfg.Trace {
				closer, err := setupTracing(logger)
				if err != nil {
					return fmt.Errorf("failed to set up tracing: %w", err)
				}
				ctx = context.WithValue(ctx, tracerKey{}, closer)
			}
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if closer, ok := cmd.Context().Value(tracerKey{}).(io.Closer); ok {
				return closer.Close()
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./graphql-editor.yaml)")
	flags.StringP("schema", "s", "", "schema file")
	flags.StringSliceP("libraries", "l", nil, "library files that may be extended but are not edited")
	flags.Bool("read-only", false, "disable mutations in the editor")
	flags.String("pane", "", "initial pane (code|diagram|code-diagram|explorer-diagram)")
	flags.Int("debounce", 0, "milliseconds to wait after a file change before reloading")
	flags.String("log-level", "", "log level (debug|info|warn|error)")
	flags.Bool("trace", false, "report spans to Jaeger, configured from JAEGER_* environment variables")
	flags.Bool("no-color", false, "disable colored output")
	flags.IntP("jobs", "j", 0, "files processed concurrently")

	_ = rootCmd.RegisterFlagCompletionFunc("pane", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"code", "diagram", "code-diagram", "explorer-diagram"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newExtendCommand())
	rootCmd.AddCommand(newLsCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newEditCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errColor.Sprint("Error:"), err)
		return err
	}
	return nil
}

// controllerOpts builds the controller options shared by the commands.
func controllerOpts(cmd *cobra.Command) []editor.ControllerOpt {
	ctx := cmd.Context()
	cfg := config.GetConfig(ctx)
	opts := []editor.ControllerOpt{
		editor.WithContext(ctx),
		editor.Logger(&log.DefaultLogger{Logger: config.GetLogger(ctx)}),
	}
	if cfg.ReadOnly {
		opts = append(opts, editor.ReadOnly())
	}
	if cfg.Trace {
		opts = append(opts, editor.Tracer(opentracing.Tracer{}))
	}
	return opts
}

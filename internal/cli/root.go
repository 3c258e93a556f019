// Package cli implements the ormdoc command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mickamy/ormdoc/internal/config"
	"github.com/mickamy/ormdoc/internal/logging"
)

type globalFlags struct {
	verbose bool
	config  string
}

// NewRootCmd builds the ormdoc command tree.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "ormdoc",
		Short: "Document Go entity structs as Markdown ER diagrams",
		Long: `ormdoc reads Go structs declared with db and rel tags, merges them with
the @namespace, @erd, @describe, @hidden and @minitems annotations in their
doc comments, and writes one Markdown document with a Mermaid ER diagram
per namespace.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  10 - Invalid configuration, dialect or DSN
  11 - No source files or no entities found`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	root.PersistentFlags().StringVarP(&g.config, "config", "c", "", "Path to the config file (default ./"+config.FileName+")")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	root.AddCommand(newGenerateCmd(g), newSchemaCmd(g), newVersionCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func newLogger(cmd *cobra.Command, g *globalFlags) logging.Logger {
	return logging.NewConsoleLogger(cmd.ErrOrStderr(), g.verbose)
}

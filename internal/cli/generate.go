package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mickamy/ormdoc/internal/config"
	"github.com/mickamy/ormdoc/internal/render"
)

func newGenerateCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "generate [paths...]",
		Short: "Write the Markdown ER documentation",
		Long: `Generate reads the entity structs in the given files, directories or glob
patterns (default: the config's sources, else the current directory) and
writes one Markdown document.`,
		Example: `  ormdoc generate ./model
  ormdoc generate ./model --out docs/ERD.md --title Blog
  ormdoc generate --dsn "postgres://app@localhost/blog"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, g, f, args)
		},
	}
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Output file (default "+config.DefaultOutput+")")
	cmd.Flags().StringVar(&f.title, "title", "", "Document title (default: DSN database name, else "+config.DefaultTitle+")")
	f.registerSource(cmd)
	return cmd
}

func runGenerate(cmd *cobra.Command, g *globalFlags, f *runFlags, args []string) error {
	r, err := newRun(cmd, g, f, args)
	if err != nil {
		return err
	}

	namespaces, err := r.namespaces()
	if err != nil {
		return err
	}

	out := r.cfg.Output
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	if err := render.Markdown(file, r.title(), namespaces); err != nil {
		return fmt.Errorf("render %s: %w", out, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	r.logger.Info("Wrote %s (%d namespaces)", out, len(namespaces))
	return nil
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/mickamy/ormdoc/internal/schema"
)

func newSchemaCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "schema [paths...]",
		Short: "Print the resolved tables as a YAML snapshot",
		Long: `Schema prints the tables, columns and relations extracted from the entity
structs. The output can be edited and passed back with --schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRun(cmd, g, f, args)
			if err != nil {
				return err
			}
			set, err := r.load()
			if err != nil {
				return err
			}
			tables, err := r.tables(set)
			if err != nil {
				return err
			}
			return schema.WriteSnapshot(cmd.OutOrStdout(), tables)
		},
	}
	f.registerSource(cmd)
	return cmd
}

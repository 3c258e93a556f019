package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mickamy/ormdoc/internal/config"
	"github.com/mickamy/ormdoc/internal/dialect"
	"github.com/mickamy/ormdoc/internal/docs"
	"github.com/mickamy/ormdoc/internal/logging"
	"github.com/mickamy/ormdoc/internal/metadata"
	"github.com/mickamy/ormdoc/internal/schema"
	"github.com/mickamy/ormdoc/internal/source"
	"github.com/mickamy/ormdoc/internal/spec"
)

// runFlags are the per-command settings that override the config file.
type runFlags struct {
	title   string
	out     string
	dialect string
	dsn     string
	schema  string
}

func (f *runFlags) registerSource(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dialect, "dialect", "", "Column type dialect: postgres or mysql (default postgres)")
	cmd.Flags().StringVar(&f.dsn, "dsn", "", "Database DSN used to detect the dialect and title; never connected to")
	cmd.Flags().StringVar(&f.schema, "schema", "", "YAML table snapshot used instead of the struct tags")
}

// run holds everything resolved for one invocation.
type run struct {
	cfg      *config.Config
	logger   logging.Logger
	dialect  dialect.Dialect
	database string
}

// newRun loads .env and the config file, then applies environment
// variables, flags and positional source paths in that order.
func newRun(cmd *cobra.Command, g *globalFlags, f *runFlags, args []string) (*run, error) {
	logger := newLogger(cmd, g)
	_ = godotenv.Load()

	cfg, err := loadConfig(g.config)
	if err != nil {
		return nil, err
	}
	if g.config == "" && cfg == nil {
		logger.Verbose("No %s found, using defaults", config.FileName)
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("title") {
		cfg.Title = f.title
	}
	if flags.Changed("out") {
		cfg.Output = f.out
	}
	if flags.Changed("dialect") {
		cfg.Dialect = f.dialect
	}
	if flags.Changed("dsn") {
		cfg.DSN = f.dsn
	}
	if flags.Changed("schema") {
		cfg.Schema = f.schema
	}
	if len(args) > 0 {
		cfg.Sources = args
	}

	r := &run{cfg: cfg, logger: logger}
	if err := r.resolveDialect(); err != nil {
		return nil, err
	}
	return r, nil
}

// loadConfig reads the config file. A missing default file yields a nil
// config; a missing explicit file is an error.
func loadConfig(path string) (*config.Config, error) {
	explicit := path != ""
	if !explicit {
		path = config.FileName
	}

	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			if explicit {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

func (r *run) resolveDialect() error {
	if r.cfg.DSN != "" {
		d, database, err := dialect.FromDSN(r.cfg.DSN)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		r.dialect, r.database = d, database
	}
	if r.cfg.Dialect != "" {
		d, err := dialect.Parse(r.cfg.Dialect)
		if err != nil {
			return err
		}
		r.dialect = d
	}
	if r.dialect == nil {
		r.dialect = dialect.PostgreSQL
	}
	r.logger.Verbose("Using %s dialect", r.dialect.Name())
	return nil
}

// title returns the configured title, else the DSN database name, else
// the default.
func (r *run) title() string {
	switch {
	case r.cfg.Title != "":
		return r.cfg.Title
	case r.database != "":
		return r.database
	default:
		return config.DefaultTitle
	}
}

func (r *run) load() (*source.Set, error) {
	set, err := source.Load(r.cfg.Sources...)
	if err != nil {
		return nil, err
	}
	r.logger.Verbose("Loaded %d source files", len(set.Files))
	return set, nil
}

// tables reads the structural schema from the snapshot when one is
// configured, from the struct tags otherwise.
func (r *run) tables(set *source.Set) ([]schema.Table, error) {
	if r.cfg.Schema == "" {
		return metadata.Analyze(set, r.dialect)
	}

	f, err := os.Open(r.cfg.Schema)
	if err != nil {
		return nil, fmt.Errorf("open schema snapshot: %w", err)
	}
	defer f.Close()

	tables, err := schema.ReadSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("%w in %s", metadata.ErrNoEntities, r.cfg.Schema)
	}
	r.logger.Verbose("Read %d tables from %s", len(tables), r.cfg.Schema)
	return tables, nil
}

// namespaces merges tables and class docs and reports what could not be
// paired.
func (r *run) namespaces() ([]schema.Namespace, error) {
	set, err := r.load()
	if err != nil {
		return nil, err
	}
	tables, err := r.tables(set)
	if err != nil {
		return nil, err
	}
	classDocs := docs.Extract(set)

	c := spec.NewContainer(tables, classDocs)
	unmatched := c.Unmatched()
	for _, name := range unmatched.Tables {
		r.logger.Warn("Table %q has no documented struct and is left out", name)
	}
	for _, name := range unmatched.Docs {
		r.logger.Verbose("Struct documented as %q is not a table, skipped", name)
	}

	namespaces := c.Namespaces()
	if len(namespaces) == 0 {
		r.logger.Warn("No namespaces found; tag structs with @namespace or leave them untagged")
	}
	for _, ns := range namespaces {
		r.logger.Verbose("Namespace %s: %d tables, %d classes", ns.NamespaceName, len(ns.Tables), len(ns.ClassDocs))
	}
	return namespaces, nil
}

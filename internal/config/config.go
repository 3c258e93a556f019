// Package config loads the ormdoc.yaml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const (
	// FileName is the config file looked up in a directory.
	FileName = "ormdoc.yaml"

	DefaultTitle  = "ERD"
	DefaultOutput = "docs/ERD.md"

	EnvDSN     = "ORMDOC_DSN"
	EnvDialect = "ORMDOC_DIALECT"
)

// Config describes one documentation run.
type Config struct {
	// Title heads the generated document. Empty means the database name
	// from DSN, then DefaultTitle.
	Title   string   `yaml:"title,omitempty"`
	Output  string   `yaml:"output,omitempty"`
	Sources []string `yaml:"sources,omitempty"`
	Dialect string   `yaml:"dialect,omitempty"`
	DSN     string   `yaml:"dsn,omitempty"`
	// Schema is an optional YAML snapshot of resolved tables used instead
	// of extracting them from Sources.
	Schema string `yaml:"schema,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Output:  DefaultOutput,
		Sources: []string{"."},
	}
}

// Load reads the config at path. A directory path is joined with FileName.
// Relative output, source and schema paths are resolved against the
// directory holding the file.
func Load(path string) (*Config, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	cfg.Sources = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.Sources) == 0 {
		cfg.Sources = []string{"."}
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}

	dir := filepath.Dir(path)
	cfg.Output = resolve(dir, cfg.Output)
	cfg.Schema = resolve(dir, cfg.Schema)
	for i, s := range cfg.Sources {
		cfg.Sources[i] = resolve(dir, s)
	}
	return cfg, nil
}

// ApplyEnv overrides the DSN and dialect with the ORMDOC_DSN and
// ORMDOC_DIALECT environment variables when they are set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvDSN); v != "" {
		c.DSN = v
	}
	if v := os.Getenv(EnvDialect); v != "" {
		c.Dialect = v
	}
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

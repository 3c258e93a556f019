package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `title: Shop
output: out/SHOP.md
sources:
  - models
  - /abs/entities/*.go
dialect: postgres
dsn: postgres://app@localhost/shop
schema: schema.yaml
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Shop", cfg.Title)
	assert.Equal(t, filepath.Join(dir, "out/SHOP.md"), cfg.Output)
	assert.Equal(t, []string{filepath.Join(dir, "models"), "/abs/entities/*.go"}, cfg.Sources)
	assert.Equal(t, "postgres", cfg.Dialect)
	assert.Equal(t, "postgres://app@localhost/shop", cfg.DSN)
	assert.Equal(t, filepath.Join(dir, "schema.yaml"), cfg.Schema)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dialect: mysql\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Title)
	assert.Equal(t, filepath.Join(dir, DefaultOutput), cfg.Output)
	assert.Equal(t, []string{dir}, cfg.Sources)
	assert.Equal(t, "mysql", cfg.Dialect)
	assert.Equal(t, "", cfg.Schema)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{{invalid"), 0644))

	cfg, err := Load(dir)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrConfigNotFound))
	assert.Nil(t, cfg)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "", cfg.Title)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, []string{"."}, cfg.Sources)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvDSN, "root@tcp(localhost:3306)/shop")
	t.Setenv(EnvDialect, "")

	cfg := &Config{DSN: "from-file", Dialect: "postgres"}
	cfg.ApplyEnv()

	assert.Equal(t, "root@tcp(localhost:3306)/shop", cfg.DSN)
	assert.Equal(t, "postgres", cfg.Dialect, "empty env var keeps file value")
}

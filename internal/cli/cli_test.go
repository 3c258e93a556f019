package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mickamy/ormdoc/internal/cli"
	"github.com/mickamy/ormdoc/internal/config"
	"github.com/mickamy/ormdoc/internal/dialect"
	"github.com/mickamy/ormdoc/internal/schema"
)

func examplePath(elem ...string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(append([]string{filepath.Dir(file), "..", "..", "example"}, elem...)...)
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvDSN, "")
	t.Setenv(config.EnvDialect, "")

	cmd := cli.NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func generate(t *testing.T, args ...string) (string, string) {
	t.Helper()
	out := filepath.Join(t.TempDir(), "nested", "ERD.md")
	_, stderr, err := execute(t, append([]string{"generate", "--out", out}, args...)...)
	require.NoError(t, err, stderr)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	return string(data), stderr
}

func TestGenerate_Example(t *testing.T) {
	doc, stderr := generate(t, "--config", examplePath("ormdoc.yaml"))
	assert.Contains(t, stderr, "Wrote ")

	assert.True(t, strings.HasPrefix(doc, "# Blog\n"), doc)
	assert.Contains(t, doc, "- [Blog](#blog)\n- [Accounts](#accounts)\n")

	blog, accounts, ok := strings.Cut(doc, "## Accounts\n")
	require.True(t, ok, doc)

	assert.Contains(t, blog, "    posts }|--|| users : \"User\"\n")
	assert.Contains(t, blog, "    posts ||--|{ post_tags : \"Tags\"\n")
	assert.Contains(t, blog, "    tags ||--|{ post_tags : \"Posts\"\n")
	assert.NotContains(t, blog, "profiles", "profiles are pruned from Blog")

	pk := dialect.PostgreSQL.NormalizeType("int")
	assert.Contains(t, blog, "    post_tags {\n        "+pk+" post_id PK, FK\n        "+pk+" tag_id PK, FK\n    }\n")

	assert.Contains(t, blog, "### users\n\n"+
		"User is a registered author. Users sign in with their email address.\n\n"+
		"**Properties**\n\n"+
		"- `ID`: ID is the primary key.\n"+
		"- `Name`: display name\n"+
		"- `Email`\n"+
		"- `CreatedAt`\n")

	assert.Contains(t, accounts, "    profiles ||--|| users : \"User\"\n")
	assert.Contains(t, accounts, "- `Bio`: Bio is shown on the author page.\n")
	assert.NotContains(t, accounts, "posts")

	assert.NotContains(t, doc, "settings", "hidden structs are not documented")
	assert.NotContains(t, doc, "- `Posts`", "relation properties are not listed")
	assert.NotContains(t, doc, "- `User`", "relation properties are not listed")
}

func TestGenerate_TitleFromDSN(t *testing.T) {
	doc, _ := generate(t, examplePath("model"), "--dsn", "postgres://app@localhost:5432/blogdb")
	assert.True(t, strings.HasPrefix(doc, "# blogdb\n"), doc)

	doc, _ = generate(t, examplePath("model"), "--dsn", "postgres://app@localhost:5432/blogdb", "--title", "Docs")
	assert.True(t, strings.HasPrefix(doc, "# Docs\n"), doc)
}

func TestGenerate_DefaultTitleAndNamespaces(t *testing.T) {
	doc, _ := generate(t, examplePath("model", "setting.go"))
	assert.Equal(t, "# ERD\n\n> Generated by [`ormdoc`](https://github.com/mickamy/ormdoc)\n\n## Table of Contents\n\n", doc)
}

func TestGenerate_MySQLDialect(t *testing.T) {
	doc, _ := generate(t, examplePath("model"), "--dialect", "mysql")
	assert.Contains(t, doc, "        "+dialect.MySQL.NormalizeType("string")+" email\n")
}

func TestGenerate_SnapshotWarnsUnmatched(t *testing.T) {
	snapshot := filepath.Join(t.TempDir(), "schema.yaml")
	f, err := os.Create(snapshot)
	require.NoError(t, err)
	require.NoError(t, schema.WriteSnapshot(f, []schema.Table{
		{Name: "users", Columns: []schema.Column{{Type: "int8", Name: "id", IsPrimary: true}}},
		{Name: "audit_logs", Columns: []schema.Column{{Type: "int8", Name: "id", IsPrimary: true}}},
	}))
	require.NoError(t, f.Close())

	doc, stderr := generate(t, examplePath("model"), "--schema", snapshot, "--verbose")

	assert.Contains(t, stderr, `[WARN] Table "audit_logs" has no documented struct and is left out`)
	assert.Contains(t, stderr, `[VERBOSE] Struct documented as "posts" is not a table, skipped`)
	assert.Contains(t, doc, "### users\n")
	assert.NotContains(t, doc, "### posts\n")
}

func TestSchema(t *testing.T) {
	stdout, _, err := execute(t, "schema", examplePath("model"))
	require.NoError(t, err)

	tables, err := schema.ReadSnapshot(strings.NewReader(stdout))
	require.NoError(t, err)

	var names []string
	for _, tbl := range tables {
		names = append(names, tbl.Name)
	}
	assert.Equal(t, []string{"posts", "profiles", "settings", "tags", "post_tags", "users"}, names)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "ormdoc "), stdout)
}

func TestExitCodes(t *testing.T) {
	noEntities := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(noEntities, "empty.go"), []byte("package empty\n\ntype Empty struct{}\n"), 0644))
	out := filepath.Join(t.TempDir(), "ERD.md")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "unknown flag", args: []string{"generate", "--nope"}, want: cli.ExitUsageError},
		{name: "version with args", args: []string{"version", "extra"}, want: cli.ExitUsageError},
		{name: "missing config", args: []string{"generate", "--config", "/nonexistent/ormdoc.yaml"}, want: cli.ExitConfigError},
		{name: "unknown dialect", args: []string{"generate", examplePath("model"), "--dialect", "oracle", "--out", out}, want: cli.ExitConfigError},
		{name: "no source files", args: []string{"generate", filepath.Join(t.TempDir(), "*.go"), "--out", out}, want: cli.ExitNoEntities},
		{name: "no entities", args: []string{"generate", noEntities, "--out", out}, want: cli.ExitNoEntities},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.want, cli.ExitCodeForError(err), err.Error())
		})
	}
}

func TestExitCodeForError(t *testing.T) {
	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeForError(nil))
	assert.Equal(t, cli.ExitGeneralError, cli.ExitCodeForError(errors.New("boom")))
	assert.Equal(t, cli.ExitConfigError, cli.ExitCodeForError(config.ErrConfigNotFound))
}

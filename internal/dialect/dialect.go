// Package dialect maps Go field types to the column types of a database
// engine.
package dialect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mickamy/ormdoc/internal/naming"
)

// ErrUnknownDialect is returned for a dialect name or DSN that matches no
// supported engine.
var ErrUnknownDialect = errors.New("unknown dialect")

// Dialect abstracts type naming differences between database engines.
type Dialect interface {
	// Name returns the canonical dialect name, e.g. "postgres".
	Name() string

	// NormalizeType returns the column type documented for a Go type
	// written as in source, e.g. "*string", "time.Time", "sql.NullInt64".
	// Nullability wrappers are removed; unknown types fall back to their
	// snake_case name.
	NormalizeType(goType string) string
}

// Parse returns the Dialect registered under name.
func Parse(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "mysql", "mariadb":
		return MySQL, nil
	case "postgres", "postgresql", "pg":
		return PostgreSQL, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, name)
	}
}

// nullWrappers maps database/sql null wrappers to their value type.
var nullWrappers = map[string]string{
	"sql.NullString":  "string",
	"sql.NullInt64":   "int64",
	"sql.NullInt32":   "int32",
	"sql.NullInt16":   "int16",
	"sql.NullByte":    "uint8",
	"sql.NullFloat64": "float64",
	"sql.NullBool":    "bool",
	"sql.NullTime":    "time.Time",
}

// baseType strips pointers and null wrappers from a Go type.
func baseType(goType string) string {
	t := strings.TrimLeft(goType, "*")
	if v, ok := nullWrappers[t]; ok {
		return v
	}
	if strings.HasPrefix(t, "sql.Null[") && strings.HasSuffix(t, "]") {
		return baseType(t[len("sql.Null[") : len(t)-1])
	}
	return t
}

// fallbackType names a type no table knows about.
func fallbackType(goType string) string {
	t := goType
	if i := strings.LastIndex(t, "."); i >= 0 {
		t = t[i+1:]
	}
	t = strings.TrimPrefix(t, "[]")
	if t == "" {
		return goType
	}
	return naming.CamelToSnake(t)
}

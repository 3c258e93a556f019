package cli

import (
	"errors"

	"github.com/mickamy/ormdoc/internal/config"
	"github.com/mickamy/ormdoc/internal/dialect"
	"github.com/mickamy/ormdoc/internal/metadata"
	"github.com/mickamy/ormdoc/internal/source"
)

// Exit codes returned by the ormdoc command.
const (
	ExitSuccess      = 0  // Documentation written
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (invalid arguments or flags)
	ExitConfigError  = 10 // Invalid configuration, dialect or DSN
	ExitNoEntities   = 11 // No source files or no entities found
)

var (
	// ErrUsage marks invalid command line arguments or flags.
	ErrUsage = errors.New("invalid usage")
	// ErrInvalidConfig marks an unreadable config file or setting.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ExitCodeForError maps an error returned by Execute to a process exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig),
		errors.Is(err, config.ErrConfigNotFound),
		errors.Is(err, dialect.ErrUnknownDialect):
		return ExitConfigError
	case errors.Is(err, source.ErrNoSourceFiles),
		errors.Is(err, metadata.ErrNoEntities):
		return ExitNoEntities
	}
	return ExitGeneralError
}

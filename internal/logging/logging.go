// Package logging provides the loggers used by the ormdoc command.
package logging

// Logger receives progress and diagnostic messages.
// Implementations must be safe for concurrent use.
type Logger interface {
	// Verbose logs detailed diagnostics, shown only in verbose mode.
	Verbose(format string, args ...any)
	// Info logs normal progress.
	Info(format string, args ...any)
	// Warn logs recoverable problems, e.g. a table without documentation.
	Warn(format string, args ...any)
	// Error logs failures.
	Error(format string, args ...any)
}

var (
	_ Logger = (*ConsoleLogger)(nil)
	_ Logger = (*NullLogger)(nil)
)

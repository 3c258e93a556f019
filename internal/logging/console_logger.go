package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	verboseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// ConsoleLogger writes log messages to a writer, usually stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	w       io.Writer
	verbose bool
	color   bool
	mu      sync.Mutex
}

// NewConsoleLogger creates a ConsoleLogger writing to w.
// If verbose is false, Verbose() calls are no-ops. Level prefixes are
// colored when w is a terminal and NO_COLOR is unset.
func NewConsoleLogger(w io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		w:       w,
		verbose: verbose,
		color:   UseColor(w),
	}
}

// UseColor reports whether colored output should be written to w.
func UseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.write(verboseStyle, "[VERBOSE] ", format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...any) {
	l.write(lipgloss.Style{}, "", format, args)
}

// Warn logs problems that do not stop the run.
func (l *ConsoleLogger) Warn(format string, args ...any) {
	l.write(warnStyle, "[WARN] ", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...any) {
	l.write(errorStyle, "[ERROR] ", format, args)
}

func (l *ConsoleLogger) write(style lipgloss.Style, prefix, format string, args []any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if l.color && prefix != "" {
		prefix = style.Render(prefix[:len(prefix)-1]) + " "
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.w, prefix+msg+"\n")
}

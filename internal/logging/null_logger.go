package logging

// NullLogger discards all log messages.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...any) {}

func (l *NullLogger) Info(format string, args ...any) {}

func (l *NullLogger) Warn(format string, args ...any) {}

func (l *NullLogger) Error(format string, args ...any) {}

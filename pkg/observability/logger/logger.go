package logger

// Logger defines the interface for structured logging throughout the library.
// All log methods accept a message string followed by key-value pairs for structured fields.
type Logger interface {
	// Debug logs a debug-level message with optional key-value pairs
	Debug(msg string, args ...any)

	// Info logs an info-level message with optional key-value pairs
	Info(msg string, args ...any)

	// Warn logs a warning-level message with optional key-value pairs
	Warn(msg string, args ...any)

	// Error logs an error-level message with optional key-value pairs
	Error(msg string, args ...any)

	// With creates a child logger with additional key-value pairs that will be
	// included in all subsequent log entries
	With(args ...any) Logger
}

// NopLogger discards every log entry. Useful as a default in tests and
// for callers that do not care about library logging.
type NopLogger struct{}

// NewNop returns a Logger that discards everything.
func NewNop() *NopLogger { return &NopLogger{} }

func (n *NopLogger) Debug(string, ...any) {}
func (n *NopLogger) Info(string, ...any)  {}
func (n *NopLogger) Warn(string, ...any)  {}
func (n *NopLogger) Error(string, ...any) {}
func (n *NopLogger) With(...any) Logger   { return n }

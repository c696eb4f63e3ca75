package port

// Fields is structured log context.
type Fields map[string]interface{}

// LoggerPort abstracts the logging backend so the core never imports a
// concrete logging library. WithFields returns a derived logger carrying
// the extra context on every subsequent record.
type LoggerPort interface {
	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)
	WithFields(fields Fields) LoggerPort
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, fields Fields)            {}
func (noopLogger) Info(msg string, fields Fields)             {}
func (noopLogger) Warn(msg string, fields Fields)             {}
func (noopLogger) Error(msg string, err error, fields Fields) {}
func (l noopLogger) WithFields(fields Fields) LoggerPort      { return l }

// NewNoopLogger returns a logger that discards everything. Used as the
// fallback when no logger has been put into the context.
func NewNoopLogger() LoggerPort {
	return noopLogger{}
}

package logger

import (
	"fmt"

	"oglasnik-service/internal/core/port"
)

// MultiloggerAdapter fans every record out to all configured backends
// (stdout always, Fluent Bit when enabled).
type MultiloggerAdapter struct {
	loggers []port.LoggerPort
}

func NewMultiloggerAdapter(loggers ...port.LoggerPort) (*MultiloggerAdapter, error) {
	if len(loggers) == 0 {
		return nil, fmt.Errorf("at least one logger is required")
	}
	return &MultiloggerAdapter{loggers: loggers}, nil
}

func (m *MultiloggerAdapter) Debug(msg string, fields port.Fields) {
	for _, l := range m.loggers {
		l.Debug(msg, fields)
	}
}

func (m *MultiloggerAdapter) Info(msg string, fields port.Fields) {
	for _, l := range m.loggers {
		l.Info(msg, fields)
	}
}

func (m *MultiloggerAdapter) Warn(msg string, fields port.Fields) {
	for _, l := range m.loggers {
		l.Warn(msg, fields)
	}
}

func (m *MultiloggerAdapter) Error(msg string, err error, fields port.Fields) {
	for _, l := range m.loggers {
		l.Error(msg, err, fields)
	}
}

func (m *MultiloggerAdapter) WithFields(fields port.Fields) port.LoggerPort {
	derived := make([]port.LoggerPort, len(m.loggers))
	for i, l := range m.loggers {
		derived[i] = l.WithFields(fields)
	}
	return &MultiloggerAdapter{loggers: derived}
}

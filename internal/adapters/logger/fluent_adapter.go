package logger

import (
	"fmt"
	"log/slog"

	"oglasnik-service/internal/core/port"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// FluentLoggerAdapter ships log records to a Fluent Bit forwarder. The
// client's TagPrefix identifies the service; the record level becomes the
// tag suffix so downstream routing can split by severity.
type FluentLoggerAdapter struct {
	client *fluent.Fluent
	level  slog.Level
	base   port.Fields
}

func NewFluentLoggerAdapter(client *fluent.Fluent, level slog.Level) (*FluentLoggerAdapter, error) {
	if client == nil {
		return nil, fmt.Errorf("fluent client cannot be nil")
	}
	return &FluentLoggerAdapter{client: client, level: level, base: port.Fields{}}, nil
}

func (a *FluentLoggerAdapter) Debug(msg string, fields port.Fields) {
	a.post(slog.LevelDebug, "debug", msg, nil, fields)
}

func (a *FluentLoggerAdapter) Info(msg string, fields port.Fields) {
	a.post(slog.LevelInfo, "info", msg, nil, fields)
}

func (a *FluentLoggerAdapter) Warn(msg string, fields port.Fields) {
	a.post(slog.LevelWarn, "warn", msg, nil, fields)
}

func (a *FluentLoggerAdapter) Error(msg string, err error, fields port.Fields) {
	a.post(slog.LevelError, "error", msg, err, fields)
}

func (a *FluentLoggerAdapter) WithFields(fields port.Fields) port.LoggerPort {
	merged := make(port.Fields, len(a.base)+len(fields))
	for k, v := range a.base {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &FluentLoggerAdapter{client: a.client, level: a.level, base: merged}
}

func (a *FluentLoggerAdapter) post(level slog.Level, tag, msg string, err error, fields port.Fields) {
	if level < a.level {
		return
	}
	record := make(map[string]interface{}, len(a.base)+len(fields)+3)
	for k, v := range a.base {
		record[k] = v
	}
	for k, v := range fields {
		record[k] = v
	}
	record["level"] = tag
	record["message"] = msg
	if err != nil {
		record["error"] = err.Error()
	}
	// Shipping failures must never take the request path down; the
	// stdout logger remains the source of truth.
	_ = a.client.Post(tag, record)
}

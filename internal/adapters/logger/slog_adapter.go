package logger

import (
	"log/slog"
	"os"

	"oglasnik-service/internal/core/port"

	"github.com/lmittmann/tint"
)

type SlogConfig struct {
	Level    slog.Level
	IsJSON   bool
	UseColor bool
}

// SlogAdapter bridges the standard library slog onto the logger port.
// Text output goes through tint for readable local development; JSON is
// for anything that ships logs to a collector.
type SlogAdapter struct {
	logger *slog.Logger
}

func NewSlogAdapter(cfg SlogConfig) *SlogAdapter {
	var handler slog.Handler
	switch {
	case cfg.IsJSON:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level})
	case cfg.UseColor:
		handler = tint.NewHandler(os.Stdout, &tint.Options{Level: cfg.Level})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level})
	}
	return &SlogAdapter{logger: slog.New(handler)}
}

func (a *SlogAdapter) Debug(msg string, fields port.Fields) {
	a.logger.Debug(msg, fieldsToArgs(fields)...)
}

func (a *SlogAdapter) Info(msg string, fields port.Fields) {
	a.logger.Info(msg, fieldsToArgs(fields)...)
}

func (a *SlogAdapter) Warn(msg string, fields port.Fields) {
	a.logger.Warn(msg, fieldsToArgs(fields)...)
}

func (a *SlogAdapter) Error(msg string, err error, fields port.Fields) {
	args := fieldsToArgs(fields)
	if err != nil {
		args = append(args, slog.Any("error", err))
	}
	a.logger.Error(msg, args...)
}

func (a *SlogAdapter) WithFields(fields port.Fields) port.LoggerPort {
	return &SlogAdapter{logger: a.logger.With(fieldsToArgs(fields)...)}
}

func fieldsToArgs(fields port.Fields) []any {
	if len(fields) == 0 {
		return nil
	}
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}

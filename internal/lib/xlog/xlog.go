package xlog

import (
	"context"
	"io"
	"log/slog"
)

var DisabledLogger = slog.New(DisabledLogHandler{})

type DisabledLogHandler struct{}

func (d DisabledLogHandler) Enabled(context.Context, slog.Level) bool {
	return false
}

func (d DisabledLogHandler) Handle(context.Context, slog.Record) error {
	return nil
}

func (d DisabledLogHandler) WithAttrs([]slog.Attr) slog.Handler {
	return d
}

func (d DisabledLogHandler) WithGroup(string) slog.Handler {
	return d
}

// New returns the logger for the cli: nothing when quiet, debug records
// to w when debug, otherwise info and above.
func New(w io.Writer, debug, quiet bool) *slog.Logger {
	if quiet {
		return DisabledLogger
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

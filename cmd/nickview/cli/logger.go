// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewCommandLogger creates a structured logger on stderr for use
// outside the TUI. When stderr is a terminal it uses slog.TextHandler
// for human-readable output; when piped or redirected it uses
// slog.JSONHandler for machine-parseable output.
func NewCommandLogger(level slog.Leveler) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	return slog.New(newHandler(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), options))
}

func newHandler(writer io.Writer, terminal bool, options *slog.HandlerOptions) slog.Handler {
	if terminal {
		return slog.NewTextHandler(writer, options)
	}
	return slog.NewJSONHandler(writer, options)
}

// FileLogOptions configures [OpenFileLogHandler].
type FileLogOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	Level      slog.Leveler
}

// OpenFileLogHandler creates a slog.JSONHandler writing to a
// size-rotated file. The returned close function flushes and closes
// the current file.
func OpenFileLogHandler(options FileLogOptions) (slog.Handler, func() error) {
	writer := &lumberjack.Logger{
		Filename:   options.Path,
		MaxSize:    options.MaxSizeMB,
		MaxBackups: options.MaxBackups,
	}
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: options.Level})
	return handler, writer.Close
}

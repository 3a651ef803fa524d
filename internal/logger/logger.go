// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger shared by the
// request client, the realtime connection and the terminal UI.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Components receive *Logger by pointer and derive their own scoped logger
// with [Logger.Component].
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

func newLogger(w io.Writer, role string) *Logger {
	configureGlobals()

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger constructs a JSON *Logger writing to os.Stdout for the given role
// label (e.g. "client", "test").
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name instead of file:line.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger is like [NewLogger] but writes to a file, because the
// terminal UI owns stdout. An empty path resolves to a "logs" file next to
// the executable. If the file cannot be opened the logger falls back to
// os.Stderr.
func NewClientLogger(role, path string) *Logger {
	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), "logs")
	}

	var w io.Writer = os.Stderr
	if logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		w = logFile
	}

	return newLogger(w, role)
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Component returns a child *Logger that inherits all fields of the receiver
// and adds a "component" field.
func (l *Logger) Component(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}

// WithContext attaches the logger to ctx so that [FromContext] can find it
// further down the call chain.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx and returns it as a
// *Logger. When nothing was attached zerolog falls back to its default
// context logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger with the
// constructors and helpers used throughout the key keeper client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// The terminal belongs to the UI while the client runs, so client logs go to
// a file.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
)

// DefaultLogFileName is used when the configured log path is empty.
const DefaultLogFileName = "logs"

var warnOut io.Writer = os.Stderr

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

// New constructs a *Logger writing JSON to w. Every entry carries a "role"
// field, a timestamp and the calling function name in the "func" field.
func New(role string, w io.Writer) *Logger {
	configureGlobals()

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewClientLogger constructs the client logger. Entries are appended to
// logPath; a relative path is resolved next to the executable. When the file
// cannot be opened a single warning is printed to stderr and entries are
// discarded, since the terminal UI owns the screen while the client runs.
func NewClientLogger(role, logPath string) *Logger {
	if logPath == "" {
		logPath = DefaultLogFileName
	}
	if !filepath.IsAbs(logPath) {
		if execPath, err := os.Executable(); err == nil {
			logPath = filepath.Join(filepath.Dir(execPath), logPath)
		}
	}

	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		// stderr belongs to the UI once it starts; warn once and drop logs.
		fmt.Fprintf(warnOut, "logging disabled: cannot open log file %s: %v\n", logPath, err)
		return New(role, io.Discard)
	}

	return New(role, logFile)
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithComponent returns a child logger tagged with a "component" field.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package boollog is a minimal logging seam: every recoverable stage
// failure in the topological pipeline (disconnected patch/cell graph,
// validation failure, missing ambient cell) is reported synchronously to
// the log rather than returned as a Go error, since the caller gets a
// usable fallback mesh instead. The core never chooses what to do with a
// log line beyond emitting it; an embedding application redirects it by
// supplying its own Logger.
package boollog

import (
	"fmt"
	"log"
)

// Logger is the leveled logging interface the topological core writes
// recoverable-failure reports to.
type Logger interface {
	Warnf(format string, args ...any)
}

// stdLogger implements Logger on top of the standard library's log package,
// the module's default.
type stdLogger struct {
	l *log.Logger
}

// Warnf writes a "WARN: " prefixed line via the wrapped *log.Logger.
func (s stdLogger) Warnf(format string, args ...any) {
	s.l.Output(2, "WARN: "+fmt.Sprintf(format, args...))
}

// Default returns the module's out-of-the-box Logger, backed by
// log.Default().
func Default() Logger {
	return stdLogger{l: log.Default()}
}

// nopLogger discards everything, useful for tests that don't want stage
// failures printed to stderr.
type nopLogger struct{}

// Warnf discards its arguments.
func (nopLogger) Warnf(string, ...any) {}

// Nop returns a Logger that discards every message.
func Nop() Logger {
	return nopLogger{}
}

// Package tgclog provides the single tracing sink package tgc logs
// through. A Collector emits one Debugf call per mark/sweep phase
// transition plus one per node reported dead, so the Logger this package exposes
// carries only that one call instead of a general-purpose leveled
// interface.
package tgclog

import (
	"fmt"
	"io"
	"log"
)

// Logger is the interface package tgc logs phase transitions through.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// NewLogger builds a Logger that writes every trace line to w, each
// one prefixed with a timestamp and the originating call site.
func NewLogger(w io.Writer) Logger {
	return &logger{std: log.New(w, "", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)}
}

type logger struct {
	std *log.Logger
}

const callDepth = 2

func (l *logger) Debugf(format string, args ...interface{}) {
	l.std.Output(callDepth, fmt.Sprintf(format, args...))
}

// Nop is the default Logger a Collector uses when no WithLogger option
// is passed to New: every call is a no-op.
var Nop Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}

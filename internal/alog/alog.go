// Package alog is a thin leveled wrapper over the standard library's
// log.Logger, matching the way gintendo.go and console/bus.go mix
// log.Fatalf setup errors with fmt.Printf trace output: this just
// gives that mix a name and a toggleable debug level instead of
// scattering raw log/fmt calls through the engine.
package alog

import (
	"log"
	"os"
)

// Level controls which calls to Debugf are emitted.
type Level int

const (
	LevelInfo Level = iota
	LevelDebug
)

// Logger is a small leveled logger; the zero value logs at
// LevelInfo to stderr.
type Logger struct {
	level Level
	l     *log.Logger
}

// New returns a Logger writing to stderr at the given level.
func New(level Level) *Logger {
	return &Logger{level: level, l: log.New(os.Stderr, "", log.LstdFlags)}
}

func (lg *Logger) logger() *log.Logger {
	if lg == nil || lg.l == nil {
		return log.Default()
	}
	return lg.l
}

// Infof logs unconditionally.
func (lg *Logger) Infof(format string, args ...interface{}) {
	lg.logger().Printf(format, args...)
}

// Debugf logs only when the logger was created with LevelDebug.
func (lg *Logger) Debugf(format string, args ...interface{}) {
	if lg == nil || lg.level < LevelDebug {
		return
	}
	lg.logger().Printf(format, args...)
}

// Fatalf logs and exits, matching gintendo.go's log.Fatalf-on-setup-error
// convention.
func (lg *Logger) Fatalf(format string, args ...interface{}) {
	lg.logger().Fatalf(format, args...)
}

// Package logging configures the process-wide zerolog logger and hands out
// per-component child loggers.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the logger type handed to components.
type Logger = zerolog.Logger

// Level represents available log levels
type Level int

// Log levels, most verbose first
const (
	TraceLevel Level = iota
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
)

var levelNames = map[string]Level{
	"trace":   TraceLevel,
	"debug":   DebugLevel,
	"info":    InfoLevel,
	"warn":    WarnLevel,
	"warning": WarnLevel,
	"error":   ErrorLevel,
}

// String returns the lower-case name of the level.
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel converts a level name (case-insensitive) to a Level.
func ParseLevel(name string) (Level, error) {
	lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
	return lvl, nil
}

// LevelFromVerbosity maps a CLI verbosity between 1 (error) and 5 (trace) to a
// Level. Out-of-range values are clamped.
func LevelFromVerbosity(verbose int) Level {
	if verbose < 1 {
		verbose = 1
	}
	if verbose > 5 {
		verbose = 5
	}
	lvls := [5]Level{ErrorLevel, WarnLevel, InfoLevel, DebugLevel, TraceLevel}
	return lvls[verbose-1]
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case TraceLevel:
		return zerolog.TraceLevel
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Initialize sets up the global logger to write human-readable lines to out.
func Initialize(level Level, out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(level.zerolog())

	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}

	ctx := zerolog.New(output).With().Timestamp()
	if level == TraceLevel {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()
}

// SetOutput sends the global logger to out, keeping its level. The returned
// func restores the previous logger.
func SetOutput(out io.Writer) (restore func()) {
	prev := log.Logger
	log.Logger = prev.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true})
	return func() { log.Logger = prev }
}

// GetLogger returns a configured logger for a specific component
func GetLogger(component string) Logger {
	return log.With().Str("component", component).Logger()
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return zerolog.Nop()
}

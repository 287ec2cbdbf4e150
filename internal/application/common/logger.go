package common

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
)

// Logger records structured events from handlers and adapters
type Logger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Context keys for passing logger through context
type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op logger if not found
func LoggerFromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey).(Logger); ok {
		return logger
	}
	return &noOpLogger{}
}

type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, metadata map[string]interface{}) {}

var levelRank = map[string]int{
	"DEBUG": 0,
	"INFO":  1,
	"WARN":  2,
	"ERROR": 3,
}

// StdLogger writes through the standard log package, dropping events below
// its minimum level. Metadata keys are printed sorted.
type StdLogger struct {
	out      *log.Logger
	minLevel int
	fields   map[string]interface{}
}

// NewStdLogger creates a logger writing to the standard logger. Level is one
// of debug, info, warn, error; anything else means info.
func NewStdLogger(level string) *StdLogger {
	return NewStdLoggerTo(log.Default(), level)
}

// NewStdLoggerTo is NewStdLogger with an explicit destination.
func NewStdLoggerTo(out *log.Logger, level string) *StdLogger {
	rank, ok := levelRank[strings.ToUpper(level)]
	if !ok {
		rank = levelRank["INFO"]
	}
	return &StdLogger{out: out, minLevel: rank}
}

// With returns a logger that adds the given fields to every event.
func (l *StdLogger) With(fields map[string]interface{}) *StdLogger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &StdLogger{out: l.out, minLevel: l.minLevel, fields: merged}
}

func (l *StdLogger) Log(level, message string, metadata map[string]interface{}) {
	level = strings.ToUpper(level)
	if rank, ok := levelRank[level]; ok && rank < l.minLevel {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", level, message)
	writeFields(&b, l.fields)
	writeFields(&b, metadata)
	l.out.Print(b.String())
}

func writeFields(b *strings.Builder, fields map[string]interface{}) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, fields[k])
	}
}

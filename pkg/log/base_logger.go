package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Validate that BaseLogger implements the Logger interface
var _ Logger = (*BaseLogger)(nil)

// BaseLogger is a text logger writing one line per entry.
type BaseLogger struct {
	mu        sync.Mutex
	out       io.Writer
	level     Level
	component string
}

// Option configures a BaseLogger.
type Option func(*BaseLogger)

// WithLevel sets the minimum level the logger emits.
func WithLevel(level Level) Option {
	return func(l *BaseLogger) {
		l.level = level
	}
}

// WithOutput sets the writer log entries go to.
func WithOutput(out io.Writer) Option {
	return func(l *BaseLogger) {
		l.out = out
	}
}

// NewLogger creates a logger writing to stderr at info level.
func NewLogger(opts ...Option) *BaseLogger {
	l := &BaseLogger{
		out:   os.Stderr,
		level: InfoLevel,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Debug logs a message at debug level.
func (l *BaseLogger) Debug(msg string, fields ...Field) {
	l.write(DebugLevel, msg, fields)
}

// Info logs a message at info level.
func (l *BaseLogger) Info(msg string, fields ...Field) {
	l.write(InfoLevel, msg, fields)
}

// Warn logs a message at warn level.
func (l *BaseLogger) Warn(msg string, fields ...Field) {
	l.write(WarnLevel, msg, fields)
}

// Error logs a message at error level.
func (l *BaseLogger) Error(msg string, fields ...Field) {
	l.write(ErrorLevel, msg, fields)
}

// WithComponent returns a logger that tags every entry with a component name.
func (l *BaseLogger) WithComponent(component string) Logger {
	return &BaseLogger{
		out:       l.out,
		level:     l.level,
		component: component,
	}
}

// SetLevel changes the minimum level the logger emits.
func (l *BaseLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *BaseLogger) write(level Level, msg string, fields []Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	ts := time.Now().Format(time.RFC3339)
	if l.component != "" {
		fmt.Fprintf(l.out, "%s %-5s [%s] %s", ts, level, l.component, msg)
	} else {
		fmt.Fprintf(l.out, "%s %-5s %s", ts, level, msg)
	}
	for _, f := range fields {
		fmt.Fprintf(l.out, " %s=%v", f.Key, f.Value)
	}
	fmt.Fprintln(l.out)
}

package log

import (
	"context"
	"log/slog"
	"runtime"
)

// Logger is the interface used to log panics raised by graph, error and
// selection subscribers. It is settable via editor.Logger.
type Logger interface {
	LogPanic(ctx context.Context, value interface{})
}

// LoggerFunc is a function type that implements the Logger interface.
type LoggerFunc func(ctx context.Context, value interface{})

// LogPanic calls the LoggerFunc with the given context and panic value.
func (f LoggerFunc) LogPanic(ctx context.Context, value interface{}) {
	f(ctx, value)
}

// DefaultLogger logs recovered panics through a slog.Logger. A nil Logger
// field means slog.Default().
type DefaultLogger struct {
	Logger *slog.Logger
}

// LogPanic is used to log recovered panic values together with the stack of
// the recovering goroutine.
func (l *DefaultLogger) LogPanic(ctx context.Context, value interface{}) {
	const size = 64 << 10
	buf := make([]byte, size)
	buf = buf[:runtime.Stack(buf, false)]

	lg := l.Logger
	if lg == nil {
		lg = slog.Default()
	}
	lg.ErrorContext(ctx, "graphql-editor: panic occurred", "panic", value, "stack", string(buf))
}

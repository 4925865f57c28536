package swiftqueue

import "context"

// Logger is an interface for job queue loggers
type Logger interface {
	// Log submits a log line with the given level. jobID and message are
	// deferred suppliers: implementations must not call them when the
	// line is filtered out, and must call each at most once when the
	// line is emitted.
	Log(level Level, jobID, message func() string)
}

// Verbose calls `Log` with `LevelVerbose` on the context `Logger`
func Verbose(ctx context.Context, jobID, message func() string) {
	FromContext(ctx).Log(LevelVerbose, jobID, message)
}

// Warn calls `Log` with `LevelWarning` on the context `Logger`
func Warn(ctx context.Context, jobID, message func() string) {
	FromContext(ctx).Log(LevelWarning, jobID, message)
}

// Err calls `Log` with `LevelError` on the context `Logger`
func Err(ctx context.Context, jobID, message func() string) {
	FromContext(ctx).Log(LevelError, jobID, message)
}

type contextKey struct{}

var activeContextKey = contextKey{}

// FromContext returns a `Logger` instance associated with `ctx`, or
// the shared no-op `Logger` if no instance could be found.
func FromContext(ctx context.Context) Logger {
	val := ctx.Value(activeContextKey)
	if o, ok := val.(Logger); ok {
		return o
	}
	return NopLogger()
}

// WithContext returns a copy of parent in which the `Logger` is stored
func WithContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, activeContextKey, l)
}

var nop Logger = &nopLogger{}

// NopLogger returns the shared no-op `Logger`. It discards every line
// without touching the suppliers, and is the default backend when a
// caller keeps logging call sites but wants them disabled.
func NopLogger() Logger {
	return nop
}

type nopLogger struct{}

func (l *nopLogger) Log(level Level, jobID, message func() string) {}

package swiftqueue

import (
	"fmt"
	"os"
)

const defaultPrefix = "SwiftQueue"

// Printer outputs a formatted log line somewhere, such as stdout or a
// test capture
type Printer func(line string)

// ConsoleLogger prints log lines carrying at least a minimum level to a
// console sink. It is immutable once built, so concurrent `Log` calls
// require no synchronisation. A write failure on the sink is not
// caught; the logger is best effort.
type ConsoleLogger struct {
	min    Level
	prefix string
	print  Printer
}

// ConsoleOption configures a `ConsoleLogger`
type ConsoleOption func(*ConsoleLogger)

// WithMinLevel drops log lines below the given level
func WithMinLevel(min Level) ConsoleOption {
	return func(c *ConsoleLogger) {
		c.min = min
	}
}

// WithPrefix replaces the bracketed identifier at the head of each line
func WithPrefix(prefix string) ConsoleOption {
	return func(c *ConsoleLogger) {
		c.prefix = prefix
	}
}

// WithPrinter redirects formatted lines to the given sink
func WithPrinter(print Printer) ConsoleOption {
	return func(c *ConsoleLogger) {
		c.print = print
	}
}

// NewConsoleLogger creates a `ConsoleLogger`. Without options it
// prints every line to stdout with the default prefix.
func NewConsoleLogger(opts ...ConsoleOption) *ConsoleLogger {
	c := &ConsoleLogger{
		min:    LevelVerbose,
		prefix: defaultPrefix,
		print: func(line string) {
			fmt.Fprintln(os.Stdout, line)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Log prints the line when its level reaches the minimum level. On a
// filtered call the suppliers are left untouched; otherwise each is
// called exactly once.
func (c *ConsoleLogger) Log(level Level, jobID, message func() string) {
	if c.min > level {
		return
	}
	c.print(fmt.Sprintf("[%s] level=%s jobId=%s message=%s",
		c.prefix, level, eval(jobID), eval(message),
	))
}

// eval guards against nil suppliers, so that a logging call never
// crashes the caller
func eval(supplier func() string) string {
	if supplier == nil {
		return ""
	}
	return supplier()
}

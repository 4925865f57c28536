// Package grpclogger exposes the job queue logging facade as a gRPC
// `grpclog.LoggerV2`, so that a process embedding the queue can funnel
// gRPC-internal logging through the same sink as its job logs. Lines
// are attributed to the pseudo job "grpc".
package grpclogger

import (
	"fmt"
	"os"
	"strings"

	"github.com/deixis/swiftqueue"
	"google.golang.org/grpc/grpclog"
)

// exit can be swapped out in tests
var exit = os.Exit

// New returns a `grpclog.LoggerV2` backed by `l` with verbosity 0
func New(l swiftqueue.Logger) grpclog.LoggerV2 {
	return NewWithVerbosity(l, 0)
}

// NewWithVerbosity returns a `grpclog.LoggerV2` backed by `l`.
// `V(x)` reports whether `x` is at most `verbosity`.
func NewWithVerbosity(l swiftqueue.Logger, verbosity int) grpclog.LoggerV2 {
	return &logger{l: l, verbosity: verbosity}
}

type logger struct {
	l         swiftqueue.Logger
	verbosity int
}

func source() string {
	return "grpc"
}

// log keeps formatting inside the supplier, so the cost is only paid
// when the backend emits the line
func (g *logger) log(level swiftqueue.Level, args ...interface{}) {
	g.l.Log(level, source, func() string {
		return fmt.Sprint(args...)
	})
}

func (g *logger) logln(level swiftqueue.Level, args ...interface{}) {
	g.l.Log(level, source, func() string {
		return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
	})
}

func (g *logger) logf(level swiftqueue.Level, format string, args ...interface{}) {
	g.l.Log(level, source, func() string {
		return fmt.Sprintf(format, args...)
	})
}

func (g *logger) Info(args ...interface{}) {
	g.log(swiftqueue.LevelVerbose, args...)
}

func (g *logger) Infoln(args ...interface{}) {
	g.logln(swiftqueue.LevelVerbose, args...)
}

func (g *logger) Infof(format string, args ...interface{}) {
	g.logf(swiftqueue.LevelVerbose, format, args...)
}

func (g *logger) Warning(args ...interface{}) {
	g.log(swiftqueue.LevelWarning, args...)
}

func (g *logger) Warningln(args ...interface{}) {
	g.logln(swiftqueue.LevelWarning, args...)
}

func (g *logger) Warningf(format string, args ...interface{}) {
	g.logf(swiftqueue.LevelWarning, format, args...)
}

func (g *logger) Error(args ...interface{}) {
	g.log(swiftqueue.LevelError, args...)
}

func (g *logger) Errorln(args ...interface{}) {
	g.logln(swiftqueue.LevelError, args...)
}

func (g *logger) Errorf(format string, args ...interface{}) {
	g.logf(swiftqueue.LevelError, format, args...)
}

// Fatal logs at error level and then exits, as the `grpclog.LoggerV2`
// contract requires
func (g *logger) Fatal(args ...interface{}) {
	g.log(swiftqueue.LevelError, args...)
	exit(1)
}

func (g *logger) Fatalln(args ...interface{}) {
	g.logln(swiftqueue.LevelError, args...)
	exit(1)
}

func (g *logger) Fatalf(format string, args ...interface{}) {
	g.logf(swiftqueue.LevelError, format, args...)
	exit(1)
}

func (g *logger) V(l int) bool {
	return l <= g.verbosity
}

package grpclogger_test

import (
	"testing"

	"github.com/deixis/swiftqueue"
	"github.com/deixis/swiftqueue/grpclogger"
)

// recorder evaluates and records every line handed to the facade
type recorder struct {
	levels   []swiftqueue.Level
	jobIDs   []string
	messages []string
}

func (r *recorder) Log(level swiftqueue.Level, jobID, message func() string) {
	r.levels = append(r.levels, level)
	r.jobIDs = append(r.jobIDs, jobID())
	r.messages = append(r.messages, message())
}

func TestLevelMapping(t *testing.T) {
	rec := &recorder{}
	l := grpclogger.New(rec)

	l.Info("a", "b")
	l.Warningf("count=%d", 2)
	l.Errorln("boom")

	expectLevels := []swiftqueue.Level{
		swiftqueue.LevelVerbose,
		swiftqueue.LevelWarning,
		swiftqueue.LevelError,
	}
	if len(rec.levels) != len(expectLevels) {
		t.Fatalf("expect %d lines, but got %d", len(expectLevels), len(rec.levels))
	}
	for i, expect := range expectLevels {
		if rec.levels[i] != expect {
			t.Errorf("expect line %d at level %s, but got %s", i, expect, rec.levels[i])
		}
		if rec.jobIDs[i] != "grpc" {
			t.Errorf("expect line %d attributed to grpc, but got %s", i, rec.jobIDs[i])
		}
	}

	expectMessages := []string{"ab", "count=2", "boom"}
	for i, expect := range expectMessages {
		if rec.messages[i] != expect {
			t.Errorf("expect message %q, but got %q", expect, rec.messages[i])
		}
	}
}

func TestFiltering(t *testing.T) {
	// A backend that drops verbose lines must never pay for formatting
	sink := []string{}
	backend := swiftqueue.NewConsoleLogger(
		swiftqueue.WithMinLevel(swiftqueue.LevelWarning),
		swiftqueue.WithPrinter(func(line string) {
			sink = append(sink, line)
		}),
	)
	l := grpclogger.New(backend)

	l.Infof("dropped %s", "line")
	l.Warning("kept")

	expect := "[SwiftQueue] level=warning jobId=grpc message=kept"
	if len(sink) != 1 || sink[0] != expect {
		t.Errorf("expect line %q, but got %v", expect, sink)
	}
}

func TestVerbosity(t *testing.T) {
	l := grpclogger.NewWithVerbosity(swiftqueue.NopLogger(), 2)
	if !l.V(0) || !l.V(2) {
		t.Error("expect levels up to the configured verbosity to be enabled")
	}
	if l.V(3) {
		t.Error("expect levels above the configured verbosity to be disabled")
	}
}

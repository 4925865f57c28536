// Package stdlogger exposes the job queue logging facade as a standard
// library `*log.Logger`, for APIs that require one, such as
// `http.Server.ErrorLog`.
package stdlogger

import (
	"log"
	"strings"

	"github.com/deixis/swiftqueue"
)

// New returns a `*log.Logger` that forwards everything written to it
// to `l` with the given level. Lines are attributed to `jobID`.
func New(l swiftqueue.Logger, level swiftqueue.Level, jobID string) *log.Logger {
	return log.New(&writer{l: l, level: level, jobID: jobID}, "", 0)
}

type writer struct {
	l     swiftqueue.Logger
	level swiftqueue.Level
	jobID string
}

func (w *writer) Write(p []byte) (int, error) {
	// The std logger owns p and may reuse it after Write returns, so
	// the message is materialised here rather than in the supplier
	msg := strings.TrimSuffix(string(p), "\n")
	w.l.Log(w.level,
		func() string { return w.jobID },
		func() string { return msg },
	)
	return len(p), nil
}

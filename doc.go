// Package swiftqueue defines the logging facade for the job queue.
//
// A logger receives a severity level, the identifier of the job being
// processed, and a message. The identifier and the message are deferred
// suppliers, so the cost of building them is only paid when a backend
// decides to emit the line.
package swiftqueue

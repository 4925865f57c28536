package swiftqueue

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Level defines log severity
type Level int

const (
	// LevelVerbose displays logs with verbose level (and above)
	LevelVerbose Level = iota + 1
	// LevelWarning displays logs with warning level (and above)
	LevelWarning
	// LevelError displays only logs with error level
	LevelError
)

// ParseLevel parses a string representation of a log level.
// Matching is case insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "verbose":
		return LevelVerbose, nil
	case "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	}
	return LevelVerbose, errors.Errorf("unknown level <%s>", s)
}

// String returns a string representation of the given level
func (l Level) String() string {
	switch l {
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		panic(fmt.Sprintf("unknown level <%d>", l))
	}
}

package trace

import (
	"fmt"
	"strings"
)

// Level controls logging verbosity. An event is emitted when its level is at
// or below the tracer's level.
type Level uint8

const (
	LevelOff   Level = iota // nothing
	LevelError              // failures that dropped a result
	LevelWarn               // degraded input, e.g. malformed table rows
	LevelInfo               // folder-level progress
	LevelDebug              // per-document events
	LevelTrace              // per-line events
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "off":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	default:
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|warn|info|debug|trace)", s)
	}
}

// Allows reports whether an event of level ev passes a tracer set to l.
func (l Level) Allows(ev Level) bool {
	return l != LevelOff && ev != LevelOff && ev <= l
}

// ShouldEmit reports whether spans of the given scope pass at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	return l.Allows(scope.SpanLevel())
}

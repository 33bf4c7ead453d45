package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	// LevelOff disables tracing.
	LevelOff     Level = iota
	LevelError         // nothing live, ring dumped on failure
	LevelCommand       // command boundaries
	LevelJob           // plus batch jobs
	LevelOp            // plus every traced bignum operation
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelCommand:
		return "command"
	case LevelJob:
		return "job"
	case LevelOp:
		return "op"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "command":
		return LevelCommand, nil
	case "job":
		return LevelJob, nil
	case "op":
		return LevelOp, nil
	default:
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|command|job|op)", s)
	}
}

// ShouldEmit reports whether events of scope are recorded at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelCommand:
		return scope <= ScopeCommand
	case LevelJob:
		return scope <= ScopeJob
	case LevelOp:
		return true
	}
	return false
}

// records is ShouldEmit widened for LevelError, where spans are still
// collected down to ScopeJob for the failure dump.
func (l Level) records(scope Scope) bool {
	if l == LevelError {
		return scope <= ScopeJob
	}
	return l.ShouldEmit(scope)
}

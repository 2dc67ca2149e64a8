package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// LogLevel is the priority of a script log message. Lower values are more severe.
type LogLevel int

const (
	// LogLevelError is the most severe level.
	LogLevelError LogLevel = iota
	// LogLevelWarn is used for warnings and command stderr.
	LogLevelWarn
	// LogLevelInfo is used for echo steps and command stdout.
	LogLevelInfo
	// LogLevelVerbose is used for detailed progress.
	LogLevelVerbose
	// LogLevelDebug is the least severe level.
	LogLevelDebug
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelError:
		return "error"
	case LogLevelWarn:
		return "warn"
	case LogLevelInfo:
		return "info"
	case LogLevelVerbose:
		return "verbose"
	case LogLevelDebug:
		return "debug"
	default:
		return "info"
	}
}

// Includes reports whether a message logged at msg passes a filter set to l.
func (l LogLevel) Includes(msg LogLevel) bool {
	return msg <= l
}

// ParseLogLevel converts a level name to a LogLevel.
// An empty name yields def.
func ParseLogLevel(name string, def LogLevel) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return def, nil
	case "error", "err":
		return LogLevelError, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "info":
		return LogLevelInfo, nil
	case "verbose":
		return LogLevelVerbose, nil
	case "debug":
		return LogLevelDebug, nil
	default:
		return def, zerr.With(ErrInvalidLogLevel, "level", name)
	}
}

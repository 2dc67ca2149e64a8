package domain

import "time"

// EventKind identifies a build event.
type EventKind uint8

const (
	// EventBuildStarted is fired when a suite starts on a context.
	EventBuildStarted EventKind = iota
	// EventBuildFinished is fired when a suite ends on a context.
	EventBuildFinished
	// EventTargetStarted is fired before a target runs.
	EventTargetStarted
	// EventTargetFinished is fired after a target ran, with Err set on failure.
	EventTargetFinished
	// EventMessageLogged is fired for every message logged by a step.
	EventMessageLogged
)

// String returns the string representation of the EventKind.
func (k EventKind) String() string {
	switch k {
	case EventBuildStarted:
		return "buildStarted"
	case EventBuildFinished:
		return "buildFinished"
	case EventTargetStarted:
		return "targetStarted"
	case EventTargetFinished:
		return "targetFinished"
	case EventMessageLogged:
		return "messageLogged"
	default:
		return "unknown"
	}
}

// BuildEvent is delivered to the observers of an execution context.
type BuildEvent struct {
	Kind    EventKind
	Script  string
	Target  string
	Message string
	Level   LogLevel
	Err     error
	Time    time.Time
}

// LogCapturerRef is the reference name under which the active log capturer is
// registered on an execution context.
const LogCapturerRef = "sameunit.logCapturer"

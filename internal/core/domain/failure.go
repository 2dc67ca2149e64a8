package domain

import "strings"

const (
	// DefaultAssertMessage is used when an assert step fails without a custom message.
	DefaultAssertMessage = "Test failed"

	// DefaultAssertFalseMessage is used when an assertFalse step fails without a custom message.
	DefaultAssertFalseMessage = "Assertion failed"

	// DefaultExpectFailureMessage is used when an expectFailure step completes without a failure.
	DefaultExpectFailureMessage = "Expected build failure"

	// MoreThanOneConditionMessage is the usage error raised by assert steps with several conditions.
	MoreThanOneConditionMessage = "You must not specify more than one condition"
)

// FailureKind discriminates the structured failures raised while executing targets.
type FailureKind uint8

const (
	// KindExecution is any failure that is not an assertion mismatch.
	KindExecution FailureKind = iota
	// KindAssertion is an expected-condition mismatch.
	KindAssertion
)

// String returns the string representation of the FailureKind.
func (k FailureKind) String() string {
	if k == KindAssertion {
		return "assertion"
	}
	return "execution"
}

// BuildError is the structured failure raised by target execution.
// Errors of this type form the "build error" family: a chain of BuildError
// values linked through Cause is walked when classifying a test outcome.
type BuildError struct {
	Kind     FailureKind
	Message  string
	Location string
	Cause    error
}

// NewAssertionFailure creates an assertion failure with an optional cause.
func NewAssertionFailure(message string, cause error) *BuildError {
	return &BuildError{Kind: KindAssertion, Message: message, Cause: cause}
}

// NewExecutionError creates an execution error with an optional cause.
func NewExecutionError(message string, cause error) *BuildError {
	return &BuildError{Kind: KindExecution, Message: message, Cause: cause}
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	var sb strings.Builder
	if e.Location != "" {
		sb.WriteString(e.Location)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Cause != nil && e.Cause.Error() != e.Message {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Unwrap returns the cause of the failure.
func (e *BuildError) Unwrap() error {
	return e.Cause
}

// IsAssertion reports whether the failure is an assertion mismatch.
func (e *BuildError) IsAssertion() bool {
	return e.Kind == KindAssertion
}

// WithLocation returns the failure with its location set if it had none.
func (e *BuildError) WithLocation(location string) *BuildError {
	if e.Location == "" {
		e.Location = location
	}
	return e
}

// AsBuildError reports whether err itself is a member of the build error family.
// It does not look through wrapping errors of other types.
func AsBuildError(err error) (*BuildError, bool) {
	be, ok := err.(*BuildError) //nolint:errorlint // the family check must not unwrap foreign errors
	return be, ok && be != nil
}

// FindAssertion walks the cause chain of err for an assertion failure.
// The walk only follows links between BuildError values; the first error of any
// other type ends it.
func FindAssertion(err error) (*BuildError, bool) {
	current := err
	for current != nil {
		be, ok := AsBuildError(current)
		if !ok {
			return nil, false
		}
		if be.Kind == KindAssertion {
			return be, true
		}
		current = be.Cause
	}
	return nil, false
}

// MessageOf returns the message of a build error, or the error text for any other error.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	if be, ok := AsBuildError(err); ok {
		return be.Message
	}
	return err.Error()
}

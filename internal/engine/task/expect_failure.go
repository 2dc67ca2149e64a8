package task

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/sameunit/internal/core/domain"
)

// ExpectFailure runs nested tasks and requires them to raise a build error.
type ExpectFailure struct {
	Sequential

	expectedMessage string
	hasExpected     bool
	message         string
	hasMessage      bool
}

// NewExpectFailure creates an ExpectFailure with no nested tasks.
func NewExpectFailure() *ExpectFailure {
	return &ExpectFailure{}
}

// SetExpectedMessage sets the text the raised error's message must contain.
func (e *ExpectFailure) SetExpectedMessage(msg string) {
	e.expectedMessage = msg
	e.hasExpected = true
}

// SetMessage overrides the failure message.
func (e *ExpectFailure) SetMessage(msg string) {
	e.message = msg
	e.hasMessage = true
}

// Main runs the nested tasks. A build error matching the expected message is
// swallowed. Errors outside the build error family are returned unchanged.
func (e *ExpectFailure) Main(ctx context.Context, env Env) error {
	err := e.Sequential.Main(ctx, env)
	if err == nil {
		return domain.NewAssertionFailure(e.failureMessage(domain.DefaultExpectFailureMessage), nil)
	}

	be, ok := domain.AsBuildError(err)
	if !ok {
		return err
	}

	if e.hasExpected && !strings.Contains(be.Message, e.expectedMessage) {
		generated := fmt.Sprintf("%s with message '%s' but was '%s'",
			domain.DefaultExpectFailureMessage, e.expectedMessage, be.Message)
		return domain.NewAssertionFailure(e.failureMessage(generated), be)
	}
	return nil
}

func (e *ExpectFailure) failureMessage(fallback string) string {
	if e.hasMessage {
		return e.message
	}
	return fallback
}

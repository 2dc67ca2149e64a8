package task

import (
	"context"

	"go.trai.ch/sameunit/internal/core/domain"
)

// Assert raises an assertion failure unless its single condition holds.
// The negated variant raises unless the condition does not hold.
type Assert struct {
	message    string
	negate     bool
	conditions []Condition
}

// NewAssert creates an Assert with the default message.
func NewAssert() *Assert {
	return &Assert{message: domain.DefaultAssertMessage}
}

// NewAssertFalse creates a negated Assert with its own default message.
func NewAssertFalse() *Assert {
	return &Assert{message: domain.DefaultAssertFalseMessage, negate: true}
}

// SetMessage overrides the failure message.
func (a *Assert) SetMessage(msg string) {
	a.message = msg
}

// Message returns the failure message in effect.
func (a *Assert) Message() string {
	return a.message
}

// AddCondition nests a condition.
func (a *Assert) AddCondition(c Condition) {
	a.conditions = append(a.conditions, c)
}

// Main evaluates the condition. More than one condition is a usage error,
// raised as an execution error rather than an assertion failure.
func (a *Assert) Main(ctx context.Context, env Env) error {
	if len(a.conditions) > 1 {
		return domain.NewExecutionError(domain.MoreThanOneConditionMessage, nil)
	}
	if len(a.conditions) == 0 {
		return domain.NewAssertionFailure(a.message, nil)
	}

	ok, err := a.conditions[0].Evaluate(ctx, env)
	if err != nil {
		return err
	}
	if a.negate {
		ok = !ok
	}
	if !ok {
		return domain.NewAssertionFailure(a.message, nil)
	}
	return nil
}

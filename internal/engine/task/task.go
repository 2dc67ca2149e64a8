// Package task implements the steps and conditions targets are made of.
package task

import (
	"context"

	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Env is the view a running step has of its execution context.
type Env interface {
	// Log emits a message on the context.
	Log(level domain.LogLevel, msg string)
	// Var returns the value of a script variable.
	Var(name string) (string, bool)
	// SetVar assigns a script variable.
	SetVar(name, value string)
	// Reference returns a value registered on the context.
	Reference(name string) (any, bool)
	// BaseDir returns the directory of the script.
	BaseDir() string
	// Exec runs an external command with the script environment.
	Exec(ctx context.Context, args []string) error
}

// Task is one executable step.
type Task interface {
	Main(ctx context.Context, env Env) error
}

// Condition is a boolean check.
type Condition interface {
	Evaluate(ctx context.Context, env Env) (bool, error)
}

// Sequential runs tasks in order and stops at the first error.
type Sequential struct {
	tasks []Task
}

// AddTask appends a task.
func (s *Sequential) AddTask(t Task) {
	s.tasks = append(s.tasks, t)
}

// Main runs every task in order.
func (s *Sequential) Main(ctx context.Context, env Env) error {
	for _, t := range s.tasks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := t.Main(ctx, env); err != nil {
			return err
		}
	}
	return nil
}

// FromSteps builds a Sequential task from a list of steps.
func FromSteps(steps []domain.Step) (*Sequential, error) {
	seq := &Sequential{tasks: make([]Task, 0, len(steps))}
	for _, step := range steps {
		t, err := FromStep(step)
		if err != nil {
			return nil, err
		}
		seq.AddTask(t)
	}
	return seq, nil
}

// FromStep builds the task tree of a step.
func FromStep(step domain.Step) (Task, error) {
	switch step.Kind {
	case domain.StepCmd:
		if len(step.Args) == 0 {
			return nil, domain.ErrEmptyCommand
		}
		return &Exec{Args: step.Args}, nil
	case domain.StepEcho:
		return &Echo{Message: step.Message, Level: domain.LogLevelInfo}, nil
	case domain.StepLog:
		return &Echo{Message: step.Message, Level: step.Level}, nil
	case domain.StepFail:
		return &Fail{Message: step.Message}, nil
	case domain.StepSet:
		return &Set{Name: step.Name, Value: step.Value}, nil
	case domain.StepAssert, domain.StepAssertFalse:
		return assertFromStep(step)
	case domain.StepExpectFailure:
		return expectFailureFromStep(step)
	default:
		return nil, zerr.With(domain.ErrInvalidStep, "kind", string(step.Kind))
	}
}

func assertFromStep(step domain.Step) (Task, error) {
	a := NewAssert()
	if step.Kind == domain.StepAssertFalse {
		a = NewAssertFalse()
	}
	if step.Message != "" {
		a.SetMessage(step.Message)
	}
	for _, c := range step.Conditions {
		cond, err := FromCondition(c)
		if err != nil {
			return nil, err
		}
		a.AddCondition(cond)
	}
	return a, nil
}

func expectFailureFromStep(step domain.Step) (Task, error) {
	e := NewExpectFailure()
	if step.ExpectedMessage != "" {
		e.SetExpectedMessage(step.ExpectedMessage)
	}
	if step.Message != "" {
		e.SetMessage(step.Message)
	}
	for _, s := range step.Steps {
		t, err := FromStep(s)
		if err != nil {
			return nil, err
		}
		e.AddTask(t)
	}
	return e, nil
}

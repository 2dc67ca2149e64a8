package task

import (
	"context"
	"errors"

	"go.trai.ch/sameunit/internal/core/domain"
)

// Exec runs an external command.
type Exec struct {
	Args []string
}

// Main runs the command. A failing command is an execution error.
func (e *Exec) Main(ctx context.Context, env Env) error {
	err := env.Exec(ctx, e.Args)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if _, ok := domain.AsBuildError(err); ok {
		return err
	}
	return domain.NewExecutionError(err.Error(), err)
}

// Echo logs a message at Level.
type Echo struct {
	Message string
	Level   domain.LogLevel
}

// Main logs the message.
func (e *Echo) Main(_ context.Context, env Env) error {
	env.Log(e.Level, e.Message)
	return nil
}

// Fail raises an execution error.
type Fail struct {
	Message string
}

// DefaultFailMessage is used by fail steps without a message.
const DefaultFailMessage = "No message"

// Main raises the error.
func (f *Fail) Main(context.Context, Env) error {
	msg := f.Message
	if msg == "" {
		msg = DefaultFailMessage
	}
	return domain.NewExecutionError(msg, nil)
}

// Set assigns a script variable.
type Set struct {
	Name  string
	Value string
}

// Main assigns the variable.
func (s *Set) Main(_ context.Context, env Env) error {
	env.SetVar(s.Name, s.Value)
	return nil
}
